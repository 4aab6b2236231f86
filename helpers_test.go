package num2english

import (
	"math/big"
	"strings"
)

// integerText returns the English name of a non-negative integer, or ""
// when n is zero.
func integerText(n *big.Int) (string, error) {
	var b strings.Builder
	if err := writeInteger(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// chunkText returns the English name of n in [0, 999]; zero yields "".
func chunkText(n int) string {
	if n <= 0 || n >= chunkBase {
		return ""
	}
	var b strings.Builder
	writeChunk(&b, n)
	return b.String()
}
