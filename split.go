package num2english

import (
	"fmt"
	"math/big"
	"strings"
)

// maxIntegerDigits is the longest whole part with a magnitude word for
// every chunk.
const maxIntegerDigits = 3 * (len(magnitudes) + 1)

// SplitNumber is a decimal number split at its decimal point.
//
// A nil Integer or Fraction means the part is absent or zero. DecimalPlaces
// is the number of digits written after the point, leading zeros included,
// so "0.056" has DecimalPlaces 3 and Fraction 56.
type SplitNumber struct {
	Integer       *big.Int // signed whole part
	Fraction      *big.Int // fractional digits read as an unsigned integer
	DecimalPlaces int
	Negative      bool // the value is below zero; never set for zero
}

// Split parses a canonical decimal string into its whole and fractional
// parts. Surrounding whitespace is trimmed and a leading '+' is accepted.
func Split(s string) (SplitNumber, error) {
	s = strings.TrimSpace(s)
	if err := checkNotation(s); err != nil {
		return SplitNumber{}, err
	}
	return split(s)
}

// split expects s to be free of exponent markers and surrounding space.
func split(s string) (SplitNumber, error) {
	raw := s
	negative := false
	if s != "" {
		switch s[0] {
		case '-':
			negative = true
			s = s[1:]
		case '+':
			s = s[1:]
		}
	}

	wholePart, fracPart, hasPoint := strings.Cut(s, ".")

	switch {
	case wholePart == "" && !hasPoint:
		return SplitNumber{}, fmt.Errorf("num2english: %w: %q", ErrMalformed, raw)
	case wholePart != "" && !allDigits(wholePart):
		return SplitNumber{}, fmt.Errorf("num2english: %w: %q", ErrMalformed, raw)
	case hasPoint && !allDigits(fracPart):
		// Rejects "3.", "3.1.4" and stray characters after the point.
		return SplitNumber{}, fmt.Errorf("num2english: %w: %q", ErrMalformed, raw)
	}

	// Size limits are checked on the digit strings so oversized input is
	// rejected before any big.Int work.
	if d := len(strings.TrimLeft(wholePart, "0")); d > maxIntegerDigits {
		return SplitNumber{}, fmt.Errorf("num2english: %w: %d integer digits (max %d)",
			ErrMagnitudeOverflow, d, maxIntegerDigits)
	}
	if len(fracPart) > len(placeWords) && strings.Trim(fracPart, "0") != "" {
		return SplitNumber{}, fmt.Errorf("num2english: %w: %d decimal places (max %d)",
			ErrMagnitudeOverflow, len(fracPart), len(placeWords))
	}

	var n SplitNumber
	if whole := parseDigits(wholePart); whole != nil {
		if negative {
			whole.Neg(whole)
		}
		n.Integer = whole
	}
	if hasPoint {
		n.Fraction = parseDigits(fracPart)
		n.DecimalPlaces = len(fracPart)
	}
	n.Negative = negative && (n.Integer != nil || n.Fraction != nil)

	return n, nil
}

// parseDigits reads an all-digit string as a non-negative integer.
// Returns nil for an empty string or a value of zero.
func parseDigits(s string) *big.Int {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil
	}
	return v
}

// checkNotation reports ErrUnsupportedNotation for exponent forms such as
// "1.5e+21" or "-2E9". Anything else is left for split to validate.
func checkNotation(s string) error {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return nil
	}

	mantissa, exponent := s[:i], s[i+1:]
	if mantissa != "" && (mantissa[0] == '-' || mantissa[0] == '+') {
		mantissa = mantissa[1:]
	}
	if exponent != "" && (exponent[0] == '-' || exponent[0] == '+') {
		exponent = exponent[1:]
	}

	if allDigits(exponent) && strings.Trim(mantissa, "0123456789.") == "" &&
		strings.ContainsAny(mantissa, "0123456789") {
		return fmt.Errorf("num2english: %w: %q", ErrUnsupportedNotation, s)
	}
	return nil
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
