// Unexported conversion functions for English number-to-text conversion.
package num2english

import (
	"fmt"
	"math/big"
	"strings"
)

const growFloat = 128 // estimated bytes for a phrase with a fraction

var bigChunkBase = big.NewInt(chunkBase)

// english assembles the phrase for n: sign, whole part, "and", fraction.
// An absent or zero whole part is omitted, so 0.056 reads
// "fifty-six thousandths". A value with nothing to name is "zero" and
// never takes the negative prefix.
func english(n SplitNumber) (string, error) {
	hasFraction := n.Fraction != nil && n.Fraction.Sign() > 0
	if (n.Integer == nil || n.Integer.Sign() == 0) && !hasFraction {
		return wordZero, nil
	}

	var b strings.Builder
	b.Grow(growFloat)

	if n.Negative || (n.Integer != nil && n.Integer.Sign() < 0) {
		b.WriteString(wordNegative)
		b.WriteByte(' ')
	}

	hasInteger := false
	if n.Integer != nil && n.Integer.Sign() != 0 {
		if err := writeInteger(&b, new(big.Int).Abs(n.Integer)); err != nil {
			return "", err
		}
		hasInteger = true
	}

	if hasFraction {
		if hasInteger {
			b.WriteByte(' ')
			b.WriteString(wordAnd)
			b.WriteByte(' ')
		}
		if err := writeFraction(&b, n.Fraction, n.DecimalPlaces); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

// writeInteger writes the name of a non-negative integer into b, most
// significant chunk first. Nothing is written for zero.
func writeInteger(b *strings.Builder, n *big.Int) error {
	groups, err := chunks(n)
	if err != nil {
		return err
	}

	first := true
	for pos := len(groups) - 1; pos >= 0; pos-- {
		chunk := groups[pos]
		if chunk == 0 {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false

		writeChunk(b, chunk)
		if pos > 0 {
			b.WriteByte(' ')
			b.WriteString(magnitudes[pos-1])
		}
	}
	return nil
}

// writeFraction writes the numerator's name followed by the place-value
// word for places digits, plural when the numerator is greater than one.
// The numerator is named in full like a whole part, so numerators longer
// than nine digits keep their billion and higher chunks.
// Callers must ensure numerator > 0.
func writeFraction(b *strings.Builder, numerator *big.Int, places int) error {
	if places < 1 {
		return fmt.Errorf("num2english: %w: fraction with %d decimal places", ErrMalformed, places)
	}
	if places > len(placeWords) {
		return fmt.Errorf("num2english: %w: %d decimal places (max %d)",
			ErrMagnitudeOverflow, places, len(placeWords))
	}

	if err := writeInteger(b, numerator); err != nil {
		return err
	}

	b.WriteByte(' ')
	b.WriteString(placeWords[places-1])
	if numerator.Cmp(big.NewInt(1)) > 0 {
		b.WriteByte('s')
	}
	return nil
}

// chunks splits a non-negative n into base-1000 groups, least significant
// first. Zero yields no groups.
func chunks(n *big.Int) ([]int, error) {
	if n.Sign() == 0 {
		return nil, nil
	}

	groups := make([]int, 0, n.BitLen()/9+1)

	q := new(big.Int).Set(n)
	r := new(big.Int)
	for q.Sign() > 0 {
		q.QuoRem(q, bigChunkBase, r)
		groups = append(groups, int(r.Int64()))
	}

	if len(groups)-1 > len(magnitudes) {
		return nil, fmt.Errorf("num2english: %w: %d digit groups (max %d)",
			ErrMagnitudeOverflow, len(groups), len(magnitudes)+1)
	}
	return groups, nil
}

// writeChunk writes a number in [1, 999] as English text into b.
// Hundreds are followed by a space only when a remainder follows, and
// compound tens are hyphenated ("twenty-three").
func writeChunk(b *strings.Builder, n int) {
	h := n / hundred
	r := n % hundred

	if h > 0 {
		b.WriteString(ones[h])
		b.WriteByte(' ')
		b.WriteString(wordHundred)
		if r > 0 {
			b.WriteByte(' ')
		}
	}

	switch {
	case r == 0:
	case r < len(ones):
		b.WriteString(ones[r])
	default:
		b.WriteString(tens[r/10])
		if o := r % 10; o > 0 {
			b.WriteByte('-')
			b.WriteString(ones[o])
		}
	}
}
