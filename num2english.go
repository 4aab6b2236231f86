// Package num2english converts numbers to their English word form.
//
// A number is read as a whole part and a fractional part. The whole part is
// named in groups of three digits with short-scale magnitude words
// (thousand, million, billion, ... up to decicentillion, 10^333). The
// fractional part is named as a count of tenths, hundredths, thousandths
// and so on, decided by how many digits follow the decimal point:
//
//	60.212  -> "sixty and two hundred twelve thousandths"
//	-123456 -> "negative one hundred twenty-three thousand four hundred fifty-six"
//	0.056   -> "fifty-six thousandths"
//
// Output contains only lowercase ASCII letters, spaces and hyphens.
//
// Inputs may be native integers and floats, *big.Int, *big.Float, decimal
// types from github.com/shopspring/decimal and github.com/govalues/decimal,
// or decimal strings. Floats are read from their shortest round-trip
// digits, so 6.2 is "six and two tenths" and not the binary expansion.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Exponent notation ("1e21") is rejected with ErrUnsupportedNotation.
//   - Ordinals ("first") and parsing words back to numbers are not provided.
//   - Fractions are never reduced: 0.50 reads "fifty hundredths".
package num2english

import (
	"fmt"
	"math/big"
	"reflect"

	"golang.org/x/exp/constraints"
)

// ToEnglish returns the English words for v.
//
// v may be any native integer or float type (including named types built
// on them), *big.Int, *big.Float, shopspring or govalues decimal.Decimal,
// a string or json.Number holding a decimal, or any fmt.Stringer whose
// String method yields a decimal. Zero, including negative zero, reads
// "zero".
//
// On failure the result is "" and the error wraps one of
// ErrUnsupportedNotation, ErrMagnitudeOverflow, ErrMalformed or
// ErrUnsupportedType.
func ToEnglish(v any) (string, error) {
	s, err := decimalString(v)
	if err != nil {
		return "", err
	}
	return FromString(s)
}

// MustToEnglish is like ToEnglish but panics if v cannot be converted.
func MustToEnglish(v any) string {
	s, err := ToEnglish(v)
	if err != nil {
		panic(err)
	}
	return s
}

// FromString returns the English words for a decimal string of the form
// [-+]digits[.digits]. Either side of the point may be empty but not both;
// ".5" is accepted and "5." is not. Surrounding whitespace is ignored.
func FromString(s string) (string, error) {
	n, err := Split(s)
	if err != nil {
		return "", err
	}
	return n.English()
}

// Int returns the English words for any integer. It cannot fail: every
// native integer is far below the largest magnitude word.
func Int[T constraints.Integer](n T) string {
	v := new(big.Int)
	if n < 0 {
		v.SetInt64(int64(n))
	} else {
		v.SetUint64(uint64(n))
	}
	s, err := SplitNumber{Integer: v}.English()
	if err != nil {
		panic(fmt.Sprintf("num2english: Int(%d): %v", n, err))
	}
	return s
}

// Float returns the English words for f, read from the shortest decimal
// that round-trips at f's own precision; float32(6.2) is "six and two
// tenths". NaN and infinities return ErrMalformed.
func Float[T constraints.Float](f T) (string, error) {
	bitSize := reflect.TypeOf(f).Bits()
	s, err := floatString(float64(f), bitSize)
	if err != nil {
		return "", err
	}
	return FromString(s)
}

// English assembles the words for n. A whole part of zero is left out
// rather than read as "zero and": {Fraction: 56, DecimalPlaces: 3} reads
// "fifty-six thousandths".
func (n SplitNumber) English() (string, error) {
	return english(n)
}
