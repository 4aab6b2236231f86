package num2english

import "errors"

// Sentinel errors returned (wrapped) by the conversion functions.
// Use errors.Is to test for them.
var (
	// ErrUnsupportedNotation reports a value whose decimal form uses an
	// exponent, such as "1e21". Exponent forms are never approximated.
	ErrUnsupportedNotation = errors.New("unsupported notation")

	// ErrMagnitudeOverflow reports an integer part larger than the biggest
	// magnitude word, or a fraction with more digits than there are
	// place-value words.
	ErrMagnitudeOverflow = errors.New("magnitude overflow")

	// ErrMalformed reports input that is not a decimal string of the form
	// [-+]digits[.digits], including NaN and infinite floats.
	ErrMalformed = errors.New("malformed number")

	// ErrUnsupportedType reports a value ToEnglish cannot render as a
	// decimal string.
	ErrUnsupportedType = errors.New("unsupported type")
)
