package num2english

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	govalues "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
)

// decimalString renders v as a decimal string without an exponent where
// the type allows it. The result still has to pass checkNotation and split.
//
// Resolution order: concrete types, then named types by their underlying
// integer or float kind, then fmt.Stringer.
func decimalString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x), nil
	case json.Number:
		return strings.TrimSpace(string(x)), nil
	case int:
		return strconv.FormatInt(int64(x), 10), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case uintptr:
		return strconv.FormatUint(uint64(x), 10), nil
	case float32:
		return floatString(float64(x), 32)
	case float64:
		return floatString(x, 64)
	case *big.Int:
		if x == nil {
			return "", fmt.Errorf("num2english: %w: nil *big.Int", ErrMalformed)
		}
		return x.String(), nil
	case *big.Float:
		if x == nil {
			return "", fmt.Errorf("num2english: %w: nil *big.Float", ErrMalformed)
		}
		if x.IsInf() {
			return "", fmt.Errorf("num2english: %w: %v", ErrMalformed, x)
		}
		return x.Text('f', -1), nil
	case decimal.Decimal:
		return x.String(), nil
	case govalues.Decimal:
		return x.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return floatString(rv.Float(), 32)
	case reflect.Float64:
		return floatString(rv.Float(), 64)
	case reflect.Pointer:
		if rv.IsNil() {
			return "", fmt.Errorf("num2english: %w: nil %T", ErrMalformed, v)
		}
	}

	if s, ok := v.(fmt.Stringer); ok {
		return strings.TrimSpace(s.String()), nil
	}
	return "", fmt.Errorf("num2english: %w: %T", ErrUnsupportedType, v)
}

// floatString formats f with the fewest digits that round-trip at the
// given bit size, in plain positional notation.
func floatString(f float64, bitSize int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("num2english: %w: %v", ErrMalformed, f)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize), nil
}
