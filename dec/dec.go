package dec

import (
	"errors"
	"math/big"

	"github.com/spf13/cast"
)

// ErrNotANumber is returned when a value cannot be interpreted as a number.
var ErrNotANumber = errors.New("dec: value is not numeric")

// Float converts v to a float64. It accepts any numeric kind as well as
// strings holding a decimal number.
func Float(v any) (float64, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, ErrNotANumber
	}

	return f, nil
}

// Big converts v to a big.Float with the given mantissa precision in bits.
// Strings are parsed as decimal numbers directly at that precision, so
// inputs like "0.1" keep more accuracy than a float64 can carry. Other
// numeric kinds go through [Float] first.
func Big(v any, prec uint) (*big.Float, error) {
	if s, ok := v.(string); ok {
		f, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
		if err != nil {
			return nil, ErrNotANumber
		}

		return f, nil
	}

	f, err := Float(v)
	if err != nil {
		return nil, err
	}

	return new(big.Float).SetPrec(prec).SetFloat64(f), nil
}

// FloatSlice converts each element of vs with [Float].
func FloatSlice(vs []any) ([]float64, error) {
	out := make([]float64, len(vs))

	for i, v := range vs {
		f, err := Float(v)
		if err != nil {
			return nil, err
		}

		out[i] = f
	}

	return out, nil
}

// BigSlice converts each element of vs with [Big].
func BigSlice(vs []any, prec uint) ([]*big.Float, error) {
	out := make([]*big.Float, len(vs))

	for i, v := range vs {
		f, err := Big(v, prec)
		if err != nil {
			return nil, err
		}

		out[i] = f
	}

	return out, nil
}
