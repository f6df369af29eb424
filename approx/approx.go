package approx

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the fallible operations.
var (
	ErrDivisionByZero = errors.New("approx: division by zero")
	ErrDomain         = errors.New("approx: argument outside the function domain")
	ErrZeroExact      = errors.New("approx: exact value must be nonzero")
)

// Num is an approximate number: a central value with absolute and
// relative error bounds. The zero value is an exact zero. Num is a
// value type; operations return new values and never mutate their
// receivers.
type Num struct {
	Value  float64
	AbsErr float64
	RelErr float64
}

// New builds a Num from a central value and its absolute error bound.
// The relative error is derived; it is +Inf for a zero value with a
// nonzero bound.
func New(value, absErr float64) Num {
	return Num{
		Value:  value,
		AbsErr: math.Abs(absErr),
		RelErr: relFromAbs(value, math.Abs(absErr)),
	}
}

// NewRel builds a Num from a central value and its relative error
// bound.
func NewRel(value, relErr float64) Num {
	relErr = math.Abs(relErr)

	return Num{
		Value:  value,
		AbsErr: math.Abs(value) * relErr,
		RelErr: relErr,
	}
}

func relFromAbs(value, absErr float64) float64 {
	if value == 0 {
		if absErr == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return absErr / math.Abs(value)
}

// String formats the number as "value ± absErr (δ = relErr)".
func (n Num) String() string {
	return fmt.Sprintf("%g ± %g (δ = %g)", n.Value, n.AbsErr, n.RelErr)
}

// Add returns n + m. Absolute errors add.
func (n Num) Add(m Num) Num {
	return New(n.Value+m.Value, n.AbsErr+m.AbsErr)
}

// Sub returns n - m. Absolute errors add.
func (n Num) Sub(m Num) Num {
	return New(n.Value-m.Value, n.AbsErr+m.AbsErr)
}

// Mul returns n * m. Relative errors add.
func (n Num) Mul(m Num) Num {
	return New(n.Value*m.Value, math.Abs(m.Value)*n.AbsErr+math.Abs(n.Value)*m.AbsErr)
}

// Div returns n / m, or ErrDivisionByZero when m is zero.
func (n Num) Div(m Num) (Num, error) {
	if m.Value == 0 {
		return Num{}, ErrDivisionByZero
	}

	abs := (math.Abs(m.Value)*n.AbsErr + math.Abs(n.Value)*m.AbsErr) / (m.Value * m.Value)

	return New(n.Value/m.Value, abs), nil
}

// Scale returns n multiplied by the exact constant c.
func (n Num) Scale(c float64) Num {
	return New(c*n.Value, math.Abs(c)*n.AbsErr)
}

// Shift returns n plus the exact constant c.
func (n Num) Shift(c float64) Num {
	return New(n.Value+c, n.AbsErr)
}

// Pow returns n raised to the exact power p.
func (n Num) Pow(p float64) Num {
	v := math.Pow(n.Value, p)

	return New(v, math.Abs(p*math.Pow(n.Value, p-1))*n.AbsErr)
}

// Sqrt returns the square root, or ErrDomain for negative values.
func (n Num) Sqrt() (Num, error) {
	if n.Value < 0 {
		return Num{}, ErrDomain
	}

	v := math.Sqrt(n.Value)
	if v == 0 {
		return Num{Value: 0, AbsErr: math.Inf(1), RelErr: math.Inf(1)}, nil
	}

	return New(v, n.AbsErr/(2*v)), nil
}

// Sin returns the sine; the bound is scaled by |cos|.
func (n Num) Sin() Num {
	return New(math.Sin(n.Value), math.Abs(math.Cos(n.Value))*n.AbsErr)
}

// Cos returns the cosine; the bound is scaled by |sin|.
func (n Num) Cos() Num {
	return New(math.Cos(n.Value), math.Abs(math.Sin(n.Value))*n.AbsErr)
}

// Tan returns the tangent; the bound is scaled by 1/cos^2.
func (n Num) Tan() Num {
	c := math.Cos(n.Value)

	return New(math.Tan(n.Value), n.AbsErr/(c*c))
}

// Exp returns e**n; the bound is scaled by the result itself.
func (n Num) Exp() Num {
	v := math.Exp(n.Value)

	return New(v, v*n.AbsErr)
}

// Pow10 returns 10**n.
func (n Num) Pow10() Num {
	v := math.Pow(10, n.Value)

	return New(v, v*math.Ln10*n.AbsErr)
}

// Log returns the natural logarithm, or ErrDomain for nonpositive
// values.
func (n Num) Log() (Num, error) {
	if n.Value <= 0 {
		return Num{}, ErrDomain
	}

	return New(math.Log(n.Value), n.AbsErr/n.Value), nil
}

// Log10 returns the decimal logarithm, or ErrDomain for nonpositive
// values.
func (n Num) Log10() (Num, error) {
	if n.Value <= 0 {
		return Num{}, ErrDomain
	}

	return New(math.Log10(n.Value), n.AbsErr/(n.Value*math.Ln10)), nil
}

// Asin returns the inverse sine, or ErrDomain for |value| >= 1.
func (n Num) Asin() (Num, error) {
	if math.Abs(n.Value) >= 1 {
		return Num{}, ErrDomain
	}

	return New(math.Asin(n.Value), n.AbsErr/math.Sqrt(1-n.Value*n.Value)), nil
}

// Acos returns the inverse cosine, or ErrDomain for |value| >= 1.
func (n Num) Acos() (Num, error) {
	if math.Abs(n.Value) >= 1 {
		return Num{}, ErrDomain
	}

	return New(math.Acos(n.Value), n.AbsErr/math.Sqrt(1-n.Value*n.Value)), nil
}

// Atan returns the inverse tangent.
func (n Num) Atan() Num {
	return New(math.Atan(n.Value), n.AbsErr/(1+n.Value*n.Value))
}

// AbsoluteError computes the absolute error of an approximation
// against a known exact value.
func AbsoluteError(approx, exact float64) float64 {
	return math.Abs(exact - approx)
}

// RelativeError computes the relative error of an approximation
// against a known exact value, or ErrZeroExact when the exact value is
// zero.
func RelativeError(approx, exact float64) (float64, error) {
	if exact == 0 {
		return 0, ErrZeroExact
	}

	return math.Abs((exact - approx) / exact), nil
}
