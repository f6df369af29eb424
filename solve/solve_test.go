package solve

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
	"testing"
)

func TestNewtonFindsSquareRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	res, err := Newton(f, df, 1)
	if err != nil {
		t.Fatalf("Newton: %v", err)
	}

	if math.Abs(res.Root-math.Sqrt2) > 1e-8 {
		t.Fatalf("root: got %v want %v", res.Root, math.Sqrt2)
	}

	if res.Iterations <= 0 {
		t.Fatalf("iterations: got %d", res.Iterations)
	}
}

func TestNewtonZeroDerivative(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(float64) float64 { return 0 }

	if _, err := Newton(f, df, 1); !errors.Is(err, ErrZeroDerivative) {
		t.Fatalf("got %v want %v", err, ErrZeroDerivative)
	}
}

func TestNewtonIterationLimit(t *testing.T) {
	// x^2 + 1 has no real root; the iteration must give up.
	f := func(x float64) float64 { return x*x + 1 }
	df := func(x float64) float64 { return 2 * x }

	if _, err := Newton(f, df, 0.5, WithMaxIterations(20)); !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("got %v want %v", err, ErrNoConvergence)
	}
}

func TestSecantFindsSquareRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	res, err := Secant(f, 1, 2)
	if err != nil {
		t.Fatalf("Secant: %v", err)
	}

	if math.Abs(res.Root-math.Sqrt2) > 1e-8 {
		t.Fatalf("root: got %v want %v", res.Root, math.Sqrt2)
	}
}

func TestSecantFlat(t *testing.T) {
	f := func(float64) float64 { return 1 }

	if _, err := Secant(f, 0, 1); !errors.Is(err, ErrFlatSecant) {
		t.Fatalf("got %v want %v", err, ErrFlatSecant)
	}
}

func TestSignChangeBracketsCosine(t *testing.T) {
	lo, hi, err := SignChange(math.Cos, 0, 3, 0.5)
	if err != nil {
		t.Fatalf("SignChange: %v", err)
	}

	if lo != 1.5 || hi != 2.0 {
		t.Fatalf("bracket: got [%v, %v] want [1.5, 2]", lo, hi)
	}
}

func TestSignChangeNotFound(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	if _, _, err := SignChange(f, -2, 2, 0.25); !errors.Is(err, ErrNoSignChange) {
		t.Fatalf("got %v want %v", err, ErrNoSignChange)
	}
}

func TestTridiagonal(t *testing.T) {
	// 2*x0 + x1 = 4; x0 + 2*x1 + x2 = 8; x1 + 2*x2 = 8 -> x = (1, 2, 3).
	x, err := Tridiagonal(
		[]float64{2, 2, 2},
		[]float64{1, 1},
		[]float64{1, 1},
		[]float64{4, 8, 8},
	)
	if err != nil {
		t.Fatalf("Tridiagonal: %v", err)
	}

	for i, want := range []float64{1, 2, 3} {
		if math.Abs(x[i]-want) > 1e-12 {
			t.Fatalf("x[%d]: got %v want %v", i, x[i], want)
		}
	}
}

func TestTridiagonalSizeChecks(t *testing.T) {
	if _, err := Tridiagonal([]float64{1, 1}, []float64{1, 1}, []float64{1}, []float64{1, 1}); !errors.Is(err, ErrDiagonalLength) {
		t.Fatalf("got %v want %v", err, ErrDiagonalLength)
	}

	if _, err := Tridiagonal([]float64{1, 1}, []float64{1}, []float64{1}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("got %v want %v", err, ErrLengthMismatch)
	}
}

func TestPolyRootsQuadratic(t *testing.T) {
	// z^2 - 3z + 2 = (z-1)(z-2).
	roots, err := PolyRoots([]complex128{1, -3, 2})
	if err != nil {
		t.Fatalf("PolyRoots: %v", err)
	}

	got := []float64{real(roots[0]), real(roots[1])}
	sort.Float64s(got)

	for i, want := range []float64{1, 2} {
		if math.Abs(got[i]-want) > 1e-9 || math.Abs(imag(roots[i])) > 1e-9 {
			t.Fatalf("roots: got %v want real roots 1 and 2", roots)
		}
	}
}

func TestPolyRootsResidual(t *testing.T) {
	// z^4 - 1: four roots on the unit circle.
	coeff := []complex128{1, 0, 0, 0, -1}

	roots, err := PolyRoots(coeff)
	if err != nil {
		t.Fatalf("PolyRoots: %v", err)
	}

	for _, r := range roots {
		if res := cmplx.Abs(PolyEval(coeff, r)); res > 1e-9 {
			t.Fatalf("residual at %v: %v", r, res)
		}
	}
}

func TestPolyRootsDegenerate(t *testing.T) {
	if _, err := PolyRoots([]complex128{1}); !errors.Is(err, ErrDegeneratePolynomial) {
		t.Fatalf("got %v want %v", err, ErrDegeneratePolynomial)
	}

	if _, err := PolyRoots([]complex128{0, 1, 2}); !errors.Is(err, ErrDegeneratePolynomial) {
		t.Fatalf("got %v want %v", err, ErrDegeneratePolynomial)
	}
}
