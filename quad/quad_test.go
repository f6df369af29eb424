package quad

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-numeric/internal/testutil"
)

const tol = 1e-9

func TestRectangleOnConstant(t *testing.T) {
	xs, ys := testutil.Table(5, func(float64) float64 { return 3 })

	for _, edge := range []Edge{Left, Right} {
		got, err := Rectangle(xs, ys, edge)
		if err != nil {
			t.Fatalf("Rectangle: %v", err)
		}

		testutil.RequireNear(t, got, 12, tol, "constant integrand")
	}
}

func TestRectangleEdges(t *testing.T) {
	xs, ys := testutil.Table(4, func(x float64) float64 { return x })

	left, err := Rectangle(xs, ys, Left)
	if err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	testutil.RequireNear(t, left, 3, tol, "left rectangles under y=x")

	right, err := Rectangle(xs, ys, Right)
	if err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	testutil.RequireNear(t, right, 6, tol, "right rectangles under y=x")
}

func TestTrapezoidExactForLinear(t *testing.T) {
	xs, ys := testutil.Table(4, func(x float64) float64 { return 2*x + 1 })

	got, err := Trapezoid(xs, ys)
	if err != nil {
		t.Fatalf("Trapezoid: %v", err)
	}

	testutil.RequireNear(t, got, 12, tol, "integral of 2x+1 over [0,3]")
}

// The midpoint rule interpolates the tabulated samples linearly, so it
// coincides with the trapezoidal rule on the same table.
func TestMidpointMatchesTrapezoid(t *testing.T) {
	xs, ys := testutil.Table(5, func(x float64) float64 { return x*x - x })

	mid, err := Midpoint(xs, ys)
	if err != nil {
		t.Fatalf("Midpoint: %v", err)
	}

	trap, err := Trapezoid(xs, ys)
	if err != nil {
		t.Fatalf("Trapezoid: %v", err)
	}

	testutil.RequireNear(t, mid, trap, tol, "midpoint vs trapezoid")
}

func TestSimpsonExactForParabola(t *testing.T) {
	xs, ys := testutil.Table(3, func(x float64) float64 { return x * x })

	got, err := Simpson(xs, ys)
	if err != nil {
		t.Fatalf("Simpson: %v", err)
	}

	testutil.RequireNear(t, got, 8.0/3, tol, "integral of x^2 over [0,2]")
}

func TestSimpson38ExactForCubic(t *testing.T) {
	xs, ys := testutil.Table(4, func(x float64) float64 { return x * x * x })

	got, err := Simpson38(xs, ys)
	if err != nil {
		t.Fatalf("Simpson38: %v", err)
	}

	testutil.RequireNear(t, got, 20.25, tol, "integral of x^3 over [0,3]")
}

func TestWeddleExactForParabola(t *testing.T) {
	xs, ys := testutil.Table(7, func(x float64) float64 { return x * x })

	got, err := Weddle(xs, ys)
	if err != nil {
		t.Fatalf("Weddle: %v", err)
	}

	testutil.RequireNear(t, got, 72, tol, "integral of x^2 over [0,6]")
}

func TestIntervalCountErrors(t *testing.T) {
	cases := []struct {
		name string
		f    func(xs, ys []float64) (float64, error)
		n    int
		want error
	}{
		{name: "simpson", f: Simpson, n: 4, want: ErrEvenIntervals},
		{name: "simpson38", f: Simpson38, n: 3, want: ErrTripleIntervals},
		{name: "weddle", f: Weddle, n: 6, want: ErrSextupleIntervals},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			xs, ys := testutil.Table(tc.n, func(x float64) float64 { return x })

			if _, err := tc.f(xs, ys); !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
		})
	}
}

func TestNewtonCotesWeightsRecoverSimpson(t *testing.T) {
	w, err := NewtonCotesWeights([]float64{0, 1, 2})
	if err != nil {
		t.Fatalf("NewtonCotesWeights: %v", err)
	}

	testutil.RequireSliceNear(t, w, []float64{1.0 / 3, 4.0 / 3, 1.0 / 3}, tol)
}

func TestNewtonCotesExactForParabola(t *testing.T) {
	xs, ys := testutil.Table(3, func(x float64) float64 { return x * x })

	got, err := NewtonCotes(xs, ys)
	if err != nil {
		t.Fatalf("NewtonCotes: %v", err)
	}

	testutil.RequireNear(t, got, 8.0/3, tol, "integral of x^2 over [0,2]")
}

func TestGaussLegendreExactForParabola(t *testing.T) {
	nodes, _, err := GaussLegendreNodes(2)
	if err != nil {
		t.Fatalf("GaussLegendreNodes: %v", err)
	}

	ys := testutil.Sample(func(x float64) float64 { return x * x }, nodes)

	got, err := GaussLegendre(ys, nil, -1, 1)
	if err != nil {
		t.Fatalf("GaussLegendre: %v", err)
	}

	testutil.RequireNear(t, got, 2.0/3, tol, "integral of x^2 over [-1,1]")
}

func TestGaussLegendreFunc(t *testing.T) {
	got, err := GaussLegendreFunc(func(x float64) float64 { return x * x }, 0, 2, 3)
	if err != nil {
		t.Fatalf("GaussLegendreFunc: %v", err)
	}

	testutil.RequireNear(t, got, 8.0/3, tol, "integral of x^2 over [0,2]")
}

func TestTableValidation(t *testing.T) {
	if _, err := Trapezoid([]float64{0, 1}, []float64{0}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("length mismatch: got %v", err)
	}

	if _, err := Simpson([]float64{0}, []float64{0}); !errors.Is(err, ErrTooFewNodes) {
		t.Fatalf("too few nodes: got %v", err)
	}
}
