package testutil

import "testing"

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 1, 5)
	RequireSliceNear(t, xs, []float64{0, 0.25, 0.5, 0.75, 1}, 1e-15)

	if got := Linspace(2, 5, 1); got[0] != 2 {
		t.Fatalf("single point: got %v, want 2", got[0])
	}

	// Endpoint is exact even when the step does not divide evenly.
	xs = Linspace(0, 0.3, 4)
	if xs[3] != 0.3 {
		t.Fatalf("endpoint: got %v, want 0.3", xs[3])
	}
}

func TestTable(t *testing.T) {
	xs, ys := Table(4, func(x float64) float64 { return 2 * x })
	RequireSliceNear(t, xs, []float64{0, 1, 2, 3}, 1e-15)
	RequireSliceNear(t, ys, []float64{0, 2, 4, 6}, 1e-15)
}
