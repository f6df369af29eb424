package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearPasses(t *testing.T) {
	RequireSliceNear(t, []float64{1, 2, 3}, []float64{1, 2, 3 + 1e-12}, 1e-9)
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 3})
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if d != 0.5 {
		t.Fatalf("d = %v, want 0.5", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1, math.Pi})
}
