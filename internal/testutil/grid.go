package testutil

// Linspace returns n evenly spaced points from a to b inclusive.
// The last point is set exactly to b to avoid accumulated rounding.
func Linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + step*float64(i)
	}
	out[n-1] = b
	return out
}

// Sample evaluates f at every point of xs.
func Sample(f func(float64) float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Table returns the integer grid 0, 1, ..., n-1 together with the
// samples of f on it. Most tabulated-rule tests use unit spacing.
func Table(n int, f func(float64) float64) (xs, ys []float64) {
	xs = Linspace(0, float64(n-1), n)
	return xs, Sample(f, xs)
}
