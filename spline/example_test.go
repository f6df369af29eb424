package spline_test

import (
	"fmt"

	"github.com/cwbudde/algo-numeric/spline"
)

func ExampleNew() {
	// Samples of the identity function; clamping the endpoint slopes to 1
	// makes the spline reproduce the line exactly.
	s, err := spline.New(
		[]float64{0, 1, 2},
		[]float64{0, 1, 2},
		spline.WithClamped(1, 1),
	)
	if err != nil {
		panic(err)
	}

	d, _ := s.Derivative(1.2, 1)

	fmt.Printf("S(1.5) = %.4f\n", s.At(1.5))
	fmt.Printf("S'(1.2) = %.4f\n", d)
	fmt.Printf("integral over [0,2] = %.4f\n", s.Integrate(0, 2))
	// Output:
	// S(1.5) = 1.5000
	// S'(1.2) = 1.0000
	// integral over [0,2] = 2.0000
}
