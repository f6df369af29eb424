package interp_test

import (
	"fmt"

	"github.com/cwbudde/algo-numeric/interp"
)

func ExampleLagrange() {
	xs := []float64{1, 2, 3}
	ys := []float64{1, 4, 9}

	v, err := interp.Lagrange(2.5, xs, ys)
	if err != nil {
		panic(err)
	}

	fmt.Printf("L(2.5) = %.4f\n", v)
	// Output:
	// L(2.5) = 6.2500
}
