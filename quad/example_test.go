package quad_test

import (
	"fmt"

	"github.com/cwbudde/algo-numeric/quad"
)

func ExampleSimpson() {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 4} // samples of x^2

	v, err := quad.Simpson(xs, ys)
	if err != nil {
		panic(err)
	}

	fmt.Printf("integral of x^2 over [0,2] = %.4f\n", v)
	// Output:
	// integral of x^2 over [0,2] = 2.6667
}
