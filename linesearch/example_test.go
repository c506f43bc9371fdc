package linesearch_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/linesearch"
)

// ExampleBacktrack shortens the Newton step for F(x) = atan(x) from x = 3,
// where the full step would overshoot to the other side of the root.
func ExampleBacktrack() {
	merit := func(x []float64) ([]float64, float64) {
		v := math.Atan(x[0])

		return []float64{v}, 0.5 * v * v
	}
	x0 := 3.0
	f0 := math.Atan(x0)
	d := 1 / (1 + x0*x0) // F'(x0)

	res, err := linesearch.Backtrack(
		[]float64{x0},
		0.5*f0*f0,
		[]float64{d * f0},  // ∇½F² = F'·F
		[]float64{-f0 / d}, // Newton direction
		100,
		merit,
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("shortened:", res.Lambda < 1)
	fmt.Println("decreased:", res.Merit < 0.5*f0*f0)
	// Output:
	// shortened: true
	// decreased: true
}
