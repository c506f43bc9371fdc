package trace_test

import (
	"fmt"

	"github.com/katalvlaran/rootfind/newton"
	"github.com/katalvlaran/rootfind/trace"
)

// ExampleRecorder attaches a recorder to a solve and inspects it afterwards.
func ExampleRecorder() {
	var rec trace.Recorder
	f := func(x []float64) []float64 { return []float64{x[0]*x[0] - 2} }
	if _, err := newton.LineSearch(f, []float64{1}, 1e-12, rec.Options()...); err != nil {
		fmt.Println("error:", err)

		return
	}
	last := rec.Points[rec.Len()-1]
	fmt.Println(rec.Methods(), rec.Len())
	fmt.Printf("x = %.10f\n", last.X[0])
	// Output:
	// [LineSearch] 5
	// x = 1.4142135624
}
