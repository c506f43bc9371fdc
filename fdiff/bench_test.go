package fdiff_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/fdiff"
)

// chain is a tridiagonal test system F_i = 3x_i − x_{i−1} − x_{i+1} + sin(x_i).
func chain(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v := 3*x[i] + math.Sin(x[i])
		if i > 0 {
			v -= x[i-1]
		}
		if i < n-1 {
			v -= x[i+1]
		}
		out[i] = v
	}

	return out
}

func benchmarkJacobian(b *testing.B, n int) {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / float64(n)
	}
	fx := chain(x)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fdiff.Jacobian(chain, fx, x)
	}
}

// BenchmarkJacobian_10 estimates a 10×10 Jacobian.
func BenchmarkJacobian_10(b *testing.B) { benchmarkJacobian(b, 10) }

// BenchmarkJacobian_100 estimates a 100×100 Jacobian.
func BenchmarkJacobian_100(b *testing.B) { benchmarkJacobian(b, 100) }
