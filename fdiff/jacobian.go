package fdiff

import (
	"math"

	"github.com/katalvlaran/rootfind/matrix"
)

// Jacobian estimates ∂F/∂x at x by forward differences, reusing the
// caller's residual fx = F(x).
//
// Algorithm Outline:
//  1. n = len(x). Allocate an n×n Dense J (finite-only policy off).
//  2. For j = 0..n-1:
//     hⱼ = Step·max(|xⱼ|, 1), or Step when absolute,
//     xh = copy(x), xh[j] += hⱼ, hⱼ = xh[j] − x[j],
//     J[:, j] = (F(xh) − fx) / hⱼ.
//  3. Return J.
//
// F is invoked exactly n times. x and fx are not mutated.
//
// Panics (programmer errors): f == nil, len(x) == 0, len(fx) != len(x),
// or F returning a vector of the wrong length.
//
// Complexity: n calls of F, O(n²) time and memory.
func Jacobian(f Func, fx, x []float64, opts ...Option) *matrix.Dense {
	if f == nil {
		panic(panicNilFunc)
	}
	n := len(x)
	if n == 0 {
		panic(panicEmptyPoint)
	}
	if len(fx) != n {
		panic(panicResidualLen)
	}
	o := gatherOptions(opts...)

	// n > 0 was checked above, so NewDense cannot fail.
	jac, _ := matrix.NewDense(n, n, matrix.WithNoValidateNaNInf())

	var (
		xh  = make([]float64, n) // perturbed point, refreshed per column
		col = make([]float64, n) // column buffer
		fh  []float64
		h   float64
	)
	for j := 0; j < n; j++ {
		copy(xh, x)
		h = stepFor(x[j], o)
		xh[j] = x[j] + h
		h = xh[j] - x[j] // exactly representable step

		fh = f(xh)
		if len(fh) != n {
			panic(panicFuncOutputLen)
		}
		for i := 0; i < n; i++ {
			col[i] = (fh[i] - fx[i]) / h
		}
		// Column index and length are valid and the policy is off: no error.
		_ = jac.SetCol(j, col)
	}

	return jac
}

// JacobianAt is Jacobian without a known residual: it evaluates F(x)
// first, so F is invoked exactly n+1 times.
//
// Panics under the same conditions as Jacobian.
func JacobianAt(f Func, x []float64, opts ...Option) *matrix.Dense {
	if f == nil {
		panic(panicNilFunc)
	}
	if len(x) == 0 {
		panic(panicEmptyPoint)
	}
	fx := f(matrix.CloneVec(x))
	if len(fx) != len(x) {
		panic(panicFuncOutputLen)
	}

	return Jacobian(f, fx, x, opts...)
}

// stepFor returns the raw step for a coordinate with value xj.
func stepFor(xj float64, o Options) float64 {
	if !o.Relative {
		return o.Step
	}

	return o.Step * math.Max(math.Abs(xj), 1)
}
