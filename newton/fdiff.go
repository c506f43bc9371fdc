package newton

import (
	"github.com/katalvlaran/rootfind/fdiff"
	"github.com/katalvlaran/rootfind/matrix"
)

// FDiff finds a root of f by Newton–Raphson iteration with a fresh
// forward-difference Jacobian at every iterate.
//
// Implementation:
//   - Stage 1: validate input; if max|F(x0)| < 0.01·acc return a copy of x0.
//   - Stage 2: for k = 1..MaxIterations:
//     J = fdiff.Jacobian(F, F(x), x),
//     x_new = x − J⁺·F(x) (pseudo-inverse, cutoff InverseTolerance),
//     step test max|Δxᵢ|/max(|x_newᵢ|,1) < StepTolerance ⇒ StallPolicy,
//     then F(x_new), max|F(x_new)| < acc ⇒ return x_new.
//   - Stage 3: ErrMaxIterations.
//
// Errors (wrapped with "FDiff"): ErrNilFunc, ErrEmptyInput, ErrBadTolerance,
// ErrNonFinite, ErrDimensionMismatch, ErrSingularJacobian, ErrMaxIterations.
//
// Complexity: per iteration n+1 calls of F plus O(n³) for the SVD.
func FDiff(f Func, x0 []float64, acc float64, opts ...Option) ([]float64, error) {
	res, err := Solve(MethodFDiff, f, x0, acc, opts...)
	if err != nil {
		return nil, err
	}

	return res.X, nil
}

// refreshFunc yields the Jacobian for the next iteration, or nil to have it
// re-estimated at next.x.
type refreshFunc func(prev, next state) matrix.Matrix

// iterate is the Newton loop shared by FDiff and Broyden.
func (r *run) iterate(st state, refresh refreshFunc) (Result, error) {
	var (
		step  []float64
		next  state
		sTest float64
		err   error
	)
	for k := 1; k <= r.o.MaxIterations; k++ {
		if st.jac == nil {
			st.jac = fdiff.Jacobian(r.f, st.f, st.x, r.o.Jacobian...)
		}
		if step, err = r.newtonStep(st.jac, st.f); err != nil {
			return Result{}, err
		}

		// Lengths match by construction.
		next.x, _ = matrix.SubVec(st.x, step)
		next.jac = nil

		// The step test runs before F(x_new): a stall that returns the
		// previous point never evaluates the rejected one.
		sTest = stepTest(st.x, next.x)
		if sTest < r.o.StepTolerance && r.o.Stall == StallReturnPrevious {
			return r.result(st.x, st.f, k), nil
		}
		if next.f, err = r.eval(next.x); err != nil {
			return Result{}, err
		}
		r.observe(k, next.x, next.f, sTest, 1)

		if sTest < r.o.StepTolerance {
			if res, ok := r.stall(st, next, k); ok {
				return res, nil
			}
		}
		if r.converged(next.f) {
			return r.result(next.x, next.f, k), nil
		}

		next.jac = refresh(st, next)
		st = next
	}

	return Result{}, r.maxIterations()
}

// freshJacobian discards J so it is re-estimated at every iterate.
func freshJacobian(_, _ state) matrix.Matrix { return nil }
