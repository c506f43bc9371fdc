package newton

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/fdiff"
	"github.com/katalvlaran/rootfind/linesearch"
	"github.com/katalvlaran/rootfind/matrix"
)

// LineSearch finds a root of f with a globally convergent Newton method:
// each Newton direction p = −J⁺F is shortened by a backtracking line search
// on the merit ½‖F‖² until it gives sufficient decrease.
//
// Implementation:
//   - Stage 1: validate input; if max|F(x0)| < 0.01·acc return a copy of x0.
//     stepMax = StepMax·max(‖x0‖, n).
//   - Stage 2: for k = 1..MaxIterations:
//     J = fdiff.Jacobian at x, g = Jᵀ·F, p = −J⁺·F,
//     (x, F) = linesearch.Backtrack(x, ½‖F‖², g, p, stepMax),
//     max|F| < acc ⇒ return x; step test < StepTolerance ⇒ StallPolicy.
//   - Stage 3: ErrMaxIterations.
//
// Errors (wrapped with "LineSearch"): those of FDiff plus ErrLineSearch,
// which keeps the linesearch cause (linesearch.ErrNotDescent,
// linesearch.ErrStepCollapsed, linesearch.ErrLocalMinimum) in the chain.
//
// Complexity: per iteration n calls of F for J, the line-search trials and
// O(n³) for the SVD.
func LineSearch(f Func, x0 []float64, acc float64, opts ...Option) ([]float64, error) {
	res, err := Solve(MethodLineSearch, f, x0, acc, opts...)
	if err != nil {
		return nil, err
	}

	return res.X, nil
}

// solveLineSearch runs the damped Newton loop from st.
func (r *run) solveLineSearch(st state) (Result, error) {
	var (
		stepMax = r.o.StepMax * math.Max(matrix.Norm(st.x), float64(r.n))
		fOld    = merit(st.f)
		evalErr error
	)
	meritFn := func(x []float64) ([]float64, float64) {
		fx, err := r.eval(x)
		if err != nil {
			evalErr = err

			return nil, math.NaN()
		}

		return fx, merit(fx)
	}

	var (
		jac   *matrix.Dense
		jt    matrix.Matrix
		g     []float64
		p     []float64
		res   linesearch.Result
		sTest float64
		err   error
	)
	for k := 1; k <= r.o.MaxIterations; k++ {
		jac = fdiff.Jacobian(r.f, st.f, st.x, r.o.Jacobian...)

		// Gradient of ½‖F‖² is Jᵀ·F.
		if jt, err = matrix.Transpose(jac); err != nil {
			return Result{}, r.errorf(err)
		}
		if g, err = matrix.MatVec(jt, st.f); err != nil {
			return Result{}, r.errorf(err)
		}
		if p, err = r.newtonStep(jac, st.f); err != nil {
			return Result{}, err
		}
		matrix.ScaleVec(-1, p)

		res, err = linesearch.Backtrack(st.x, fOld, g, p, stepMax, meritFn, r.o.LineSearch...)
		if evalErr != nil {
			return Result{}, evalErr
		}
		if err != nil {
			return Result{}, r.errorf(fmt.Errorf("%w: %w", ErrLineSearch, err))
		}

		sTest = stepTest(st.x, res.X)
		r.observe(k, res.X, res.F, sTest, res.Lambda)

		next := state{x: res.X, f: res.F}
		if r.converged(next.f) {
			return r.result(next.x, next.f, k), nil
		}
		if sTest < r.o.StepTolerance {
			if out, ok := r.stall(st, next, k); ok {
				return out, nil
			}
		}

		st, fOld = next, res.Merit
	}

	return Result{}, r.maxIterations()
}
