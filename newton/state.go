package newton

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/matrix"
)

// state is the per-iteration accumulator threaded through a driver loop.
//   - x   current iterate (owned by the loop)
//   - f   F(x)
//   - jac Jacobian for the next step; nil means "estimate it at x"
type state struct {
	x   []float64
	f   []float64
	jac matrix.Matrix
}

// run carries what one solve needs besides the evolving state.
type run struct {
	method Method
	f      Func // counting wrapper around the caller's F
	user   Func
	n      int
	acc    float64
	o      Options
	evals  int
}

// newRun wraps f so every call (Jacobian columns included) is counted.
func newRun(method Method, f Func, n int, acc float64, o Options) *run {
	r := &run{method: method, user: f, n: n, acc: acc, o: o}
	r.f = func(x []float64) []float64 {
		r.evals++

		return r.user(x)
	}

	return r
}

// eval computes F(x) on a private copy of x and checks the output length.
func (r *run) eval(x []float64) ([]float64, error) {
	fx := r.f(matrix.CloneVec(x))
	if len(fx) != r.n {
		return nil, r.errorf(fmt.Errorf("len(F(x)) = %d, want %d: %w", len(fx), r.n, ErrDimensionMismatch))
	}

	return fx, nil
}

// newtonStep returns J⁺·fx.
//
// Errors: ErrSingularJacobian joined with the matrix cause.
func (r *run) newtonStep(jac matrix.Matrix, fx []float64) ([]float64, error) {
	pinv, err := matrix.PseudoInverse(jac, r.o.InverseTolerance)
	if err != nil {
		return nil, r.errorf(fmt.Errorf("%w: %w", ErrSingularJacobian, err))
	}
	// pinv is n×n and len(fx) == n: MatVec cannot fail.
	step, _ := matrix.MatVec(pinv, fx)

	return step, nil
}

// converged reports max|fx| < acc. NaN never converges.
func (r *run) converged(fx []float64) bool {
	return matrix.MaxAbs(fx) < r.acc
}

// stall applies the stall policy after a step with StepTest below TOLX.
// ok is false when the loop should go on.
func (r *run) stall(prev, next state, k int) (res Result, ok bool) {
	switch r.o.Stall {
	case StallReturnPrevious:
		return r.result(prev.x, prev.f, k), true
	case StallReturnLatest:
		return r.result(next.x, next.f, k), true
	default:
		return Result{}, false
	}
}

// observe reports iteration k to the observer, if any.
func (r *run) observe(k int, x, fx []float64, stepTest, lambda float64) {
	if r.o.Observer == nil {
		return
	}
	r.o.Observer(Iteration{
		Method:   r.method,
		Index:    k,
		X:        matrix.CloneVec(x),
		Residual: matrix.MaxAbs(fx),
		StepTest: stepTest,
		Merit:    merit(fx),
		Lambda:   lambda,
	})
}

func (r *run) result(x, fx []float64, iterations int) Result {
	return Result{
		X:           matrix.CloneVec(x),
		F:           matrix.CloneVec(fx),
		Residual:    matrix.MaxAbs(fx),
		Iterations:  iterations,
		Evaluations: r.evals,
		Method:      r.method,
	}
}

func (r *run) maxIterations() error {
	return r.errorf(fmt.Errorf("%d iterations: %w", r.o.MaxIterations, ErrMaxIterations))
}

func (r *run) errorf(err error) error {
	return newtonErrorf(r.method.String(), err)
}

// stepTest is max_i |xNewᵢ − xOldᵢ| / max(|xNewᵢ|, 1). NaN propagates.
func stepTest(xOld, xNew []float64) float64 {
	var test, t float64
	for i := range xNew {
		t = math.Abs(xNew[i]-xOld[i]) / math.Max(math.Abs(xNew[i]), 1)
		if math.IsNaN(t) {
			return t
		}
		if t > test {
			test = t
		}
	}

	return test
}

// merit is ½‖fx‖².
func merit(fx []float64) float64 {
	m, _ := matrix.Dot(fx, fx)

	return 0.5 * m
}
