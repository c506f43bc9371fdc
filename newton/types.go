package newton

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rootfind/fdiff"
)

// Func is the system F: ℝⁿ → ℝⁿ whose root is sought. See fdiff.Func.
type Func = fdiff.Func

// Sentinel errors returned by the drivers. Each is wrapped with the
// driver's operation tag ("FDiff", "Broyden", "LineSearch").
var (
	// ErrSingularJacobian indicates the pseudo-inverse of the Jacobian could
	// not be formed (non-finite entries or a failed decomposition). The
	// matrix-level cause stays in the chain.
	ErrSingularJacobian = errors.New("newton: jacobian could not be inverted")

	// ErrMaxIterations indicates the iteration cap was reached without
	// convergence. No partial solution is returned.
	ErrMaxIterations = errors.New("newton: maximum number of iterations reached")

	// ErrLineSearch indicates the backtracking line search found no
	// acceptable step. The linesearch cause stays in the chain.
	ErrLineSearch = errors.New("newton: line search failed")

	// ErrNilFunc indicates F is nil.
	ErrNilFunc = errors.New("newton: function is nil")

	// ErrEmptyInput indicates an empty initial guess.
	ErrEmptyInput = errors.New("newton: initial guess is empty")

	// ErrBadTolerance indicates acc is not finite and > 0.
	ErrBadTolerance = errors.New("newton: accuracy must be finite and > 0")

	// ErrDimensionMismatch indicates F returned a vector whose length differs
	// from len(x).
	ErrDimensionMismatch = errors.New("newton: F(x) and x differ in length")

	// ErrNonFinite indicates the initial guess holds NaN or ±Inf.
	ErrNonFinite = errors.New("newton: initial guess is not finite")

	// ErrUnsupportedMethod indicates an unknown Method passed to Solve.
	ErrUnsupportedMethod = errors.New("newton: unsupported method")
)

// Method selects the root-finding driver.
type Method int

const (
	// MethodFDiff re-estimates the Jacobian by finite differences every iteration.
	MethodFDiff Method = iota

	// MethodBroyden differences the Jacobian once and applies rank-one updates.
	MethodBroyden

	// MethodLineSearch takes fresh Newton directions and backtracks along them.
	MethodLineSearch
)

// String returns the operation tag of m.
func (m Method) String() string {
	switch m {
	case MethodFDiff:
		return opFDiff
	case MethodBroyden:
		return opBroyden
	case MethodLineSearch:
		return opLineSearch
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// StallPolicy decides what happens when the relative step falls below the
// step tolerance while the residual is still above acc.
type StallPolicy int

const (
	// StallContinue keeps iterating; only the residual test reports success.
	StallContinue StallPolicy = iota

	// StallReturnPrevious returns the point before the negligible step.
	// FDiff and Broyden return without evaluating F at the rejected point,
	// so that iteration reaches no observer.
	StallReturnPrevious

	// StallReturnLatest returns the point after the negligible step.
	StallReturnLatest
)

// Iteration is the snapshot passed to an observer after every outer iteration.
type Iteration struct {
	Method   Method
	Index    int       // 1-based iteration number
	X        []float64 // new iterate (a copy)
	Residual float64   // max|F(X)|
	StepTest float64   // max_i |Δxᵢ| / max(|Xᵢ|, 1)
	Merit    float64   // ½‖F(X)‖²
	Lambda   float64   // accepted step length; 1 for the pure Newton drivers
}

// Result is the outcome of Solve.
type Result struct {
	X           []float64 // solution
	F           []float64 // F(X)
	Residual    float64   // max|F(X)|
	Iterations  int       // outer iterations performed (0 when x0 was already a root)
	Evaluations int       // calls of F, Jacobian estimation included
	Method      Method
}

// Operation tags.
const (
	opFDiff      = "FDiff"
	opBroyden    = "Broyden"
	opLineSearch = "LineSearch"
)

// newtonErrorf wraps err with an operation tag.
func newtonErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
