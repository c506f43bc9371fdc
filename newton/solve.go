package newton

import (
	"fmt"

	"github.com/katalvlaran/rootfind/matrix"
)

const opSolve = "Solve"

// Solve validates the input, takes the already-a-root shortcut and routes
// to the driver selected by method.
//
// Contracts:
//   - f is deterministic and returns len(x) values for every x.
//   - x0 is finite and non-empty; it is never mutated.
//   - acc > 0 bounds max|F(x*)| on success (StallReturnPrevious and
//     StallReturnLatest may return earlier, see StallPolicy).
//
// Errors: sentinels from types.go wrapped with the method's tag;
// ErrUnsupportedMethod wrapped with "Solve".
//
// Complexity: per driver, see FDiff, Broyden and LineSearch.
func Solve(method Method, f Func, x0 []float64, acc float64, opts ...Option) (Result, error) {
	// Stage 1: route check and input validation.
	if method < MethodFDiff || method > MethodLineSearch {
		return Result{}, newtonErrorf(opSolve, fmt.Errorf("%v: %w", method, ErrUnsupportedMethod))
	}
	if err := validateInput(f, x0, acc); err != nil {
		return Result{}, newtonErrorf(method.String(), err)
	}

	r := newRun(method, f, len(x0), acc, gatherOptions(method, opts...))
	x := matrix.CloneVec(x0)
	fx, err := r.eval(x)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: x0 may already be a root.
	if matrix.MaxAbs(fx) < rootShortcut*acc {
		return r.result(x, fx, 0), nil
	}

	// Stage 3: dispatch.
	st := state{x: x, f: fx}
	switch method {
	case MethodBroyden:
		return r.solveBroyden(st)
	case MethodLineSearch:
		return r.solveLineSearch(st)
	default:
		return r.iterate(st, freshJacobian)
	}
}
