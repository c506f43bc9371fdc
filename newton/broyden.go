package newton

import (
	"math"

	"github.com/katalvlaran/rootfind/fdiff"
	"github.com/katalvlaran/rootfind/matrix"
)

// Broyden finds a root of f with Broyden's quasi-Newton method: the Jacobian
// is differenced once at x0 and then corrected by rank-one updates
//
//	J ← J + ((ΔF − J·Δx) / ‖Δx‖²)·Δxᵀ
//
// Iteration, tests, cap and errors are those of FDiff (tag "Broyden").
// A step with ‖Δx‖² zero or non-finite leaves J unchanged.
//
// Complexity: n+1 calls of F up front, then one per iteration plus O(n³) for the SVD.
func Broyden(f Func, x0 []float64, acc float64, opts ...Option) ([]float64, error) {
	res, err := Solve(MethodBroyden, f, x0, acc, opts...)
	if err != nil {
		return nil, err
	}

	return res.X, nil
}

// solveBroyden seeds the state with the single finite-difference Jacobian.
func (r *run) solveBroyden(st state) (Result, error) {
	st.jac = fdiff.Jacobian(r.f, st.f, st.x, r.o.Jacobian...)

	return r.iterate(st, broydenUpdate)
}

// broydenUpdate returns the rank-one corrected Jacobian for next.
func broydenUpdate(prev, next state) matrix.Matrix {
	dx, _ := matrix.SubVec(next.x, prev.x)
	den, _ := matrix.Dot(dx, dx)
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return prev.jac
	}

	df, _ := matrix.SubVec(next.f, prev.f)
	jdx, err := matrix.MatVec(prev.jac, dx)
	if err != nil {
		return prev.jac
	}
	u, _ := matrix.SubVec(df, jdx)
	matrix.ScaleVec(1/den, u)

	corr, err := matrix.Outer(u, dx)
	if err != nil {
		return prev.jac
	}
	jac, err := matrix.Add(prev.jac, corr)
	if err != nil {
		return prev.jac
	}

	return jac
}
