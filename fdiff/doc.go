// Package fdiff estimates Jacobian matrices of vector-valued functions by
// forward finite differences.
//
// 🚀 What is it?
//
//	For F: ℝⁿ → ℝⁿ and a point x, column j of the Jacobian is approximated by
//
//	  J[:, j] ≈ (F(x + hⱼ·eⱼ) − F(x)) / hⱼ
//
//	where eⱼ is the j-th unit vector and hⱼ a small step.
//
// ✨ Key features:
//   - Jacobian reuses a residual F(x) the caller already has (n calls of F).
//   - JacobianAt recomputes F(x) itself (n+1 calls of F).
//   - scale-dependent step hⱼ = h·max(|xⱼ|, 1) by default, or a fixed
//     step via WithAbsoluteStep; in both cases hⱼ is rounded to the exactly
//     representable (xⱼ+hⱼ)−xⱼ.
//   - x is never mutated; F receives a private copy.
//
// ⚙️ Usage:
//
//	f := func(x []float64) []float64 {
//	  return []float64{x[0]*x[0] - x[1], x[0] + x[1]}
//	}
//	x := []float64{1, 2}
//	jac := fdiff.Jacobian(f, f(x), x)
//
// Errors:
//
//	There is no error path: a degenerate or non-finite estimate is returned
//	as is and left for the caller to reject. A length mismatch between x,
//	F(x) and the residual passed in is a programmer error and panics.
//
// Performance:
//
//   - Time:   n evaluations of F (n+1 for JacobianAt) plus O(n²)
//   - Memory: O(n²)
package fdiff
