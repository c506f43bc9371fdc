// Package newton finds roots of nonlinear systems F(x) = 0, F: ℝⁿ → ℝⁿ.
//
// 🚀 What is it?
//
//	Three drivers share one skeleton: Newton step → convergence check →
//	Jacobian refresh. They differ in how the Jacobian is obtained and how a
//	step is accepted:
//
//	  FDiff      — forward-difference Jacobian at every iterate, full Newton step.
//	  Broyden    — Jacobian differenced once, then rank-one secant updates.
//	  LineSearch — fresh Jacobian, Newton direction damped by backtracking on ½‖F‖².
//
//	Steps are solved with the Moore–Penrose pseudo-inverse (matrix.PseudoInverse),
//	so a rank-deficient Jacobian still yields a least-squares step.
//
// ✨ Convergence:
//   - x0 with max|F(x0)| < 0.01·acc is returned unchanged (no iteration).
//   - Success: max|F(x)| < acc.
//   - A relative step max|Δxᵢ|/max(|xᵢ|,1) below StepTolerance is handled by
//     the StallPolicy (default: keep iterating).
//   - At most MaxIterations (200) outer iterations, then ErrMaxIterations.
//
// ⚙️ Usage:
//
//	f := func(x []float64) []float64 {
//	  return []float64{x[0]*x[0]*x[0] + 3*x[0] - 7}
//	}
//	x, err := newton.LineSearch(f, []float64{1}, 1e-8)
//
//	// Or with diagnostics:
//	res, err := newton.Solve(newton.MethodBroyden, f, []float64{1}, 1e-8,
//	  newton.WithObserver(func(it newton.Iteration) { fmt.Println(it.Index, it.Residual) }))
//
// Errors:
//
//	All errors wrap a sentinel from this package (match with errors.Is) and
//	carry the driver name ("FDiff", "Broyden", "LineSearch"). Numerical
//	causes from matrix and linesearch stay in the chain. Invalid option
//	values panic at construction; user input never does.
//
// Concurrency:
//
//	A solve is synchronous and keeps no state after it returns. Distinct
//	solves may run in parallel as long as F itself is safe for that.
package newton
