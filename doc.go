// Package rootfind solves systems of nonlinear equations F(x) = 0 with
// Newton-type methods, from the Jacobian estimate up to convergence charts.
//
// 🚀 What is rootfind?
//
//	A small pure-Go numerical toolkit built on gonum:
//		• Finite differences: forward-difference Jacobian of F: ℝⁿ → ℝⁿ
//		• Line search: backtracking with Armijo decrease, quadratic/cubic models
//		• Newton drivers: FDiff, Broyden (secant updates), LineSearch (damped)
//		• Linear algebra: dense matrices, vector kernels, SVD pseudo-inverse
//		• Tracing: iteration recorder, HTML charts and static plots
//
// ✨ Why choose rootfind?
//
//   - One call per method – hand over F, x₀ and an accuracy
//   - Rank-deficient Jacobians still give a least-squares step
//   - Errors you can match – sentinel errors with errors.Is, no panics on user input
//   - Observable – hooks for every iteration and every line-search trial
//
// Packages:
//
//	fdiff/      — forward-difference Jacobian estimation
//	linesearch/ — backtracking line search along a descent direction
//	matrix/     — Dense matrix, vector kernels, pseudo-inverse
//	newton/     — the FDiff, Broyden and LineSearch drivers, Solve dispatcher
//	trace/      — Recorder, go-echarts Charts, gonum/plot Plot
//
// Quick example:
//
//	x, err := newton.Broyden(func(x []float64) []float64 {
//		return []float64{x[0]*x[0]*x[0] + 3*x[0] - 7}
//	}, []float64{1}, 1e-10)
//
//	go get github.com/katalvlaran/rootfind/newton
package rootfind
