// Package linesearch implements a backtracking line search with the
// Armijo sufficient-decrease condition and quadratic/cubic step models.
//
// 🚀 What is it?
//
//	Given a point x_old, a descent direction p and a merit function
//	f(x) = ½‖F(x)‖², Backtrack looks for a step length λ ∈ (0, 1] such that
//
//	  f(x_old + λ·p) ≤ f(x_old) + α·λ·(∇f·p)
//
//	Full Newton steps (λ = 1) are tried first. On failure λ is shrunk using
//	a quadratic model of f along p, then a cubic model through the two most
//	recent trials, always clamped to [0.1·λ, 0.5·λ].
//
// ✨ Key features:
//   - steps longer than stepMax are rescaled before the search;
//   - a direction with ∇f·p ≥ 0 is rejected up front (ErrNotDescent);
//   - λ collapsing below the relative minimum reports ErrStepCollapsed, and
//     ErrLocalMinimum as well when ∇f is vanishing there;
//   - a non-finite merit value is a failed decrease, never an accepted one;
//   - an optional trial hook observes every evaluated λ.
//
// ⚙️ Usage:
//
//	res, err := linesearch.Backtrack(x, fOld, grad, p, stepMax, merit)
//	if errors.Is(err, linesearch.ErrLineSearch) {
//	  // no acceptable step along p
//	}
//
// Errors:
//
//	Every search failure matches ErrLineSearch plus one specific cause.
//	Malformed input (ErrNilMerit, ErrDimensionMismatch, ErrBadStepMax) does
//	not match ErrLineSearch.
//
// Reference: Dennis & Schnabel, "Numerical Methods for Unconstrained
// Optimization and Nonlinear Equations", §6.3.
package linesearch
