package linesearch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/matrix"
)

// Backtrack searches along p from xOld for a step satisfying the Armijo
// condition on the merit function.
//
// Inputs:
//   - xOld:    current point (not mutated).
//   - fOld:    merit at xOld.
//   - g:       gradient of the merit at xOld.
//   - p:       search direction; rescaled IN PLACE to length stepMax when longer.
//   - stepMax: bound on ‖p‖.
//   - merit:   evaluates F and ½‖F‖² at a trial point.
//
// Implementation:
//   - Stage 1: validate input, cap ‖p‖, require slope = g·p < 0.
//   - Stage 2: λ_min = TOLX / max_i(|pᵢ| / max(|xOldᵢ|, 1)).
//   - Stage 3: for λ = 1, ... evaluate f(xOld + λp); accept on
//     f ≤ fOld + α·λ·slope. Otherwise pick the minimizer of a quadratic
//     (first backtrack or after a non-finite trial) or cubic model, clamped
//     to [0.1λ, 0.5λ].
//   - Stage 4: a backtracked λ < λ_min, or MaxTrials evaluations,
//     ⇒ ErrStepCollapsed. The full step is always tried, so a Newton step
//     that is already negligible relative to xOld can still be accepted.
//
// Errors:
//   - ErrNilMerit, ErrDimensionMismatch, ErrBadStepMax for malformed input.
//   - ErrLineSearch joined with ErrNotDescent, ErrStepCollapsed, and for a
//     vanishing scaled gradient also ErrLocalMinimum.
//
// Complexity: O(n) per trial plus the merit evaluations.
func Backtrack(xOld []float64, fOld float64, g, p []float64, stepMax float64, merit MeritFunc, opts ...Option) (Result, error) {
	// Stage 1: validate and prepare the direction.
	if merit == nil {
		return Result{}, ErrNilMerit
	}
	n := len(xOld)
	if n == 0 || len(g) != n || len(p) != n {
		return Result{}, ErrDimensionMismatch
	}
	if !isFinite(stepMax) || stepMax <= 0 {
		return Result{}, ErrBadStepMax
	}
	o := gatherOptions(opts...)

	if norm := matrix.Norm(p); norm > stepMax {
		matrix.ScaleVec(stepMax/norm, p)
	}
	// Lengths already match, Dot cannot fail.
	slope, _ := matrix.Dot(g, p)
	if !(slope < 0) {
		return Result{}, failure(fmt.Errorf("slope %g: %w", slope, ErrNotDescent))
	}

	// Stage 2: minimum step length relative to the scale of xOld.
	var test float64
	for i := 0; i < n; i++ {
		if t := math.Abs(p[i]) / math.Max(math.Abs(xOld[i]), 1); t > test {
			test = t
		}
	}
	lamMin := o.StepTolerance / test

	// Stage 3: backtracking loop.
	var (
		lam      = 1.0
		lamPrev  float64 // previous finite trial, for the cubic model
		fPrev    float64
		havePrev bool
		tmp      float64
		x        []float64
		fx       []float64
		f        float64
	)
	for trials := 0; ; {
		if trials >= o.MaxTrials || (trials > 0 && lam < lamMin) {
			return Result{}, collapse(xOld, fOld, g, o)
		}

		x, _ = matrix.AddScaled(xOld, lam, p)
		fx, f = merit(x)
		trials++

		if isFinite(f) && f <= fOld+o.Alpha*lam*slope {
			notify(o, lam, f, true)

			return Result{X: x, F: fx, Merit: f, Lambda: lam, Trials: trials}, nil
		}
		notify(o, lam, f, false)

		switch {
		case !isFinite(f):
			// No usable model; shrink hard and restart modelling from here.
			tmp = shrinkMin * lam
			havePrev = false
		case !havePrev:
			tmp = quadraticStep(lam, f, fOld, slope)
		default:
			tmp = cubicStep(lam, f, lamPrev, fPrev, fOld, slope)
		}
		if !(tmp <= shrinkMax*lam) {
			tmp = shrinkMax * lam
		}
		if isFinite(f) {
			lamPrev, fPrev, havePrev = lam, f, true
		}
		lam = math.Max(tmp, shrinkMin*lam)
	}
}

// quadraticStep minimizes q(t) = fOld + slope·t + c·t² fitted through f(lam).
func quadraticStep(lam, f, fOld, slope float64) float64 {
	return -slope * lam * lam / (2 * (f - fOld - slope*lam))
}

// cubicStep minimizes the cubic through fOld, slope, f(lam) and f(lamPrev).
func cubicStep(lam, f, lamPrev, fPrev, fOld, slope float64) float64 {
	rhs1 := f - fOld - lam*slope
	rhs2 := fPrev - fOld - lamPrev*slope
	a := (rhs1/(lam*lam) - rhs2/(lamPrev*lamPrev)) / (lam - lamPrev)
	b := (-lamPrev*rhs1/(lam*lam) + lam*rhs2/(lamPrev*lamPrev)) / (lam - lamPrev)

	if a == 0 {
		return -slope / (2 * b)
	}
	disc := b*b - 3*a*slope
	switch {
	case disc < 0:
		return shrinkMax * lam
	case b <= 0:
		return (-b + math.Sqrt(disc)) / (3 * a)
	default:
		return -slope / (b + math.Sqrt(disc))
	}
}

// collapse builds the ErrStepCollapsed failure, adding ErrLocalMinimum when
// max_i |gᵢ|·max(|xOldᵢ|,1) / max(fOld, n/2) is below the gradient tolerance
// and fOld is not negligible. A vanishing merit means x_old is at a root
// already, not at a spurious minimum.
func collapse(xOld []float64, fOld float64, g []float64, o Options) error {
	if fOld <= 0.5*o.GradientTolerance*o.GradientTolerance {
		return failure(ErrStepCollapsed)
	}

	var test float64
	den := math.Max(fOld, 0.5*float64(len(xOld)))
	for i := range g {
		if t := math.Abs(g[i]) * math.Max(math.Abs(xOld[i]), 1) / den; t > test {
			test = t
		}
	}
	if test < o.GradientTolerance {
		return failure(fmt.Errorf("%w: %w", ErrStepCollapsed, ErrLocalMinimum))
	}

	return failure(ErrStepCollapsed)
}

func notify(o Options, lam, f float64, accepted bool) {
	if o.TrialHook != nil {
		o.TrialHook(Trial{Lambda: lam, Merit: f, Accepted: accepted})
	}
}
