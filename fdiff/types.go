package fdiff

import "math"

// Func is a vector-valued function F: ℝⁿ → ℝⁿ.
//
// Implementations must be deterministic and free of side effects; the
// estimator may call them with arbitrary points. The returned slice is
// only read.
type Func func(x []float64) []float64

// DefaultStep is √ε for float64, the usual forward-difference step: it
// balances truncation error O(h) against rounding error O(ε/h).
const DefaultStep = 1.4901161193847656e-08

// DefaultRelative scales the step by max(|xⱼ|, 1) unless told otherwise.
const DefaultRelative = true

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicStepInvalid   = "fdiff: WithStep: step must be finite and > 0"
	panicEmptyPoint    = "fdiff: point x must be non-empty"
	panicResidualLen   = "fdiff: residual length differs from len(x)"
	panicFuncOutputLen = "fdiff: F returned a vector whose length differs from len(x)"
	panicNilFunc       = "fdiff: F is nil"
)

// Options configures the finite-difference step.
//
//   - Step:     base step h (> 0). Default DefaultStep.
//   - Relative: when true, hⱼ = Step·max(|xⱼ|, 1);
//     when false, hⱼ = Step for every coordinate.
type Options struct {
	Step     float64
	Relative bool
}

// Option is a functional setter for Options.
type Option func(*Options)

// DefaultOptions returns the default step policy: relative √ε.
func DefaultOptions() Options {
	return Options{
		Step:     DefaultStep,
		Relative: DefaultRelative,
	}
}

// WithStep sets the base step h. Panics when h is not finite or h <= 0.
func WithStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.Step = h }
}

// WithAbsoluteStep uses the base step unscaled for every coordinate.
func WithAbsoluteStep() Option {
	return func(o *Options) { o.Relative = false }
}

// gatherOptions resolves opts over DefaultOptions. Nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
