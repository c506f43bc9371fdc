package linesearch

import "math"

// MeritFunc evaluates F at x and returns it with the merit ½‖F(x)‖².
type MeritFunc func(x []float64) (fx []float64, merit float64)

// Trial describes one evaluated step length.
type Trial struct {
	Lambda   float64 // step length tried
	Merit    float64 // merit at x_old + Lambda·p
	Accepted bool    // sufficient decrease held
}

// Result is an accepted step.
type Result struct {
	X      []float64 // x_old + Lambda·p
	F      []float64 // F(X) as returned by the merit function
	Merit  float64   // ½‖F(X)‖²
	Lambda float64   // accepted step length
	Trials int       // number of merit evaluations
}

// Defaults.
const (
	// DefaultAlpha is the Armijo constant α.
	DefaultAlpha = 1e-4

	// DefaultStepTolerance is the relative step size below which λ has collapsed.
	DefaultStepTolerance = 1e-7

	// DefaultGradientTolerance flags a vanishing scaled gradient at collapse.
	DefaultGradientTolerance = 1e-6

	// DefaultMaxTrials caps merit evaluations per search.
	DefaultMaxTrials = 1000
)

// step clamping relative to the previous λ.
const (
	shrinkMax = 0.5
	shrinkMin = 0.1
)

const (
	panicAlpha     = "linesearch: WithAlpha: alpha must lie in (0, 1)"
	panicStepTol   = "linesearch: WithStepTolerance: tolerance must be finite and > 0"
	panicGradTol   = "linesearch: WithGradientTolerance: tolerance must be finite and >= 0"
	panicMaxTrials = "linesearch: WithMaxTrials: n must be > 0"
)

// Options configures Backtrack.
type Options struct {
	Alpha             float64
	StepTolerance     float64
	GradientTolerance float64
	MaxTrials         int
	TrialHook         func(Trial)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the standard settings.
func DefaultOptions() Options {
	return Options{
		Alpha:             DefaultAlpha,
		StepTolerance:     DefaultStepTolerance,
		GradientTolerance: DefaultGradientTolerance,
		MaxTrials:         DefaultMaxTrials,
	}
}

// WithAlpha sets the Armijo constant. Panics unless 0 < a < 1.
func WithAlpha(a float64) Option {
	if !(a > 0 && a < 1) {
		panic(panicAlpha)
	}

	return func(o *Options) { o.Alpha = a }
}

// WithStepTolerance sets TOLX, the relative step size at which λ collapses.
func WithStepTolerance(tolx float64) Option {
	if !isFinite(tolx) || tolx <= 0 {
		panic(panicStepTol)
	}

	return func(o *Options) { o.StepTolerance = tolx }
}

// WithGradientTolerance sets the scaled-gradient threshold used to report
// ErrLocalMinimum. Zero disables the check.
func WithGradientTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicGradTol)
	}

	return func(o *Options) { o.GradientTolerance = tol }
}

// WithMaxTrials caps the number of merit evaluations.
func WithMaxTrials(n int) Option {
	if n <= 0 {
		panic(panicMaxTrials)
	}

	return func(o *Options) { o.MaxTrials = n }
}

// WithTrialHook registers fn to observe every evaluated step length.
func WithTrialHook(fn func(Trial)) Option {
	return func(o *Options) { o.TrialHook = fn }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
