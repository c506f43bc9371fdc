package newton

import (
	"math"

	"github.com/katalvlaran/rootfind/fdiff"
	"github.com/katalvlaran/rootfind/linesearch"
)

// Default solve-scoped constants.
const (
	// DefaultMaxIterations caps outer iterations.
	DefaultMaxIterations = 200

	// DefaultStepTolerance is TOLX for the FDiff and Broyden drivers.
	DefaultStepTolerance = 1e-7

	// DefaultLineSearchStepTolerance is TOLX for the LineSearch driver.
	DefaultLineSearchStepTolerance = epsilon

	// DefaultInverseTolerance is the singular-value cutoff of the pseudo-inverse.
	DefaultInverseTolerance = epsilon

	// DefaultStepMax scales the line-search step bound 100·max(‖x₀‖, n).
	DefaultStepMax = 100.0

	// DefaultStallPolicy keeps iterating on a negligible step.
	DefaultStallPolicy = StallContinue

	// rootShortcut: x₀ is returned as is when max|F(x₀)| < rootShortcut·acc.
	rootShortcut = 0.01

	epsilon = 2.220446049250313e-16
)

const (
	panicMaxIter = "newton: WithMaxIterations: n must be > 0"
	panicStepTol = "newton: WithStepTolerance: tolerance must be finite and >= 0"
	panicInvTol  = "newton: WithInverseTolerance: tolerance must be finite and >= 0"
	panicStepMax = "newton: WithStepMax: factor must be finite and > 0"
	panicStall   = "newton: WithStallPolicy: unknown policy"
)

// Options configures a solve. Build it with DefaultOptions and Option values.
//
//   - MaxIterations:    outer iteration cap.
//   - StepTolerance:    TOLX of the relative step test.
//   - InverseTolerance: singular values ≤ this are treated as zero.
//   - StepMax:          line-search bound factor (LineSearch only).
//   - Stall:            reaction to a negligible step.
//   - Jacobian:         options forwarded to fdiff.
//   - LineSearch:       options forwarded to linesearch.Backtrack.
//   - Observer:         called after every outer iteration.
type Options struct {
	MaxIterations    int
	StepTolerance    float64
	InverseTolerance float64
	StepMax          float64
	Stall            StallPolicy
	Jacobian         []fdiff.Option
	LineSearch       []linesearch.Option
	Observer         func(Iteration)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults for method m. Only StepTolerance
// depends on m.
func DefaultOptions(m Method) Options {
	o := Options{
		MaxIterations:    DefaultMaxIterations,
		StepTolerance:    DefaultStepTolerance,
		InverseTolerance: DefaultInverseTolerance,
		StepMax:          DefaultStepMax,
		Stall:            DefaultStallPolicy,
	}
	if m == MethodLineSearch {
		o.StepTolerance = DefaultLineSearchStepTolerance
	}

	return o
}

// WithMaxIterations sets the outer iteration cap. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIter)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithStepTolerance sets TOLX. Zero disables the step test.
func WithStepTolerance(tolx float64) Option {
	if !finite(tolx) || tolx < 0 {
		panic(panicStepTol)
	}

	return func(o *Options) { o.StepTolerance = tolx }
}

// WithInverseTolerance sets the pseudo-inverse cutoff.
func WithInverseTolerance(tol float64) Option {
	if !finite(tol) || tol < 0 {
		panic(panicInvTol)
	}

	return func(o *Options) { o.InverseTolerance = tol }
}

// WithStepMax sets the factor of the line-search step bound.
func WithStepMax(factor float64) Option {
	if !finite(factor) || factor <= 0 {
		panic(panicStepMax)
	}

	return func(o *Options) { o.StepMax = factor }
}

// WithStallPolicy selects the reaction to a negligible step.
func WithStallPolicy(p StallPolicy) Option {
	if p < StallContinue || p > StallReturnLatest {
		panic(panicStall)
	}

	return func(o *Options) { o.Stall = p }
}

// WithJacobianStep sets the finite-difference base step. Panics like fdiff.WithStep.
func WithJacobianStep(h float64) Option {
	step := fdiff.WithStep(h)

	return func(o *Options) { o.Jacobian = append(o.Jacobian, step) }
}

// WithJacobianOptions forwards arbitrary options to the Jacobian estimator.
func WithJacobianOptions(opts ...fdiff.Option) Option {
	return func(o *Options) { o.Jacobian = append(o.Jacobian, opts...) }
}

// WithLineSearchOptions forwards options to linesearch.Backtrack.
func WithLineSearchOptions(opts ...linesearch.Option) Option {
	return func(o *Options) { o.LineSearch = append(o.LineSearch, opts...) }
}

// WithObserver registers fn to receive every outer iteration.
func WithObserver(fn func(Iteration)) Option {
	return func(o *Options) { o.Observer = fn }
}

func gatherOptions(m Method, opts ...Option) Options {
	o := DefaultOptions(m)
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
