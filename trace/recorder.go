package trace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/rootfind/linesearch"
	"github.com/katalvlaran/rootfind/newton"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned by renderers when nothing has been recorded.
var ErrEmpty = errors.New("trace: no iterations recorded")

// Point is one recorded outer iteration.
type Point struct {
	Method   string    `json:"method" yaml:"method"`
	Index    int       `json:"index" yaml:"index"`
	X        []float64 `json:"x" yaml:"x"`
	Residual float64   `json:"residual" yaml:"residual"`
	StepTest float64   `json:"step_test" yaml:"step_test"`
	Merit    float64   `json:"merit" yaml:"merit"`
	Lambda   float64   `json:"lambda" yaml:"lambda"`
}

// Trial is one line-search evaluation; Outer is the index of the outer
// iteration it belongs to.
type Trial struct {
	Outer    int     `json:"outer" yaml:"outer"`
	Lambda   float64 `json:"lambda" yaml:"lambda"`
	Merit    float64 `json:"merit" yaml:"merit"`
	Accepted bool    `json:"accepted" yaml:"accepted"`
}

// Recorder accumulates Points and Trials. The zero value is ready to use.
type Recorder struct {
	Points []Point
	Trials []Trial

	// outer counts iterations of the current solve; trials arrive before
	// the iteration that owns them is observed.
	outer int
}

// Observe records it. Pass it to newton.WithObserver.
func (r *Recorder) Observe(it newton.Iteration) {
	r.outer = it.Index
	r.Points = append(r.Points, Point{
		Method:   it.Method.String(),
		Index:    it.Index,
		X:        append([]float64(nil), it.X...),
		Residual: it.Residual,
		StepTest: it.StepTest,
		Merit:    it.Merit,
		Lambda:   it.Lambda,
	})
}

// ObserveTrial records t. Pass it to linesearch.WithTrialHook.
func (r *Recorder) ObserveTrial(t linesearch.Trial) {
	r.Trials = append(r.Trials, Trial{
		Outer:    r.outer + 1,
		Lambda:   t.Lambda,
		Merit:    t.Merit,
		Accepted: t.Accepted,
	})
}

// Options wires r into a solve: the observer plus the line-search trial hook.
// Call Reset first when reusing r; otherwise trial indices continue from
// the last recorded iteration.
func (r *Recorder) Options() []newton.Option {
	return []newton.Option{
		newton.WithObserver(r.Observe),
		newton.WithLineSearchOptions(linesearch.WithTrialHook(r.ObserveTrial)),
	}
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Points, r.Trials, r.outer = nil, nil, 0
}

// Len returns the number of recorded iterations.
func (r *Recorder) Len() int { return len(r.Points) }

// Methods returns the distinct method names in order of first appearance.
func (r *Recorder) Methods() []string {
	var (
		seen = make(map[string]bool)
		out  []string
	)
	for _, p := range r.Points {
		if !seen[p.Method] {
			seen[p.Method] = true
			out = append(out, p.Method)
		}
	}

	return out
}

// history is the serialised form. Non-finite numbers become strings
// ("NaN", "+Inf", "-Inf") since JSON has no literal for them.
type history struct {
	Points []wirePoint `json:"points" yaml:"points"`
	Trials []wireTrial `json:"trials,omitempty" yaml:"trials,omitempty"`
}

type wirePoint struct {
	Method   string   `json:"method" yaml:"method"`
	Index    int      `json:"index" yaml:"index"`
	X        []number `json:"x" yaml:"x"`
	Residual number   `json:"residual" yaml:"residual"`
	StepTest number   `json:"step_test" yaml:"step_test"`
	Merit    number   `json:"merit" yaml:"merit"`
	Lambda   number   `json:"lambda" yaml:"lambda"`
}

type wireTrial struct {
	Outer    int    `json:"outer" yaml:"outer"`
	Lambda   number `json:"lambda" yaml:"lambda"`
	Merit    number `json:"merit" yaml:"merit"`
	Accepted bool   `json:"accepted" yaml:"accepted"`
}

type number float64

func (v number) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(fmt.Sprint(f))
	}

	return json.Marshal(f)
}

func (r *Recorder) history() history {
	h := history{Points: make([]wirePoint, len(r.Points))}
	for i, p := range r.Points {
		x := make([]number, len(p.X))
		for j, v := range p.X {
			x[j] = number(v)
		}
		h.Points[i] = wirePoint{
			Method:   p.Method,
			Index:    p.Index,
			X:        x,
			Residual: number(p.Residual),
			StepTest: number(p.StepTest),
			Merit:    number(p.Merit),
			Lambda:   number(p.Lambda),
		}
	}
	for _, t := range r.Trials {
		h.Trials = append(h.Trials, wireTrial{
			Outer:    t.Outer,
			Lambda:   number(t.Lambda),
			Merit:    number(t.Merit),
			Accepted: t.Accepted,
		})
	}

	return h
}

// Render writes the history as JSON.
//
// Errors: ErrEmpty when nothing was recorded; encoder errors otherwise.
func (r *Recorder) Render(w io.Writer) error {
	if r.Len() == 0 {
		return ErrEmpty
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.history()); err != nil {
		return fmt.Errorf("trace: Render: %w", err)
	}

	return nil
}

// RenderYAML writes the history as YAML. YAML spells non-finite values
// natively (.nan, .inf).
//
// Errors: ErrEmpty when nothing was recorded; encoder errors otherwise.
func (r *Recorder) RenderYAML(w io.Writer) error {
	if r.Len() == 0 {
		return ErrEmpty
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.history()); err != nil {
		return fmt.Errorf("trace: RenderYAML: %w", err)
	}

	return enc.Close()
}
