package trace

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default image size for Plot.
const (
	DefaultPlotWidth  = 6 * vg.Inch
	DefaultPlotHeight = 4 * vg.Inch
)

// Plot draws the residual history of a Recorder as a static image with a
// logarithmic residual axis, one line per method.
type Plot struct {
	*Recorder
	Title         string
	Width, Height vg.Length
}

// NewPlot returns a Plot of rec with the default size.
func NewPlot(rec *Recorder, title string) *Plot {
	return &Plot{Recorder: rec, Title: title, Width: DefaultPlotWidth, Height: DefaultPlotHeight}
}

// WriteImage renders the plot in format ("png", "svg", "pdf", "eps", "jpg",
// "tif") to w.
//
// Errors: ErrEmpty when no iteration has a positive finite residual;
// unsupported formats and writer failures are wrapped.
func (p *Plot) WriteImage(w io.Writer, format string) (int64, error) {
	plt, err := p.build()
	if err != nil {
		return 0, err
	}
	wt, err := plt.WriterTo(p.Width, p.Height, format)
	if err != nil {
		return 0, fmt.Errorf("trace: Plot.WriteImage: %w", err)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("trace: Plot.WriteImage: %w", err)
	}

	return n, nil
}

// build assembles the plot. A log axis cannot show zero, negative or
// non-finite samples; those are skipped.
func (p *Plot) build() (*plot.Plot, error) {
	if p.Recorder == nil {
		return nil, ErrEmpty
	}

	var (
		lines  []interface{}
		lo, hi = math.Inf(1), math.Inf(-1)
		xys    plotter.XYs
	)
	for _, m := range p.Methods() {
		xys = nil
		for _, pt := range p.Points {
			if pt.Method != m || !positive(pt.Residual) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(pt.Index), Y: pt.Residual})
			lo, hi = math.Min(lo, pt.Residual), math.Max(hi, pt.Residual)
		}
		if len(xys) > 0 {
			lines = append(lines, m, xys)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmpty
	}

	plt := plot.New()
	plt.Title.Text = p.Title
	plt.X.Label.Text = "iteration"
	plt.Y.Label.Text = "max|F(x)|"
	plt.Y.Scale = plot.LogScale{}
	plt.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	plt.Add(plotter.NewGrid())
	if err := plotutil.AddLinePoints(plt, lines...); err != nil {
		return nil, fmt.Errorf("trace: Plot: %w", err)
	}

	// A degenerate range would be widened additively, possibly below zero.
	if lo == hi {
		lo, hi = lo/10, hi*10
	}
	plt.Y.Min, plt.Y.Max = lo, hi

	return plt, nil
}
