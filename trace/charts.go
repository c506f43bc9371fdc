package trace

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// missing is how echarts spells an absent sample.
const missing = "-"

// Charts renders a Recorder as an HTML page with two line charts:
// the residual max|F| on a log axis, and the step length λ together with
// the relative step test. Each method gets its own series.
type Charts struct {
	*Recorder
	Title string
}

// NewCharts returns a renderer for rec.
func NewCharts(rec *Recorder, title string) *Charts {
	return &Charts{Recorder: rec, Title: title}
}

// Render writes the HTML page.
//
// Errors: ErrEmpty when nothing was recorded; renderer errors otherwise.
func (c *Charts) Render(w io.Writer) error {
	if c.Recorder == nil || c.Len() == 0 {
		return ErrEmpty
	}
	axis := c.iterationAxis()

	residual := charts.NewLine()
	residual.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: "max|F(x)| per iteration",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{
			Type:  "scroll",
			Right: "10",
			Top:   "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "residual", Type: "log"}),
	)
	residual.SetXAxis(axis)

	step := charts.NewLine()
	step.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Step",
			Subtitle: "line-search λ and relative step test",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{
			Type:  "scroll",
			Right: "10",
			Top:   "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
	)
	step.SetXAxis(axis)

	for _, m := range c.Methods() {
		residual.AddSeries(m, c.series(m, len(axis), positive, func(p Point) float64 { return p.Residual }))
		step.AddSeries(m+" λ", c.series(m, len(axis), finite, func(p Point) float64 { return p.Lambda }))
		step.AddSeries(m+" step", c.series(m, len(axis), finite, func(p Point) float64 { return p.StepTest }))
	}
	residual.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
	step.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))

	page := components.NewPage()
	page.AddCharts(residual, step)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("trace: Charts.Render: %w", err)
	}

	return nil
}

// ServeHTTP serves the rendered page.
func (c *Charts) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// iterationAxis returns 1..max(Index).
func (c *Charts) iterationAxis() []int {
	var last int
	for _, p := range c.Points {
		if p.Index > last {
			last = p.Index
		}
	}
	axis := make([]int, last)
	for i := range axis {
		axis[i] = i + 1
	}

	return axis
}

// series lays out the samples of method m on an axis of length n. Samples
// rejected by keep stay missing.
func (c *Charts) series(m string, n int, keep func(float64) bool, value func(Point) float64) []opts.LineData {
	data := make([]opts.LineData, n)
	for i := range data {
		data[i].Value = missing
	}
	var v float64
	for _, p := range c.Points {
		if p.Method != m || p.Index < 1 || p.Index > n {
			continue
		}
		if v = value(p); keep(v) {
			data[p.Index-1].Value = v
		}
	}

	return data
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// positive keeps values a log axis can show.
func positive(v float64) bool { return finite(v) && v > 0 }
