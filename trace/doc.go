// Package trace records the progress of a newton solve and renders it.
//
// 🚀 What is it?
//
//	A Recorder plugs into newton.WithObserver (outer iterations) and
//	linesearch.WithTrialHook (every tried step length) and keeps copies of
//	what it sees. The history can then be written out as:
//
//	  JSON / YAML — Recorder.Render, Recorder.RenderYAML
//	  HTML page   — Charts.Render (go-echarts, also an http.Handler)
//	  PNG/SVG/PDF — Plot.WriteImage (gonum/plot)
//
// ⚙️ Usage:
//
//	var rec trace.Recorder
//	x, err := newton.LineSearch(f, x0, 1e-10, rec.Options()...)
//	_ = trace.NewCharts(&rec, "x³+3x−7").Render(w)
//
// Concurrency:
//
//	A Recorder is not safe for concurrent use. Give each parallel solve its
//	own Recorder.
package trace
