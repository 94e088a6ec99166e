// Package pkg provides the libraries behind the barplot charting tool.
//
// # Overview
//
// Barplot turns declarative chart definitions into bar charts. The pkg
// directory is organized into these areas:
//
//  1. [plot] - Figures, axes, legends and the drawing surface interface
//  2. [plot/bar] - Bars and the bar series plottable
//  3. [render] - Surfaces for SVG, PNG, JSON draw ops and terminals
//  4. [chart] - Chart definitions (TOML, JSON, XLSX) and figure building
//  5. [pipeline] - Orchestration (load → render) with caching
//  6. [cache], [observability], [errors] - Shared infrastructure
//  7. [server] - The HTTP render service
//
// # Architecture
//
// The typical data flow:
//
//	chart definition (TOML / JSON / XLSX)
//	         ↓
//	    [chart] package (decode + validate)
//	         ↓
//	    [plot] figure with [plot/bar] series
//	         ↓
//	    two-phase render onto a [render] surface
//	         ↓
//	    SVG / PNG / JSON output
//
// # Quick Start
//
// Build a figure directly and render it to SVG:
//
//	fig := plot.NewFigure(640, 480)
//	s := bar.FromValues(3, 7, 5)
//	s.LegendText = "units"
//	s.SetLabelsOnTop(true)
//	fig.Add(s)
//
//	out := svg.New(fig.Width, fig.Height)
//	fig.Render(out)
//	os.WriteFile("units.svg", out.Bytes(), 0o644)
//
// Or run a definition file through the cached pipeline:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Source: "sales.toml"})
//
// [plot]: github.com/plotkit/barplot/pkg/plot
// [plot/bar]: github.com/plotkit/barplot/pkg/plot/bar
// [render]: github.com/plotkit/barplot/pkg/render
// [chart]: github.com/plotkit/barplot/pkg/chart
// [pipeline]: github.com/plotkit/barplot/pkg/pipeline
// [cache]: github.com/plotkit/barplot/pkg/cache
// [observability]: github.com/plotkit/barplot/pkg/observability
// [errors]: github.com/plotkit/barplot/pkg/errors
// [server]: github.com/plotkit/barplot/pkg/server
package pkg
