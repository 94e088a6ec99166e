// Package render groups the drawing surfaces a figure can be rendered onto.
//
// # Overview
//
// A [plot.Figure] draws through the small [plot.Surface] interface, so the
// same two-phase render produces every output format. Each subpackage
// implements the interface for one target:
//
//   - [svg]: an SVG document, elements written in paint order
//   - [raster]: an antialiased RGBA image encoded as PNG
//   - [record]: a list of draw operations, exported as JSON
//   - [term]: a character grid for terminal previews
//
// # Paint Order
//
// Surfaces never reorder calls. Everything a figure draws in its overlay
// phase (value labels marked on-top) therefore lands above every bar body,
// including bars of series added later.
//
//	s := svg.New(fig.Width, fig.Height)
//	fig.Render(s)
//
// [plot.Figure]: github.com/plotkit/barplot/pkg/plot.Figure
// [plot.Surface]: github.com/plotkit/barplot/pkg/plot.Surface
// [svg]: github.com/plotkit/barplot/pkg/render/svg
// [raster]: github.com/plotkit/barplot/pkg/render/raster
// [record]: github.com/plotkit/barplot/pkg/render/record
// [term]: github.com/plotkit/barplot/pkg/render/term
package render
