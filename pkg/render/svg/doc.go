// Package svg implements a [plot.Surface] that produces an SVG document.
//
// Elements are written in the order they are drawn, so the document
// preserves the figure's paint order exactly:
//
//	s := svg.New(800, 600, svg.WithTitle("Revenue"))
//	fig.Render(s)
//	os.WriteFile("chart.svg", s.Bytes(), 0o644)
//
// Text alignment maps onto text-anchor and dominant-baseline, so labels
// are positioned by the viewer's font metrics rather than estimates.
//
// [plot.Surface]: github.com/plotkit/barplot/pkg/plot.Surface
package svg
