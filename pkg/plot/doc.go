// Package plot provides the host side of a small 2D charting library.
//
// # Overview
//
// A [Figure] owns an ordered list of [Plottable] elements. It scales its
// axes to the union of their [AxisLimits], maps data coordinates to pixels
// through an [Axes] transform, and draws everything onto a [Surface]:
//
//	fig := plot.NewFigure(800, 600)
//	fig.Title = "Revenue"
//	fig.Add(series)
//	fig.Render(svg.New(fig.Width, fig.Height))
//
// # Two-phase rendering
//
// Plottables draw in two phases. The figure calls RenderBodies on every
// visible plottable, and only after all of them returned it calls
// RenderOverlay on every visible plottable. Labels drawn in the overlay
// phase can therefore never be covered by a neighboring bar, whichever
// series that bar belongs to.
//
// # Surfaces
//
// [Surface] is the drawing backend. The render subpackages provide SVG,
// PNG, terminal and recording implementations.
//
// # Labels
//
// [LabelStyle] carries formatting only. Text is passed to
// [Surface.DrawText] together with the style, so a single style value is
// shared by every label of a series without being mutated.
package plot
