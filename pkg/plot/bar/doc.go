// Package bar implements bar primitives and the bar series plottable.
//
// A [Series] owns an ordered slice of [*Bar]. Series-wide setters
// ([Series.SetAllColors], [Series.SetHorizontal], [Series.SetLabelsOnTop])
// write through to every bar immediately; a bar keeps no override once a
// series-wide value has been set.
//
//	s := bar.FromValues(5, -3, 8)
//	s.LegendText = "Q1"
//	s.SetAllColors(plot.MustParseColor("#1f77b4"))
//	s.Bars()[1].LabelOnTop = true
//
// Value labels of bars flagged LabelOnTop are drawn in the figure's
// overlay phase, after every bar body of every series.
package bar
