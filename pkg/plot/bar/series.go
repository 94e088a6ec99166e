package bar

import (
	"fmt"

	"github.com/plotkit/barplot/pkg/plot"
)

// Series holds an ordered collection of individually styled bars and
// presents them to a figure as one plottable with one legend entry.
//
// Bar order is render order and legend-sampling order. The series never
// reorders, adds or removes bars.
type Series struct {
	LegendText string
	Visible    bool
	// LabelStyle formats every value label of the series.
	LabelStyle plot.LabelStyle
	// Axes overrides the transform supplied by the figure when non-nil.
	Axes plot.Transform

	bars []*Bar
}

// NewSeries returns a visible series owning bars. The caller must not
// modify the slice afterwards.
func NewSeries(bars []*Bar) *Series {
	return &Series{
		Visible:    true,
		LabelStyle: plot.DefaultLabelStyle(),
		bars:       bars,
	}
}

// FromValues returns a series with one vertical bar per value, placed at
// positions 0, 1, 2, ...
func FromValues(values ...float64) *Series {
	bars := make([]*Bar, len(values))
	for i, v := range values {
		bars[i] = New(float64(i), v)
	}
	return NewSeries(bars)
}

// Bars returns the bars in order. Mutating a returned bar changes the series.
func (s *Series) Bars() []*Bar { return s.bars }

// Len returns the number of bars.
func (s *Series) Len() int { return len(s.bars) }

// IsVisible reports whether the figure should draw the series.
func (s *Series) IsVisible() bool { return s.Visible }

// SetAllColors sets the fill color of every bar.
func (s *Series) SetAllColors(c plot.Color) {
	for _, b := range s.bars {
		b.FillColor = c
	}
}

// SetHorizontal makes every bar horizontal, or vertical when h is false.
func (s *Series) SetHorizontal(h bool) {
	o := plot.Vertical
	if h {
		o = plot.Horizontal
	}
	for _, b := range s.bars {
		b.Orientation = o
	}
}

// SetLabelsOnTop moves every value label into (or out of) the overlay phase.
func (s *Series) SetLabelsOnTop(onTop bool) {
	for _, b := range s.bars {
		b.LabelOnTop = onTop
	}
}

// SetValueLabels relabels every bar with its value formatted by format,
// a fmt verb string such as "%.1f" or "$%.0f". An empty format uses
// FormatValue.
func (s *Series) SetValueLabels(format string) {
	for _, b := range s.bars {
		if format == "" {
			b.Label = FormatValue(b.Value)
			continue
		}
		b.Label = fmt.Sprintf(format, b.Value)
	}
}

// AxisLimits returns the union of every bar's limits, or plot.NoLimits for
// an empty series.
func (s *Series) AxisLimits() plot.AxisLimits {
	var limits plot.ExpandingAxisLimits
	for _, b := range s.bars {
		limits.Expand(b.AxisLimits())
	}
	return limits.AxisLimits()
}

// LegendItems returns nothing for an empty series and otherwise a single
// item colored like the first bar, whatever colors the other bars have.
func (s *Series) LegendItems() []plot.LegendItem {
	if len(s.bars) == 0 {
		return nil
	}
	return []plot.LegendItem{{
		Label:     s.LegendText,
		FillColor: s.bars[0].FillColor,
		Plottable: s,
	}}
}

// RenderBodies draws each bar in order, followed immediately by its value
// label unless the label is deferred to the overlay phase.
func (s *Series) RenderBodies(rc *plot.RenderContext) {
	t := s.transform(rc)
	for _, b := range s.bars {
		b.RenderBody(rc.Surface, t)
		if !b.LabelOnTop {
			b.RenderText(rc.Surface, t, s.LabelStyle, b.Label)
		}
	}
}

// RenderOverlay draws the value labels deferred by LabelOnTop.
func (s *Series) RenderOverlay(rc *plot.RenderContext) {
	t := s.transform(rc)
	for _, b := range s.bars {
		if b.LabelOnTop {
			b.RenderText(rc.Surface, t, s.LabelStyle, b.Label)
		}
	}
}

func (s *Series) transform(rc *plot.RenderContext) plot.Transform {
	if s.Axes != nil {
		return s.Axes
	}
	return rc.Axes
}

var _ plot.Plottable = (*Series)(nil)
