package chart

import (
	"github.com/plotkit/barplot/pkg/plot"
	"github.com/plotkit/barplot/pkg/plot/bar"
)

// groupWidth is the share of a category slot taken by a group of bars.
const groupWidth = bar.DefaultSize

// Figure validates the definition and builds a figure with one bar series
// per series entry, in definition order.
func (d *Definition) Figure() (*plot.Figure, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	fig := plot.NewFigure(d.Size())
	fig.Title = d.Title
	fig.XLabel = d.XLabel
	fig.YLabel = d.YLabel
	if d.Background != "" {
		fig.Background = plot.MustParseColor(d.Background)
	}
	if d.Legend != nil {
		fig.ShowLegend = *d.Legend
	}
	if d.Grid != nil {
		fig.ShowGrid = *d.Grid
	}

	horizontal := len(d.Series) > 0
	for i := range d.Series {
		fig.Add(d.Series[i].build(i, len(d.Series), d.Grouped))
		horizontal = horizontal && d.Series[i].Horizontal
	}

	if len(d.Categories) > 0 {
		ticks := make([]plot.Tick, len(d.Categories))
		for i, c := range d.Categories {
			ticks[i] = plot.Tick{Position: float64(i), Label: c}
		}
		if horizontal {
			fig.YTicks = ticks
		} else {
			fig.XTicks = ticks
		}
	}
	return fig, nil
}

// build assumes the series has been validated.
func (s *Series) build(index, count int, grouped bool) *bar.Series {
	offset, size := 0.0, bar.DefaultSize
	if grouped && count > 1 {
		size = groupWidth / float64(count)
		offset = (float64(index) - float64(count-1)/2) * size
	}

	bars := make([]*bar.Bar, 0, len(s.Values)+len(s.Bars))
	for i, v := range s.Values {
		b := bar.New(float64(i)+offset, v)
		b.Size = size
		bars = append(bars, b)
	}
	for _, def := range s.Bars {
		pos := float64(len(bars)) + offset
		if def.Position != nil {
			pos = *def.Position + offset
		}
		b := bar.New(pos, def.Value)
		b.ValueBase = def.Base
		b.Size = size
		if def.Size > 0 {
			b.Size = def.Size
		}
		b.Error = def.Error
		bars = append(bars, b)
	}

	series := bar.NewSeries(bars)
	series.LegendText = s.Legend
	if s.Color != "" {
		series.SetAllColors(plot.MustParseColor(s.Color))
	} else {
		series.SetAllColors(plot.PaletteColor(index))
	}
	series.SetHorizontal(s.Horizontal)
	series.SetLabelsOnTop(s.LabelsOnTop)
	series.SetValueLabels(s.LabelFormat)
	if s.LabelSize > 0 {
		series.LabelStyle.FontSize = s.LabelSize
	}
	if s.LabelColor != "" {
		series.LabelStyle.Color = plot.MustParseColor(s.LabelColor)
	}

	// Per-bar settings override the series-wide ones.
	for i, def := range s.Bars {
		b := bars[len(s.Values)+i]
		if def.Color != "" {
			b.FillColor = plot.MustParseColor(def.Color)
		}
		if def.Label != nil {
			b.Label = *def.Label
		}
		if def.OnTop != nil {
			b.LabelOnTop = *def.OnTop
		}
	}
	return series
}
