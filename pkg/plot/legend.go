package plot

// LegendItem is a (label, swatch color) pair shown in a figure's legend.
type LegendItem struct {
	Label     string
	FillColor Color
	// Plottable is the element the item summarizes.
	Plottable Plottable
}

// Legend draws a box of legend items in the upper-right corner of a data area.
type Legend struct {
	Style      LabelStyle
	Background Color
	Border     Color
	Swatch     float64 // swatch edge length in pixels
}

// DefaultLegend returns the legend used by new figures.
func DefaultLegend() Legend {
	return Legend{
		Style:      LabelStyle{Alignment: MiddleLeft, FontSize: 12, Color: Black},
		Background: White.WithAlpha(230),
		Border:     Gray,
		Swatch:     12,
	}
}

// Render draws items into the corner of area. Items with empty labels are
// skipped; nothing is drawn when no item remains.
func (l Legend) Render(s Surface, area PixelRect, items []LegendItem) {
	var shown []LegendItem
	width := 0.0
	for _, it := range items {
		if it.Label == "" {
			continue
		}
		shown = append(shown, it)
		width = max(width, EstimateTextWidth(it.Label, l.Style.FontSize))
	}
	if len(shown) == 0 {
		return
	}

	const pad, gap = 6.0, 4.0
	row := max(l.Swatch, l.Style.FontSize) + gap
	box := PixelRect{
		Right: area.Right - pad,
		Top:   area.Top + pad,
	}
	box.Left = box.Right - (pad*3 + l.Swatch + width)
	box.Bottom = box.Top + pad*2 + row*float64(len(shown)) - gap

	s.FillRect(box, l.Background)
	s.StrokeRect(box, l.Border, 1)

	y := box.Top + pad
	for _, it := range shown {
		cy := y + (row-gap)/2
		swatch := PixelRect{
			Left:   box.Left + pad,
			Right:  box.Left + pad + l.Swatch,
			Top:    cy - l.Swatch/2,
			Bottom: cy + l.Swatch/2,
		}
		s.FillRect(swatch, it.FillColor)
		s.DrawText(it.Label, Pixel{X: swatch.Right + pad, Y: cy}, l.Style)
		y += row
	}
}
