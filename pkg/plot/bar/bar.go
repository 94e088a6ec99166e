package bar

import (
	"strconv"

	"github.com/plotkit/barplot/pkg/plot"
)

// Default geometry and styling for new bars.
const (
	DefaultSize      = 0.8
	DefaultErrorSize = 0.3
)

// Bar is a single rectangle growing from ValueBase to Value at Position.
type Bar struct {
	Position  float64 // center on the category axis
	Value     float64
	ValueBase float64
	Size      float64 // thickness on the category axis, in data units

	FillColor plot.Color
	LineColor plot.Color
	LineWidth float64 // outline width in pixels; 0 draws no outline

	Orientation plot.Orientation

	// Label is the value label text. An empty label is not drawn.
	Label string
	// LabelOnTop defers the label to the overlay phase.
	LabelOnTop bool

	Error          float64 // symmetric error magnitude; 0 draws no whiskers
	ErrorColor     plot.Color
	ErrorLineWidth float64
	ErrorSize      float64 // whisker cap width as a fraction of Size
}

// New returns a vertical bar at position with the given value, labeled with
// the value.
func New(position, value float64) *Bar {
	return &Bar{
		Position:       position,
		Value:          value,
		Size:           DefaultSize,
		FillColor:      plot.PaletteColor(0),
		LineColor:      plot.Black,
		Label:          FormatValue(value),
		ErrorColor:     plot.Black,
		ErrorLineWidth: 1,
		ErrorSize:      DefaultErrorSize,
	}
}

// FormatValue formats v with the fewest digits that represent it.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// IsHorizontal reports whether the bar grows along the X axis.
func (b *Bar) IsHorizontal() bool { return b.Orientation == plot.Horizontal }

// Rect returns the bar body in data coordinates.
func (b *Bar) Rect() plot.Rect {
	lo, hi := min(b.ValueBase, b.Value), max(b.ValueBase, b.Value)
	c0, c1 := b.Position-b.Size/2, b.Position+b.Size/2
	if b.IsHorizontal() {
		return plot.Rect{Left: lo, Right: hi, Bottom: c0, Top: c1}
	}
	return plot.Rect{Left: c0, Right: c1, Bottom: lo, Top: hi}
}

// AxisLimits returns the body extent grown by the error whiskers.
func (b *Bar) AxisLimits() plot.AxisLimits {
	r := b.Rect()
	if b.Error == 0 {
		return r.AxisLimits()
	}
	lo := min(b.ValueBase, b.Value-b.Error)
	hi := max(b.ValueBase, b.Value+b.Error)
	if b.IsHorizontal() {
		r.Left, r.Right = min(r.Left, lo), max(r.Right, hi)
	} else {
		r.Bottom, r.Top = min(r.Bottom, lo), max(r.Top, hi)
	}
	return r.AxisLimits()
}

// RenderBody fills the bar, strokes its outline and draws error whiskers.
func (b *Bar) RenderBody(s plot.Surface, t plot.Transform) {
	px := t.PixelRect(b.Rect())
	s.FillRect(px, b.FillColor)
	if b.LineWidth > 0 {
		s.StrokeRect(px, b.LineColor, b.LineWidth)
	}
	if b.Error != 0 {
		b.renderError(s, t)
	}
}

func (b *Bar) renderError(s plot.Surface, t plot.Transform) {
	lo, hi := b.Value-b.Error, b.Value+b.Error
	capHalf := b.Size * b.ErrorSize / 2
	point := func(v, c float64) plot.Pixel {
		if b.IsHorizontal() {
			return t.Pixel(v, c)
		}
		return t.Pixel(c, v)
	}

	w, col := b.ErrorLineWidth, b.ErrorColor
	s.DrawLine(point(lo, b.Position), point(hi, b.Position), col, w)
	s.DrawLine(point(lo, b.Position-capHalf), point(lo, b.Position+capHalf), col, w)
	s.DrawLine(point(hi, b.Position-capHalf), point(hi, b.Position+capHalf), col, w)
}

// RenderText draws text next to the value end of the bar: above positive
// vertical bars, below negative ones, right of positive horizontal bars
// and left of negative ones. The alignment of style is replaced
// accordingly; style itself is not modified.
func (b *Bar) RenderText(s plot.Surface, t plot.Transform, style plot.LabelStyle, text string) {
	if text == "" {
		return
	}
	px := t.PixelRect(b.Rect())
	negative := b.Value < b.ValueBase

	var at plot.Pixel
	var align plot.Alignment
	switch {
	case b.IsHorizontal() && negative:
		at, align = plot.Pixel{X: px.Left - style.Padding, Y: px.CenterY()}, plot.MiddleRight
	case b.IsHorizontal():
		at, align = plot.Pixel{X: px.Right + style.Padding, Y: px.CenterY()}, plot.MiddleLeft
	case negative:
		at, align = plot.Pixel{X: px.CenterX(), Y: px.Bottom + style.Padding}, plot.UpperCenter
	default:
		at, align = plot.Pixel{X: px.CenterX(), Y: px.Top - style.Padding}, plot.LowerCenter
	}
	s.DrawText(text, at, style.WithAlignment(align))
}
