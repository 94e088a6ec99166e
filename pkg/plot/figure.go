package plot

import "math"

// Margins is the fractional padding added around auto-scaled limits.
type Margins struct {
	X, Y float64
}

// Figure hosts plottables, scales axes to fit them and drives the two-phase
// render protocol.
//
// A Figure is not safe for concurrent use: rendering reads plottable state
// that the uniform setters of a series mutate.
type Figure struct {
	Title      string
	XLabel     string
	YLabel     string
	Width      float64
	Height     float64
	Background Color
	Frame      Color
	Grid       Color
	ShowGrid   bool
	ShowLegend bool
	Margins    Margins
	Legend     Legend
	TickStyle  LabelStyle
	TitleStyle LabelStyle

	// Limits overrides auto-scaling when non-nil.
	Limits *AxisLimits
	// XTicks and YTicks replace the generated numeric ticks when non-empty.
	XTicks []Tick
	YTicks []Tick

	plottables []Plottable
}

// NewFigure returns a figure of the given pixel size with default styling.
func NewFigure(width, height float64) *Figure {
	return &Figure{
		Width:      width,
		Height:     height,
		Background: White,
		Frame:      Black,
		Grid:       LightGray,
		ShowGrid:   true,
		ShowLegend: true,
		Margins:    Margins{X: 0.05, Y: 0.1},
		Legend:     DefaultLegend(),
		TickStyle:  LabelStyle{FontSize: 11, Color: Black, Padding: 4},
		TitleStyle: LabelStyle{Alignment: UpperCenter, FontSize: 16, Color: Black, Bold: true},
	}
}

// Add appends plottables. They are drawn in the order added.
func (f *Figure) Add(ps ...Plottable) {
	f.plottables = append(f.plottables, ps...)
}

// Plottables returns the plottables in add order.
func (f *Figure) Plottables() []Plottable { return f.plottables }

// DataLimits returns the union of every visible plottable's limits,
// without padding.
func (f *Figure) DataLimits() AxisLimits {
	var e ExpandingAxisLimits
	for _, p := range f.plottables {
		if p.IsVisible() {
			e.Expand(p.AxisLimits())
		}
	}
	return e.AxisLimits()
}

// AxisLimits returns the limits the figure renders with: the manual limits
// when set, otherwise the padded data limits. An axis without data spans
// [-1, 1]. A side resting exactly on zero is not padded past it, so bar
// charts keep their baseline on the frame.
func (f *Figure) AxisLimits() AxisLimits {
	if f.Limits != nil {
		return *f.Limits
	}
	d := f.DataLimits()
	out := AxisLimits{}
	out.Left, out.Right = padRange(d.Left, d.Right, f.Margins.X)
	out.Bottom, out.Top = padRange(d.Bottom, d.Top, f.Margins.Y)
	return out
}

func padRange(lo, hi, margin float64) (float64, float64) {
	if !isReal(lo) || !isReal(hi) {
		return -1, 1
	}
	span := hi - lo
	if span == 0 {
		return lo - 0.5, hi + 0.5
	}
	pad := span * margin
	if !(lo == 0 && hi > 0) {
		lo -= pad
	}
	if !(hi == 0 && lo < 0) {
		hi += pad
	}
	return lo, hi
}

// LegendItems returns every visible plottable's items in add order.
func (f *Figure) LegendItems() []LegendItem {
	var items []LegendItem
	for _, p := range f.plottables {
		if p.IsVisible() {
			items = append(items, p.LegendItems()...)
		}
	}
	return items
}

// DataArea returns the pixel rectangle the axes map onto.
func (f *Figure) DataArea() PixelRect {
	left := 12.0
	yTicks := f.yTicks(f.AxisLimits())
	widest := 0.0
	for _, t := range yTicks {
		widest = max(widest, EstimateTextWidth(t.Label, f.TickStyle.FontSize))
	}
	left += widest + f.TickStyle.Padding

	top := 12.0
	if f.Title != "" || f.YLabel != "" {
		top += f.TitleStyle.FontSize + 8
	}
	bottom := 12 + f.TickStyle.FontSize + f.TickStyle.Padding
	if f.XLabel != "" {
		bottom += f.TickStyle.FontSize + 8
	}

	return PixelRect{
		Left:   left,
		Right:  max(left+1, f.Width-16),
		Top:    top,
		Bottom: max(top+1, f.Height-bottom),
	}
}

// Axes returns the transform the figure renders with.
func (f *Figure) Axes() *Axes {
	return NewAxes(f.AxisLimits(), f.DataArea())
}

// Render draws the whole figure onto s. The order is fixed: background,
// grid and ticks, every plottable's body phase, every plottable's overlay
// phase, frame, legend, then title and axis labels.
func (f *Figure) Render(s Surface) {
	limits := f.AxisLimits()
	area := f.DataArea()
	axes := NewAxes(limits, area)

	s.FillRect(PixelRect{Right: f.Width, Bottom: f.Height}, f.Background)
	f.renderTicks(s, axes, limits, area)

	rc := &RenderContext{Surface: s, Axes: axes, DataArea: area}
	var visible []Plottable
	for _, p := range f.plottables {
		if p.IsVisible() {
			visible = append(visible, p)
		}
	}
	for _, p := range visible {
		p.RenderBodies(rc)
	}
	for _, p := range visible {
		p.RenderOverlay(rc)
	}

	s.StrokeRect(area, f.Frame, 1)
	if f.ShowLegend {
		f.Legend.Render(s, area, f.LegendItems())
	}
	f.renderLabels(s, area)
}

func (f *Figure) xTicks(l AxisLimits) []Tick {
	if len(f.XTicks) > 0 {
		return f.XTicks
	}
	return Ticks(l.Left, l.Right, max(2, int(f.Width/90)))
}

func (f *Figure) yTicks(l AxisLimits) []Tick {
	if len(f.YTicks) > 0 {
		return f.YTicks
	}
	return Ticks(l.Bottom, l.Top, max(2, int(f.Height/60)))
}

func (f *Figure) renderTicks(s Surface, axes *Axes, l AxisLimits, area PixelRect) {
	xStyle := f.TickStyle.WithAlignment(UpperCenter)
	for _, t := range f.xTicks(l) {
		if t.Position < math.Min(l.Left, l.Right) || t.Position > math.Max(l.Left, l.Right) {
			continue
		}
		x := axes.PixelX(t.Position)
		if f.ShowGrid {
			s.DrawLine(Pixel{X: x, Y: area.Top}, Pixel{X: x, Y: area.Bottom}, f.Grid, 1)
		}
		s.DrawLine(Pixel{X: x, Y: area.Bottom}, Pixel{X: x, Y: area.Bottom + 4}, f.Frame, 1)
		s.DrawText(t.Label, Pixel{X: x, Y: area.Bottom + 4 + xStyle.Padding}, xStyle)
	}

	yStyle := f.TickStyle.WithAlignment(MiddleRight)
	for _, t := range f.yTicks(l) {
		if t.Position < math.Min(l.Bottom, l.Top) || t.Position > math.Max(l.Bottom, l.Top) {
			continue
		}
		y := axes.PixelY(t.Position)
		if f.ShowGrid {
			s.DrawLine(Pixel{X: area.Left, Y: y}, Pixel{X: area.Right, Y: y}, f.Grid, 1)
		}
		s.DrawLine(Pixel{X: area.Left - 4, Y: y}, Pixel{X: area.Left, Y: y}, f.Frame, 1)
		s.DrawText(t.Label, Pixel{X: area.Left - 4 - yStyle.Padding, Y: y}, yStyle)
	}
}

func (f *Figure) renderLabels(s Surface, area PixelRect) {
	if f.Title != "" {
		s.DrawText(f.Title, Pixel{X: f.Width / 2, Y: 8}, f.TitleStyle)
	}
	axisStyle := f.TickStyle
	axisStyle.Bold = true
	if f.XLabel != "" {
		s.DrawText(f.XLabel, Pixel{X: area.CenterX(), Y: f.Height - 8}, axisStyle.WithAlignment(LowerCenter))
	}
	if f.YLabel != "" {
		s.DrawText(f.YLabel, Pixel{X: area.Left, Y: area.Top - 6}, axisStyle.WithAlignment(LowerLeft))
	}
}
