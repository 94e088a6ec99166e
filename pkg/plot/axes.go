package plot

// Transform maps data coordinates to surface coordinates.
type Transform interface {
	PixelX(x float64) float64
	PixelY(y float64) float64
	Pixel(x, y float64) Pixel
	PixelRect(r Rect) PixelRect
}

// Axes is a linear Transform from axis limits onto a pixel data area.
// The Y axis is inverted: larger values are drawn higher up.
type Axes struct {
	Limits   AxisLimits
	DataArea PixelRect
}

// NewAxes returns the transform that maps limits onto area.
func NewAxes(limits AxisLimits, area PixelRect) *Axes {
	return &Axes{Limits: limits, DataArea: area}
}

// PixelX maps a horizontal data coordinate.
func (a *Axes) PixelX(x float64) float64 {
	w := a.Limits.Width()
	if w == 0 {
		return a.DataArea.CenterX()
	}
	return a.DataArea.Left + (x-a.Limits.Left)/w*a.DataArea.Width()
}

// PixelY maps a vertical data coordinate.
func (a *Axes) PixelY(y float64) float64 {
	h := a.Limits.Height()
	if h == 0 {
		return a.DataArea.CenterY()
	}
	return a.DataArea.Bottom - (y-a.Limits.Bottom)/h*a.DataArea.Height()
}

// Pixel maps a data point.
func (a *Axes) Pixel(x, y float64) Pixel {
	return Pixel{X: a.PixelX(x), Y: a.PixelY(y)}
}

// PixelRect maps a data rectangle, normalizing so Top <= Bottom.
func (a *Axes) PixelRect(r Rect) PixelRect {
	return NewPixelRect(a.Pixel(r.Left, r.Top), a.Pixel(r.Right, r.Bottom))
}

var _ Transform = (*Axes)(nil)
