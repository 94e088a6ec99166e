package plot

// Rect is an axis-aligned rectangle in data coordinates.
type Rect struct {
	Left, Right, Bottom, Top float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Top - Bottom.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// AxisLimits returns r as an axis-limits contribution.
func (r Rect) AxisLimits() AxisLimits {
	return AxisLimits{Left: r.Left, Right: r.Right, Bottom: r.Bottom, Top: r.Top}
}

// Pixel is a point in surface coordinates (origin top-left, Y down).
type Pixel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PixelRect is an axis-aligned rectangle in surface coordinates.
// Top is smaller than Bottom.
type PixelRect struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Width returns the horizontal extent.
func (r PixelRect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r PixelRect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center.
func (r PixelRect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center.
func (r PixelRect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Contains reports whether p lies inside r, edges included.
func (r PixelRect) Contains(p Pixel) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Inset shrinks r by d on every side.
func (r PixelRect) Inset(d float64) PixelRect {
	return PixelRect{Left: r.Left + d, Right: r.Right - d, Top: r.Top + d, Bottom: r.Bottom - d}
}

// NewPixelRect returns the rectangle spanning two corners in any order.
func NewPixelRect(a, b Pixel) PixelRect {
	return PixelRect{
		Left:   min(a.X, b.X),
		Right:  max(a.X, b.X),
		Top:    min(a.Y, b.Y),
		Bottom: max(a.Y, b.Y),
	}
}
