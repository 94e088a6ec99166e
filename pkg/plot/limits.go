package plot

import "math"

// AxisLimits is the bounding rectangle, in data coordinates, that a
// plottable occupies. A NaN side means the plottable has no extent on
// that axis.
type AxisLimits struct {
	Left, Right, Bottom, Top float64
}

// NoLimits returns the neutral value: every side is NaN.
func NoLimits() AxisLimits {
	nan := math.NaN()
	return AxisLimits{Left: nan, Right: nan, Bottom: nan, Top: nan}
}

// HasX reports whether both horizontal sides are real.
func (l AxisLimits) HasX() bool { return isReal(l.Left) && isReal(l.Right) }

// HasY reports whether both vertical sides are real.
func (l AxisLimits) HasY() bool { return isReal(l.Bottom) && isReal(l.Top) }

// IsReal reports whether every side is a finite number.
func (l AxisLimits) IsReal() bool { return l.HasX() && l.HasY() }

// IsEmpty reports whether no side is set.
func (l AxisLimits) IsEmpty() bool {
	return math.IsNaN(l.Left) && math.IsNaN(l.Right) && math.IsNaN(l.Bottom) && math.IsNaN(l.Top)
}

// Width returns Right - Left.
func (l AxisLimits) Width() float64 { return l.Right - l.Left }

// Height returns Top - Bottom.
func (l AxisLimits) Height() float64 { return l.Top - l.Bottom }

// Rect returns the limits as a data rectangle.
func (l AxisLimits) Rect() Rect {
	return Rect{Left: l.Left, Right: l.Right, Bottom: l.Bottom, Top: l.Top}
}

// Equal compares two limits side by side, treating NaN as equal to NaN.
func (l AxisLimits) Equal(o AxisLimits) bool {
	return sameFloat(l.Left, o.Left) && sameFloat(l.Right, o.Right) &&
		sameFloat(l.Bottom, o.Bottom) && sameFloat(l.Top, o.Top)
}

// Union returns the smallest limits containing both l and o.
func (l AxisLimits) Union(o AxisLimits) AxisLimits {
	var e ExpandingAxisLimits
	e.Expand(l)
	e.Expand(o)
	return e.AxisLimits()
}

// ExpandingAxisLimits accumulates a union of axis limits.
// The zero value is empty and reports NoLimits.
type ExpandingAxisLimits struct {
	sides [4]float64 // left, right, bottom, top
	set   [4]bool
}

// Expand grows the running union by l. NaN sides of l are ignored.
func (e *ExpandingAxisLimits) Expand(l AxisLimits) {
	for i, v := range [4]float64{l.Left, l.Right, l.Bottom, l.Top} {
		if math.IsNaN(v) {
			continue
		}
		switch {
		case !e.set[i]:
			e.sides[i], e.set[i] = v, true
		case i%2 == 0:
			e.sides[i] = math.Min(e.sides[i], v)
		default:
			e.sides[i] = math.Max(e.sides[i], v)
		}
	}
}

// ExpandPoint grows the running union to include (x, y).
func (e *ExpandingAxisLimits) ExpandPoint(x, y float64) {
	e.Expand(AxisLimits{Left: x, Right: x, Bottom: y, Top: y})
}

// AxisLimits returns the union so far.
func (e *ExpandingAxisLimits) AxisLimits() AxisLimits {
	out := NoLimits()
	for i, p := range [4]*float64{&out.Left, &out.Right, &out.Bottom, &out.Top} {
		if e.set[i] {
			*p = e.sides[i]
		}
	}
	return out
}

func isReal(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
