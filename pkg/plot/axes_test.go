package plot

import "testing"

func TestAxesPixel(t *testing.T) {
	a := NewAxes(
		AxisLimits{Left: 0, Right: 10, Bottom: -5, Top: 5},
		PixelRect{Left: 50, Right: 150, Top: 20, Bottom: 120},
	)

	tests := []struct {
		x, y float64
		want Pixel
	}{
		{0, -5, Pixel{X: 50, Y: 120}},
		{10, 5, Pixel{X: 150, Y: 20}},
		{5, 0, Pixel{X: 100, Y: 70}},
	}
	for _, tt := range tests {
		if got := a.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAxesPixelRectNormalizes(t *testing.T) {
	a := NewAxes(
		AxisLimits{Left: 0, Right: 10, Bottom: 0, Top: 10},
		PixelRect{Left: 0, Right: 100, Top: 0, Bottom: 100},
	)
	got := a.PixelRect(Rect{Left: 2, Right: 4, Bottom: 1, Top: 6})
	want := PixelRect{Left: 20, Right: 40, Top: 40, Bottom: 90}
	if got != want {
		t.Errorf("PixelRect() = %+v, want %+v", got, want)
	}
	if got.Top > got.Bottom || got.Left > got.Right {
		t.Errorf("PixelRect() not normalized: %+v", got)
	}
}

func TestAxesDegenerateLimits(t *testing.T) {
	area := PixelRect{Left: 0, Right: 100, Top: 0, Bottom: 50}
	a := NewAxes(AxisLimits{Left: 3, Right: 3, Bottom: 1, Top: 1}, area)
	if got := a.Pixel(3, 1); got != (Pixel{X: 50, Y: 25}) {
		t.Errorf("Pixel() on zero-size limits = %+v, want area center", got)
	}
}
