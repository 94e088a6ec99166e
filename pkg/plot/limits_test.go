package plot

import (
	"math"
	"testing"
)

func TestNoLimits(t *testing.T) {
	l := NoLimits()
	if !l.IsEmpty() {
		t.Error("NoLimits().IsEmpty() = false, want true")
	}
	if l.HasX() || l.HasY() || l.IsReal() {
		t.Error("NoLimits() should have no real axis")
	}
}

func TestExpandingAxisLimits(t *testing.T) {
	tests := []struct {
		name   string
		inputs []AxisLimits
		want   AxisLimits
	}{
		{
			name: "zero value",
			want: NoLimits(),
		},
		{
			name:   "single",
			inputs: []AxisLimits{{Left: 1, Right: 2, Bottom: 3, Top: 4}},
			want:   AxisLimits{Left: 1, Right: 2, Bottom: 3, Top: 4},
		},
		{
			name: "union",
			inputs: []AxisLimits{
				{Left: 1, Right: 2, Bottom: 3, Top: 4},
				{Left: -1, Right: 0, Bottom: 5, Top: 9},
			},
			want: AxisLimits{Left: -1, Right: 2, Bottom: 3, Top: 9},
		},
		{
			name: "nan sides ignored",
			inputs: []AxisLimits{
				{Left: 0, Right: 1, Bottom: math.NaN(), Top: math.NaN()},
				NoLimits(),
				{Left: math.NaN(), Right: math.NaN(), Bottom: -2, Top: 2},
			},
			want: AxisLimits{Left: 0, Right: 1, Bottom: -2, Top: 2},
		},
		{
			name:   "only x",
			inputs: []AxisLimits{{Left: 0, Right: 1, Bottom: math.NaN(), Top: math.NaN()}},
			want:   AxisLimits{Left: 0, Right: 1, Bottom: math.NaN(), Top: math.NaN()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e ExpandingAxisLimits
			for _, l := range tt.inputs {
				e.Expand(l)
			}
			if got := e.AxisLimits(); !got.Equal(tt.want) {
				t.Errorf("AxisLimits() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExpandPoint(t *testing.T) {
	var e ExpandingAxisLimits
	e.ExpandPoint(3, -1)
	e.ExpandPoint(-2, 4)
	want := AxisLimits{Left: -2, Right: 3, Bottom: -1, Top: 4}
	if got := e.AxisLimits(); !got.Equal(want) {
		t.Errorf("AxisLimits() = %+v, want %+v", got, want)
	}
}

func TestUnion(t *testing.T) {
	a := AxisLimits{Left: 0, Right: 1, Bottom: 0, Top: 1}
	b := AxisLimits{Left: 2, Right: 3, Bottom: -1, Top: 0}
	want := AxisLimits{Left: 0, Right: 3, Bottom: -1, Top: 1}
	if got := a.Union(b); !got.Equal(want) {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if got := a.Union(NoLimits()); !got.Equal(a) {
		t.Errorf("Union(NoLimits) = %+v, want %+v", got, a)
	}
}
