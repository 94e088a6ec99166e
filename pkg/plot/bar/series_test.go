package bar

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/plotkit/barplot/pkg/plot"
	"github.com/plotkit/barplot/pkg/render/record"
)

var (
	red   = plot.RGB(255, 0, 0)
	green = plot.RGB(0, 255, 0)
	blue  = plot.RGB(0, 0, 255)
)

func testContext(s plot.Surface) *plot.RenderContext {
	area := plot.PixelRect{Right: 300, Bottom: 150}
	axes := plot.NewAxes(plot.AxisLimits{Left: -1, Right: 2, Bottom: -5, Top: 10}, area)
	return &plot.RenderContext{Surface: s, Axes: axes, DataArea: area}
}

func kinds(ops []record.Op) []record.Kind {
	out := make([]record.Kind, len(ops))
	for i, o := range ops {
		out[i] = o.Kind
	}
	return out
}

func TestLegendItemsUsesFirstBarColor(t *testing.T) {
	tests := []struct {
		name   string
		colors []plot.Color
	}{
		{"single bar", []plot.Color{red}},
		{"uniform", []plot.Color{blue, blue, blue}},
		{"mixed", []plot.Color{green, red, blue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars := make([]*Bar, len(tt.colors))
			for i, c := range tt.colors {
				bars[i] = New(float64(i), float64(i+1))
				bars[i].FillColor = c
			}
			s := NewSeries(bars)
			s.LegendText = "revenue"

			items := s.LegendItems()
			if len(items) != 1 {
				t.Fatalf("LegendItems() returned %d items, want 1", len(items))
			}
			if items[0].FillColor != tt.colors[0] {
				t.Errorf("FillColor = %v, want %v", items[0].FillColor, tt.colors[0])
			}
			if items[0].Label != "revenue" {
				t.Errorf("Label = %q, want %q", items[0].Label, "revenue")
			}
			if items[0].Plottable != s {
				t.Error("Plottable should point back to the series")
			}
		})
	}
}

func TestEmptySeries(t *testing.T) {
	for _, s := range []*Series{NewSeries(nil), NewSeries([]*Bar{}), FromValues()} {
		if items := s.LegendItems(); len(items) != 0 {
			t.Errorf("LegendItems() = %v, want empty", items)
		}
		if l := s.AxisLimits(); !l.IsEmpty() {
			t.Errorf("AxisLimits() = %+v, want NoLimits", l)
		}

		rec := record.New()
		s.RenderBodies(testContext(rec))
		s.RenderOverlay(testContext(rec))
		if len(rec.Ops()) != 0 {
			t.Errorf("empty series drew %d ops", len(rec.Ops()))
		}
	}
}

func TestAxisLimitsIsUnionOfBars(t *testing.T) {
	bars := []*Bar{New(0, 5), New(1, -3), New(2, 8), New(3, 0.5)}
	bars[2].Error = 1

	var want plot.ExpandingAxisLimits
	for _, b := range bars {
		want.Expand(b.AxisLimits())
	}

	got := NewSeries(bars).AxisLimits()
	if !got.Equal(want.AxisLimits()) {
		t.Errorf("AxisLimits() = %+v, want %+v", got, want.AxisLimits())
	}
	expected := plot.AxisLimits{Left: -0.4, Right: 3.4, Bottom: -3, Top: 9}
	if !got.Equal(expected) {
		t.Errorf("AxisLimits() = %+v, want %+v", got, expected)
	}
}

func TestAxisLimitsOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := []float64{4, -2, 9, 0, 3.5, -7, 1}

	base := FromValues(values...).AxisLimits()
	for i := 0; i < 10; i++ {
		bars := FromValues(values...).Bars()
		rng.Shuffle(len(bars), func(a, b int) { bars[a], bars[b] = bars[b], bars[a] })
		if got := NewSeries(bars).AxisLimits(); !got.Equal(base) {
			t.Fatalf("shuffled AxisLimits() = %+v, want %+v", got, base)
		}
	}
}

func TestSetAllColors(t *testing.T) {
	s := FromValues(1, 2, 3)
	s.Bars()[1].FillColor = red

	s.SetAllColors(green)
	for i, b := range s.Bars() {
		if b.FillColor != green {
			t.Errorf("bar %d FillColor = %v, want %v", i, b.FillColor, green)
		}
	}
	if got := s.LegendItems()[0].FillColor; got != green {
		t.Errorf("legend FillColor = %v, want %v", got, green)
	}
}

func TestSetHorizontal(t *testing.T) {
	s := FromValues(1, 2, 3)
	s.Bars()[0].Orientation = plot.Horizontal

	s.SetHorizontal(true)
	for i, b := range s.Bars() {
		if b.Orientation != plot.Horizontal {
			t.Errorf("bar %d Orientation = %v, want horizontal", i, b.Orientation)
		}
	}

	s.SetHorizontal(false)
	for i, b := range s.Bars() {
		if b.Orientation != plot.Vertical {
			t.Errorf("bar %d Orientation = %v, want vertical", i, b.Orientation)
		}
	}
}

func TestSetHorizontalSwapsLimits(t *testing.T) {
	s := FromValues(2, 4)
	vertical := s.AxisLimits()
	s.SetHorizontal(true)
	horizontal := s.AxisLimits()

	swapped := plot.AxisLimits{Left: vertical.Bottom, Right: vertical.Top, Bottom: vertical.Left, Top: vertical.Right}
	if !horizontal.Equal(swapped) {
		t.Errorf("horizontal AxisLimits() = %+v, want %+v", horizontal, swapped)
	}
}

func TestSetLabelsOnTop(t *testing.T) {
	s := FromValues(1, 2, 3)
	s.Bars()[2].LabelOnTop = true

	s.SetLabelsOnTop(false)
	for i, b := range s.Bars() {
		if b.LabelOnTop {
			t.Errorf("bar %d LabelOnTop = true, want false", i)
		}
	}
	s.SetLabelsOnTop(true)
	for i, b := range s.Bars() {
		if !b.LabelOnTop {
			t.Errorf("bar %d LabelOnTop = false, want true", i)
		}
	}
}

func TestSetValueLabels(t *testing.T) {
	s := FromValues(1.25, -3, 1000)

	s.SetValueLabels("%.1f")
	want := []string{"1.2", "-3.0", "1000.0"}
	for i, b := range s.Bars() {
		if b.Label != want[i] {
			t.Errorf("bar %d Label = %q, want %q", i, b.Label, want[i])
		}
	}

	s.SetValueLabels("")
	want = []string{"1.25", "-3", "1000"}
	for i, b := range s.Bars() {
		if b.Label != want[i] {
			t.Errorf("bar %d Label = %q, want %q", i, b.Label, want[i])
		}
	}
}

func TestTwoPhaseRenderOrder(t *testing.T) {
	b1 := New(0, 5)
	b2 := New(1, -3)
	b2.LabelOnTop = true
	s := NewSeries([]*Bar{b1, b2})

	bodies := record.New()
	s.RenderBodies(testContext(bodies))

	wantKinds := []record.Kind{record.KindFillRect, record.KindText, record.KindFillRect}
	if got := kinds(bodies.Ops()); !slices.Equal(got, wantKinds) {
		t.Fatalf("RenderBodies ops = %v, want %v", got, wantKinds)
	}
	if got := bodies.Texts(); !slices.Equal(got, []string{"5"}) {
		t.Errorf("RenderBodies texts = %v, want [5]", got)
	}

	overlay := record.New()
	s.RenderOverlay(testContext(overlay))

	if got := kinds(overlay.Ops()); !slices.Equal(got, []record.Kind{record.KindText}) {
		t.Fatalf("RenderOverlay ops = %v, want [text]", got)
	}
	if got := overlay.Texts(); !slices.Equal(got, []string{"-3"}) {
		t.Errorf("RenderOverlay texts = %v, want [-3]", got)
	}
}

func TestRenderDoesNotMutateLabelStyle(t *testing.T) {
	s := FromValues(5, -3)
	s.SetHorizontal(true)
	before := s.LabelStyle

	rec := record.New()
	s.RenderBodies(testContext(rec))

	if s.LabelStyle != before {
		t.Errorf("LabelStyle changed during render: %+v, want %+v", s.LabelStyle, before)
	}
	ops := rec.Ops()
	if ops[1].Alignment != plot.MiddleLeft.String() || ops[3].Alignment != plot.MiddleRight.String() {
		t.Errorf("label alignments = %q, %q, want middle-left, middle-right", ops[1].Alignment, ops[3].Alignment)
	}
}

func TestSeriesAxesOverride(t *testing.T) {
	s := FromValues(1)
	override := plot.NewAxes(plot.AxisLimits{Left: 0, Right: 1, Bottom: 0, Top: 1}, plot.PixelRect{Right: 10, Bottom: 10})
	s.Axes = override

	rec := record.New()
	s.RenderBodies(testContext(rec))

	want := override.PixelRect(s.Bars()[0].Rect())
	if got := *rec.Ops()[0].Rect; got != want {
		t.Errorf("body rect = %+v, want %+v", got, want)
	}
}

func TestVisible(t *testing.T) {
	s := FromValues(1)
	if !s.IsVisible() {
		t.Error("new series should be visible")
	}
	s.Visible = false
	if s.IsVisible() {
		t.Error("IsVisible() = true after hiding")
	}
}
