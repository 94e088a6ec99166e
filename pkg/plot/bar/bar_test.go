package bar

import (
	"testing"

	"github.com/plotkit/barplot/pkg/plot"
	"github.com/plotkit/barplot/pkg/render/record"
)

func TestBarRect(t *testing.T) {
	tests := []struct {
		name string
		bar  Bar
		want plot.Rect
	}{
		{
			name: "vertical positive",
			bar:  Bar{Position: 2, Value: 5, Size: 1},
			want: plot.Rect{Left: 1.5, Right: 2.5, Bottom: 0, Top: 5},
		},
		{
			name: "vertical negative",
			bar:  Bar{Position: 0, Value: -3, Size: 0.5},
			want: plot.Rect{Left: -0.25, Right: 0.25, Bottom: -3, Top: 0},
		},
		{
			name: "vertical with base",
			bar:  Bar{Position: 1, Value: 4, ValueBase: 2, Size: 1},
			want: plot.Rect{Left: 0.5, Right: 1.5, Bottom: 2, Top: 4},
		},
		{
			name: "horizontal",
			bar:  Bar{Position: 1, Value: 6, Size: 0.5, Orientation: plot.Horizontal},
			want: plot.Rect{Left: 0, Right: 6, Bottom: 0.75, Top: 1.25},
		},
		{
			name: "horizontal negative",
			bar:  Bar{Position: 0, Value: -2, Size: 1, Orientation: plot.Horizontal},
			want: plot.Rect{Left: -2, Right: 0, Bottom: -0.5, Top: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bar.Rect(); got != tt.want {
				t.Errorf("Rect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBarAxisLimitsIncludeError(t *testing.T) {
	tests := []struct {
		name string
		bar  Bar
		want plot.AxisLimits
	}{
		{
			name: "no error",
			bar:  Bar{Position: 0, Value: 5, Size: 1},
			want: plot.AxisLimits{Left: -0.5, Right: 0.5, Bottom: 0, Top: 5},
		},
		{
			name: "error above",
			bar:  Bar{Position: 0, Value: 5, Size: 1, Error: 2},
			want: plot.AxisLimits{Left: -0.5, Right: 0.5, Bottom: 0, Top: 7},
		},
		{
			name: "error crossing base",
			bar:  Bar{Position: 0, Value: 1, Size: 1, Error: 3},
			want: plot.AxisLimits{Left: -0.5, Right: 0.5, Bottom: -2, Top: 4},
		},
		{
			name: "horizontal negative",
			bar:  Bar{Position: 0, Value: -4, Size: 1, Error: 1, Orientation: plot.Horizontal},
			want: plot.AxisLimits{Left: -5, Right: 0, Bottom: -0.5, Top: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bar.AxisLimits(); !got.Equal(tt.want) {
				t.Errorf("AxisLimits() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBarRenderBody(t *testing.T) {
	t.Run("fill only", func(t *testing.T) {
		rec := record.New()
		New(0, 5).RenderBody(rec, testContext(rec).Axes)
		if got := kinds(rec.Ops()); len(got) != 1 || got[0] != record.KindFillRect {
			t.Errorf("ops = %v, want [fill_rect]", got)
		}
	})

	t.Run("outline and error", func(t *testing.T) {
		b := New(0, 5)
		b.LineWidth = 2
		b.Error = 1
		rec := record.New()
		b.RenderBody(rec, testContext(rec).Axes)

		want := []record.Kind{record.KindFillRect, record.KindStrokeRect, record.KindLine, record.KindLine, record.KindLine}
		got := kinds(rec.Ops())
		if len(got) != len(want) {
			t.Fatalf("ops = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("op %d = %s, want %s", i, got[i], want[i])
			}
		}
		if rec.Ops()[0].Color != b.FillColor {
			t.Errorf("fill color = %v, want %v", rec.Ops()[0].Color, b.FillColor)
		}
	})
}

func TestBarRenderTextPlacement(t *testing.T) {
	style := plot.DefaultLabelStyle()
	axes := testContext(nil).Axes

	tests := []struct {
		name  string
		bar   *Bar
		align plot.Alignment
		at    func(px plot.PixelRect) plot.Pixel
	}{
		{
			name:  "vertical positive above",
			bar:   New(0, 5),
			align: plot.LowerCenter,
			at:    func(px plot.PixelRect) plot.Pixel { return plot.Pixel{X: px.CenterX(), Y: px.Top - style.Padding} },
		},
		{
			name:  "vertical negative below",
			bar:   New(1, -3),
			align: plot.UpperCenter,
			at:    func(px plot.PixelRect) plot.Pixel { return plot.Pixel{X: px.CenterX(), Y: px.Bottom + style.Padding} },
		},
		{
			name:  "horizontal positive right",
			bar:   &Bar{Position: 1, Value: 1.5, Size: 0.8, Orientation: plot.Horizontal},
			align: plot.MiddleLeft,
			at:    func(px plot.PixelRect) plot.Pixel { return plot.Pixel{X: px.Right + style.Padding, Y: px.CenterY()} },
		},
		{
			name:  "horizontal negative left",
			bar:   &Bar{Position: 1, Value: -0.5, Size: 0.8, Orientation: plot.Horizontal},
			align: plot.MiddleRight,
			at:    func(px plot.PixelRect) plot.Pixel { return plot.Pixel{X: px.Left - style.Padding, Y: px.CenterY()} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record.New()
			tt.bar.RenderText(rec, axes, style, "label")

			ops := rec.Ops()
			if len(ops) != 1 {
				t.Fatalf("RenderText drew %d ops, want 1", len(ops))
			}
			if ops[0].Alignment != tt.align.String() {
				t.Errorf("alignment = %s, want %s", ops[0].Alignment, tt.align)
			}
			want := tt.at(axes.PixelRect(tt.bar.Rect()))
			if *ops[0].From != want {
				t.Errorf("anchor = %+v, want %+v", *ops[0].From, want)
			}
		})
	}
}

func TestBarRenderTextSkipsEmpty(t *testing.T) {
	rec := record.New()
	New(0, 1).RenderText(rec, testContext(rec).Axes, plot.DefaultLabelStyle(), "")
	if len(rec.Ops()) != 0 {
		t.Errorf("empty label drew %d ops, want 0", len(rec.Ops()))
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{5, "5"},
		{-3, "-3"},
		{0.1, "0.1"},
		{1234.5, "1234.5"},
		{1e21, "1e+21"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
