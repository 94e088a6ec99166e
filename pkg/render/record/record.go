// Package record provides a Surface that records draw calls instead of
// drawing them.
//
// The recording is the draw-command list in call order. It backs the
// "json" output format and lets tests assert on exactly what a plottable
// drew and when.
package record

import (
	"encoding/json"
	"fmt"

	"github.com/plotkit/barplot/pkg/plot"
)

// Kind names a recorded operation.
type Kind string

const (
	KindFillRect   Kind = "fill_rect"
	KindStrokeRect Kind = "stroke_rect"
	KindLine       Kind = "line"
	KindText       Kind = "text"
)

// Op is one recorded draw call.
type Op struct {
	Kind      Kind            `json:"kind"`
	Rect      *plot.PixelRect `json:"rect,omitempty"`
	From      *plot.Pixel     `json:"from,omitempty"`
	To        *plot.Pixel     `json:"to,omitempty"`
	Text      string          `json:"text,omitempty"`
	Alignment string          `json:"alignment,omitempty"`
	FontSize  float64         `json:"font_size,omitempty"`
	Color     plot.Color      `json:"color"`
	Width     float64         `json:"width,omitempty"`
}

// String returns a compact description, e.g. `text "5" lower-center`.
func (o Op) String() string {
	switch o.Kind {
	case KindText:
		return fmt.Sprintf("text %q %s", o.Text, o.Alignment)
	case KindFillRect, KindStrokeRect:
		return fmt.Sprintf("%s [%.1f %.1f %.1f %.1f]", o.Kind, o.Rect.Left, o.Rect.Top, o.Rect.Right, o.Rect.Bottom)
	default:
		return fmt.Sprintf("%s (%.1f,%.1f)-(%.1f,%.1f)", o.Kind, o.From.X, o.From.Y, o.To.X, o.To.Y)
	}
}

// Surface records every call. The zero value is ready to use.
type Surface struct {
	ops []Op
}

// New returns an empty recording surface.
func New() *Surface { return &Surface{} }

// FillRect records a filled rectangle.
func (s *Surface) FillRect(r plot.PixelRect, c plot.Color) {
	s.ops = append(s.ops, Op{Kind: KindFillRect, Rect: &r, Color: c})
}

// StrokeRect records a rectangle outline.
func (s *Surface) StrokeRect(r plot.PixelRect, c plot.Color, width float64) {
	s.ops = append(s.ops, Op{Kind: KindStrokeRect, Rect: &r, Color: c, Width: width})
}

// DrawLine records a line segment.
func (s *Surface) DrawLine(from, to plot.Pixel, c plot.Color, width float64) {
	s.ops = append(s.ops, Op{Kind: KindLine, From: &from, To: &to, Color: c, Width: width})
}

// DrawText records a text draw.
func (s *Surface) DrawText(text string, at plot.Pixel, style plot.LabelStyle) {
	s.ops = append(s.ops, Op{
		Kind:      KindText,
		From:      &at,
		Text:      text,
		Alignment: style.Alignment.String(),
		FontSize:  style.FontSize,
		Color:     style.Color,
	})
}

// Ops returns the recorded operations in call order.
func (s *Surface) Ops() []Op { return s.ops }

// Texts returns the text of every recorded text op in call order.
func (s *Surface) Texts() []string {
	var out []string
	for _, o := range s.ops {
		if o.Kind == KindText {
			out = append(out, o.Text)
		}
	}
	return out
}

// Reset discards the recording.
func (s *Surface) Reset() { s.ops = s.ops[:0] }

type document struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Ops    []Op    `json:"ops"`
}

// JSON encodes the recording together with the figure size.
func (s *Surface) JSON(width, height float64) ([]byte, error) {
	ops := s.ops
	if ops == nil {
		ops = []Op{}
	}
	data, err := json.MarshalIndent(document{Width: width, Height: height, Ops: ops}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode draw ops: %w", err)
	}
	return data, nil
}

var _ plot.Surface = (*Surface)(nil)
