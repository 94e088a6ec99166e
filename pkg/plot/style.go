package plot

import "unicode/utf8"

// charWidthRatio approximates the advance of an average glyph relative to
// the font size. Surfaces that can measure text do so themselves; the
// figure layout only needs a rough extent.
const charWidthRatio = 0.55

// LabelStyle is a reusable text formatting template. It carries no text:
// the string to draw is always passed alongside the style, so one style
// value can be shared by every label of a series.
type LabelStyle struct {
	Alignment Alignment
	FontSize  float64
	Color     Color
	Bold      bool
	// Padding is the pixel gap between the anchor and the text box.
	Padding float64
}

// DefaultLabelStyle is the value-label template used by bar series.
func DefaultLabelStyle() LabelStyle {
	return LabelStyle{
		Alignment: LowerCenter,
		FontSize:  12,
		Color:     Black,
		Padding:   4,
	}
}

// WithAlignment returns a copy of s aligned to a.
func (s LabelStyle) WithAlignment(a Alignment) LabelStyle {
	s.Alignment = a
	return s
}

// EstimateTextWidth returns an approximate rendered width of text in pixels.
func EstimateTextWidth(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize * charWidthRatio
}

// TextBox returns the approximate pixel box of text drawn at anchor with s.
func TextBox(text string, anchor Pixel, s LabelStyle) PixelRect {
	w := EstimateTextWidth(text, s.FontSize)
	h := s.FontSize
	left := anchor.X - w*s.Alignment.HorizontalFraction()
	top := anchor.Y - h*s.Alignment.VerticalFraction()
	return PixelRect{Left: left, Right: left + w, Top: top, Bottom: top + h}
}
