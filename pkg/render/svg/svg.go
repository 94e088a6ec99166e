package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/plotkit/barplot/pkg/plot"
)

const defaultFontFamily = "Helvetica, Arial, sans-serif"

// Option configures a Surface.
type Option func(*Surface)

// WithFontFamily sets the CSS font-family of every text element.
func WithFontFamily(family string) Option {
	return func(s *Surface) { s.fontFamily = family }
}

// WithTitle adds a <title> element, which viewers show as a tooltip.
func WithTitle(title string) Option {
	return func(s *Surface) { s.title = title }
}

// Surface writes SVG elements in draw order. Later elements paint over
// earlier ones, which is what the two-phase render relies on.
type Surface struct {
	width, height float64
	fontFamily    string
	title         string
	body          bytes.Buffer
}

// New returns an empty surface of the given pixel size.
func New(width, height float64, opts ...Option) *Surface {
	s := &Surface{width: width, height: height, fontFamily: defaultFontFamily}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Surface) FillRect(r plot.PixelRect, c plot.Color) {
	if c.A == 0 {
		return
	}
	fmt.Fprintf(&s.body, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"%s/>`+"\n",
		r.Left, r.Top, r.Width(), r.Height(), c.Hex(), opacity("fill-opacity", c))
}

func (s *Surface) StrokeRect(r plot.PixelRect, c plot.Color, width float64) {
	if c.A == 0 || width <= 0 {
		return
	}
	fmt.Fprintf(&s.body, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="%.2f"%s/>`+"\n",
		r.Left, r.Top, r.Width(), r.Height(), c.Hex(), width, opacity("stroke-opacity", c))
}

func (s *Surface) DrawLine(from, to plot.Pixel, c plot.Color, width float64) {
	if c.A == 0 || width <= 0 {
		return
	}
	fmt.Fprintf(&s.body, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"%s/>`+"\n",
		from.X, from.Y, to.X, to.Y, c.Hex(), width, opacity("stroke-opacity", c))
}

func (s *Surface) DrawText(text string, at plot.Pixel, style plot.LabelStyle) {
	if text == "" {
		return
	}
	weight := ""
	if style.Bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(&s.body, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s"%s text-anchor="%s" dominant-baseline="%s"%s>%s</text>`+"\n",
		at.X, at.Y, escape(s.fontFamily), style.FontSize, style.Color.Hex(), opacity("fill-opacity", style.Color),
		textAnchor(style.Alignment), baseline(style.Alignment), weight, escape(text))
}

// Bytes returns the complete document.
func (s *Surface) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	if s.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(s.title))
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func textAnchor(a plot.Alignment) string {
	switch a.HorizontalFraction() {
	case 0:
		return "start"
	case 1:
		return "end"
	default:
		return "middle"
	}
}

func baseline(a plot.Alignment) string {
	switch a.VerticalFraction() {
	case 0:
		return "hanging"
	case 1:
		return "alphabetic"
	default:
		return "central"
	}
}

func opacity(attr string, c plot.Color) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(` %s="%.3f"`, attr, c.Opacity())
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

var _ plot.Surface = (*Surface)(nil)
