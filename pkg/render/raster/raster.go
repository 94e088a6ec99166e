package raster

import (
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/plotkit/barplot/pkg/errors"
	"github.com/plotkit/barplot/pkg/plot"
)

type faceKey struct {
	size float64
	bold bool
}

// Surface rasterizes draw calls into an RGBA image. Drawing failures are
// kept and returned by the first EncodePNG call.
type Surface struct {
	dc      *gg.Context
	regular *text.FontSource
	bold    *text.FontSource
	faces   map[faceKey]text.Face
	err     error
}

// New returns a transparent surface of the given pixel size using the Go
// fonts for text.
func New(width, height int) (*Surface, error) {
	if err := errors.ValidateDimensions(float64(width), float64(height)); err != nil {
		return nil, err
	}
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load regular font")
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		regular.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load bold font")
	}
	return &Surface{
		dc:      gg.NewContext(width, height),
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]text.Face),
	}, nil
}

func (s *Surface) FillRect(r plot.PixelRect, c plot.Color) {
	if c.A == 0 || r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	s.dc.SetColor(c.NRGBA())
	s.dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
	s.record(s.dc.Fill())
}

func (s *Surface) StrokeRect(r plot.PixelRect, c plot.Color, width float64) {
	if c.A == 0 || width <= 0 {
		return
	}
	s.dc.SetColor(c.NRGBA())
	s.dc.SetLineWidth(width)
	s.dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
	s.record(s.dc.Stroke())
}

func (s *Surface) DrawLine(from, to plot.Pixel, c plot.Color, width float64) {
	if c.A == 0 || width <= 0 {
		return
	}
	s.dc.SetColor(c.NRGBA())
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	s.record(s.dc.Stroke())
}

// DrawText anchors text by its alignment. gg places the baseline at the
// anchor for ay=0 and hangs the text below it for ay=1, the reverse of
// the vertical fraction.
func (s *Surface) DrawText(str string, at plot.Pixel, style plot.LabelStyle) {
	if str == "" || style.FontSize <= 0 || style.Color.A == 0 {
		return
	}
	s.dc.SetFont(s.face(style.FontSize, style.Bold))
	s.dc.SetColor(style.Color.NRGBA())
	s.dc.DrawStringAnchored(str, at.X, at.Y,
		style.Alignment.HorizontalFraction(), 1-style.Alignment.VerticalFraction())
}

// MeasureText returns the rendered width and line height of str.
func (s *Surface) MeasureText(str string, style plot.LabelStyle) (w, h float64) {
	s.dc.SetFont(s.face(style.FontSize, style.Bold))
	return s.dc.MeasureString(str)
}

func (s *Surface) face(size float64, bold bool) text.Face {
	k := faceKey{size, bold}
	if f, ok := s.faces[k]; ok {
		return f
	}
	src := s.regular
	if bold {
		src = s.bold
	}
	f := src.Face(size)
	s.faces[k] = f
	return f
}

func (s *Surface) record(err error) {
	if err != nil && s.err == nil {
		s.err = errors.Wrap(errors.ErrCodeInternal, err, "rasterize")
	}
}

// Err returns the first drawing failure, if any.
func (s *Surface) Err() error { return s.err }

// EncodePNG writes the image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	if err := s.dc.EncodePNG(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return nil
}

// Close releases the context and font sources.
func (s *Surface) Close() error {
	err := s.dc.Close()
	s.regular.Close()
	s.bold.Close()
	return err
}

var _ plot.Surface = (*Surface)(nil)
