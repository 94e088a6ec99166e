package pipeline

import (
	"bytes"
	"fmt"
	"math"

	"github.com/plotkit/barplot/pkg/plot"
	"github.com/plotkit/barplot/pkg/render/raster"
	"github.com/plotkit/barplot/pkg/render/record"
	"github.com/plotkit/barplot/pkg/render/svg"
)

// RenderFigure draws fig onto the surface for format and encodes it.
func RenderFigure(fig *plot.Figure, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return renderSVG(fig), nil
	case FormatPNG:
		return renderPNG(fig)
	case FormatJSON:
		return renderJSON(fig)
	}
	return nil, ValidateFormat(format)
}

// RenderAll renders fig in every format.
func RenderAll(fig *plot.Figure, formats []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(formats))
	for _, f := range formats {
		data, err := RenderFigure(fig, f)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		out[f] = data
	}
	return out, nil
}

func renderSVG(fig *plot.Figure) []byte {
	s := svg.New(fig.Width, fig.Height, svg.WithTitle(fig.Title))
	fig.Render(s)
	return s.Bytes()
}

func renderPNG(fig *plot.Figure) ([]byte, error) {
	s, err := raster.New(int(math.Ceil(fig.Width)), int(math.Ceil(fig.Height)))
	if err != nil {
		return nil, err
	}
	defer s.Close()

	fig.Render(s)
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderJSON(fig *plot.Figure) ([]byte, error) {
	s := record.New()
	fig.Render(s)
	return s.JSON(fig.Width, fig.Height)
}
