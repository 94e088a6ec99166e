// Package raster implements a [plot.Surface] backed by the gg software
// rasterizer, for PNG output without external tools.
//
//	s, err := raster.New(800, 600)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//	fig.Render(s)
//	err = s.EncodePNG(w)
//
// Text uses the embedded Go fonts, so output is identical on every host.
//
// [plot.Surface]: github.com/plotkit/barplot/pkg/plot.Surface
package raster
