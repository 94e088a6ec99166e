// Package pipeline runs the load → render pipeline shared by the CLI and
// the render service.
//
// The pipeline has two stages:
//
//  1. Load: decode a chart definition (TOML, JSON or XLSX) and validate it
//  2. Render: build the figure and encode it (SVG, PNG or JSON draw ops)
//
// Both stages are cached through a [cache.Cache]. Keys are derived from
// content hashes, so a hit is always a correct result.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "revenue.toml",
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plotkit/barplot/pkg/cache"
	"github.com/plotkit/barplot/pkg/chart"
	"github.com/plotkit/barplot/pkg/errors"
	"github.com/plotkit/barplot/pkg/plot"
)

// Default figure size, used when neither the options nor the definition
// set one.
const (
	DefaultWidth  = chart.DefaultWidth
	DefaultHeight = chart.DefaultHeight
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats in preference order.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatJSON}

// ContentType returns the MIME type of an output format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}

// Options configures one pipeline run.
type Options struct {
	// Source names the chart definition. When Data is nil it is the path
	// to read; otherwise it is only used for logging and format detection.
	Source string
	// Data is the raw definition.
	Data []byte
	// InputFormat overrides format detection from the Source extension.
	// Sources without a recognized extension default to TOML.
	InputFormat chart.Format
	// Sheet selects the worksheet of XLSX input.
	Sheet string

	Formats []string
	// Width and Height override the definition's figure size when set.
	Width  float64
	Height float64

	// Refresh skips cache reads but still writes fresh results.
	Refresh bool

	Logger *log.Logger
}

// Result holds the output of a pipeline run.
type Result struct {
	Definition *chart.Definition
	Figure     *plot.Figure
	Artifacts  map[string][]byte
	// ChartHash identifies the definition content after size overrides.
	ChartHash string
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats records sizes and timings of a run.
type Stats struct {
	Series     int
	Bars       int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo records which stages were served from cache.
type CacheInfo struct {
	LoadHit   bool
	RenderHit bool
}

// ValidateFormat checks that format is supported. Formats are
// case-sensitive.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options for a full run and fills
// defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// ValidateForLoad checks the source options and detects the input format.
func (o *Options) ValidateForLoad() error {
	if o.Source == "" && o.Data == nil {
		return errors.New(errors.ErrCodeInvalidInput, "no chart source")
	}
	if o.InputFormat == "" {
		o.InputFormat = chart.FormatTOML
		if f, err := chart.FormatFromPath(o.Source); err == nil {
			o.InputFormat = f
		} else if o.Data == nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

// ValidateForRender checks the output options and defaults Formats to SVG.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.Formats = slices.Compact(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "figure size must not be negative")
	}
	o.setLogger()
	return nil
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArtifactKeyOpts returns the cache key options for format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format, Width: o.Width, Height: o.Height}
}

// sourceBytes returns Data, reading Source when Data is nil.
func (o *Options) sourceBytes() ([]byte, error) {
	if o.Data != nil {
		return o.Data, nil
	}
	data, err := os.ReadFile(o.Source)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s not found", o.Source)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", o.Source)
	}
	return data, nil
}
