package chart

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plotkit/barplot/pkg/cache"
	"github.com/plotkit/barplot/pkg/errors"
	"github.com/plotkit/barplot/pkg/plot"
)

// Default figure size for definitions that leave it unset.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Definition is a declarative bar chart: figure settings plus one entry
// per series. Zero values mean "use the default".
type Definition struct {
	Title      string   `toml:"title" json:"title,omitempty"`
	Width      float64  `toml:"width" json:"width,omitempty"`
	Height     float64  `toml:"height" json:"height,omitempty"`
	Background string   `toml:"background" json:"background,omitempty"`
	XLabel     string   `toml:"x_label" json:"x_label,omitempty"`
	YLabel     string   `toml:"y_label" json:"y_label,omitempty"`
	Legend     *bool    `toml:"legend" json:"legend,omitempty"`
	Grid       *bool    `toml:"grid" json:"grid,omitempty"`
	Grouped    bool     `toml:"grouped" json:"grouped,omitempty"`
	Categories []string `toml:"categories" json:"categories,omitempty"`
	Series     []Series `toml:"series" json:"series"`
}

// Series describes one bar series. Values is a shorthand for bars at
// positions 0, 1, 2, ...; Bars are appended after them.
type Series struct {
	Legend      string    `toml:"legend" json:"legend,omitempty"`
	Color       string    `toml:"color" json:"color,omitempty"`
	Horizontal  bool      `toml:"horizontal" json:"horizontal,omitempty"`
	LabelsOnTop bool      `toml:"labels_on_top" json:"labels_on_top,omitempty"`
	LabelFormat string    `toml:"label_format" json:"label_format,omitempty"`
	LabelSize   float64   `toml:"label_size" json:"label_size,omitempty"`
	LabelColor  string    `toml:"label_color" json:"label_color,omitempty"`
	Values      []float64 `toml:"values" json:"values,omitempty"`
	Bars        []Bar     `toml:"bars" json:"bars,omitempty"`
}

// Bar describes a single bar. A nil Position places the bar at its index
// within the series, a nil Label uses the series label format and a nil
// OnTop follows the series setting.
type Bar struct {
	Position *float64 `toml:"position" json:"position,omitempty"`
	Value    float64  `toml:"value" json:"value"`
	Base     float64  `toml:"base" json:"base,omitempty"`
	Size     float64  `toml:"size" json:"size,omitempty"`
	Color    string   `toml:"color" json:"color,omitempty"`
	Label    *string  `toml:"label" json:"label,omitempty"`
	OnTop    *bool    `toml:"on_top" json:"on_top,omitempty"`
	Error    float64  `toml:"error" json:"error,omitempty"`
}

// Size returns the figure size with defaults applied.
func (d *Definition) Size() (width, height float64) {
	width, height = d.Width, d.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return width, height
}

// BarCount returns the number of bars across every series.
func (d *Definition) BarCount() int {
	n := 0
	for _, s := range d.Series {
		n += len(s.Values) + len(s.Bars)
	}
	return n
}

// Validate reports the first problem that would stop the definition from
// rendering. Every returned error carries errors.ErrCodeInvalidChart or a
// more specific validation code.
func (d *Definition) Validate() error {
	if len(d.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidChart, "chart has no series")
	}
	if err := errors.ValidateDimensions(d.Size()); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidChart, err, "invalid figure size")
	}
	texts := [][2]string{{"title", d.Title}, {"x_label", d.XLabel}, {"y_label", d.YLabel}}
	for _, t := range texts {
		if err := errors.ValidateText(t[0], t[1]); err != nil {
			return err
		}
	}
	if err := validColor("background", d.Background); err != nil {
		return err
	}
	for i, c := range d.Categories {
		if err := errors.ValidateText(fmt.Sprintf("categories[%d]", i), c); err != nil {
			return err
		}
	}
	for i := range d.Series {
		if err := d.Series[i].validate(fmt.Sprintf("series[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Series) validate(field string) error {
	if err := errors.ValidateText(field+".legend", s.Legend); err != nil {
		return err
	}
	if err := validColor(field+".color", s.Color); err != nil {
		return err
	}
	if err := validColor(field+".label_color", s.LabelColor); err != nil {
		return err
	}
	if s.LabelSize < 0 {
		return errors.New(errors.ErrCodeInvalidChart, "%s.label_size must not be negative", field)
	}
	if s.LabelFormat != "" {
		sample := fmt.Sprintf(s.LabelFormat, 1.5)
		if strings.Contains(sample, "%!") {
			return errors.New(errors.ErrCodeInvalidChart, "%s.label_format %q must format exactly one number", field, s.LabelFormat)
		}
		if err := errors.ValidateText(field+".label_format", sample); err != nil {
			return err
		}
	}
	for i, v := range s.Values {
		if err := errors.ValidateFinite(fmt.Sprintf("%s.values[%d]", field, i), v); err != nil {
			return err
		}
	}
	for i, b := range s.Bars {
		if err := b.validate(fmt.Sprintf("%s.bars[%d]", field, i)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bar) validate(field string) error {
	if b.Position != nil {
		if err := errors.ValidateFinite(field+".position", *b.Position); err != nil {
			return err
		}
	}
	for _, v := range []struct {
		name string
		v    float64
	}{{"value", b.Value}, {"base", b.Base}, {"size", b.Size}, {"error", b.Error}} {
		if err := errors.ValidateFinite(field+"."+v.name, v.v); err != nil {
			return err
		}
	}
	if b.Size < 0 {
		return errors.New(errors.ErrCodeInvalidChart, "%s.size must not be negative", field)
	}
	if b.Error < 0 {
		return errors.New(errors.ErrCodeInvalidChart, "%s.error must not be negative", field)
	}
	if b.Label != nil {
		if err := errors.ValidateText(field+".label", *b.Label); err != nil {
			return err
		}
	}
	return validColor(field+".color", b.Color)
}

func validColor(field, s string) error {
	if s == "" {
		return nil
	}
	if _, err := plot.ParseColor(s); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "%s: invalid color %q", field, s)
	}
	return nil
}

// Hash returns a stable content hash of the definition. Two definitions
// that render identically in every format hash identically.
//
// d must have passed Validate: a definition holds only strings, bools,
// slices and finite floats, so encoding it cannot fail.
func (d *Definition) Hash() string {
	data, err := json.Marshal(d)
	if err != nil {
		panic(fmt.Sprintf("chart: hash of unvalidated definition: %v", err))
	}
	return cache.Hash(data)
}
