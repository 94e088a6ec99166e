package chart

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/plotkit/barplot/pkg/errors"
)

// Format identifies a chart definition encoding.
type Format string

// Supported definition formats.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Extensions lists the file extensions Load accepts.
var Extensions = []string{".toml", ".json", ".xlsx"}

// Option configures decoding.
type Option func(*options)

type options struct {
	sheet string
}

// WithSheet selects the worksheet of an XLSX workbook. The first sheet is
// used by default.
func WithSheet(name string) Option {
	return func(o *options) { o.sheet = name }
}

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(path string) (Format, error) {
	if err := errors.ValidateChartFilename(filepath.Base(path), Extensions...); err != nil {
		return "", err
	}
	return Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")), nil
}

// ParseFormat parses a format name such as "toml" or "application/json".
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	switch s {
	case "toml", "application/toml", "text/toml":
		return FormatTOML, nil
	case "json", "application/json":
		return FormatJSON, nil
	case "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return FormatXLSX, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", s)
}

// Load reads and decodes the definition at path. The format is chosen by
// extension.
func Load(path string, opts ...Option) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Decode(f, format, opts...)
}

// Decode reads a definition in the given format from r. The result is not
// validated.
func Decode(r io.Reader, format Format, opts ...Option) (*Definition, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch format {
	case FormatTOML:
		var d Definition
		if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml chart")
		}
		return &d, nil
	case FormatJSON:
		var d Definition
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json chart")
		}
		return &d, nil
	case FormatXLSX:
		return decodeXLSX(r, o.sheet)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", format)
}

// Encode writes d in the given text format.
func Encode(w io.Writer, d *Definition, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	return errors.New(errors.ErrCodeUnsupported, "cannot encode chart as %q", format)
}
