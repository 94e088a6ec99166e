package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// MaxTextLength bounds titles, legend text and value labels.
const MaxTextLength = 256

// MaxDimension bounds the pixel width and height of a rendered figure.
const MaxDimension = 8192

// ValidateChartFilename validates the name of a chart definition file.
// Only the base name is inspected; the extension must be one of exts
// (compared case-insensitively, with the leading dot).
func ValidateChartFilename(name string, exts ...string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "chart filename cannot be empty")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "chart filename contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return New(ErrCodeInvalidFormat, "chart filename %q has no extension", filepath.Base(name))
	}
	for _, e := range exts {
		if ext == e {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported chart file type %q (want one of %s)", ext, strings.Join(exts, ", "))
}

// ValidateText validates a user-provided string such as a title or label.
// Empty strings are allowed.
//
// Validation rules:
//   - Maximum length of MaxTextLength characters
//   - No null bytes or control characters other than tab
func ValidateText(field, s string) error {
	if len(s) > MaxTextLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", field, MaxTextLength)
	}
	for _, r := range s {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", field)
		}
	}
	return nil
}

// ValidateDimensions validates a figure size in pixels.
func ValidateDimensions(width, height float64) error {
	if math.IsNaN(width) || math.IsNaN(height) {
		return New(ErrCodeInvalidInput, "figure size must be a number")
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidInput, "figure size must be positive, got %gx%g", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidInput, "figure size %gx%g exceeds %d pixels", width, height, MaxDimension)
	}
	return nil
}

// ValidateFinite validates that v is a real number.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidChart, "%s must be a finite number", field)
	}
	return nil
}
