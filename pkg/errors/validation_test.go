package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateChartFilename(t *testing.T) {
	exts := []string{".toml", ".json", ".xlsx"}
	tests := []struct {
		name     string
		filename string
		wantErr  bool
		code     Code
	}{
		{"toml", "chart.toml", false, ""},
		{"upper case extension", "CHART.TOML", false, ""},
		{"nested path", "examples/sales.json", false, ""},
		{"xlsx", "data.xlsx", false, ""},
		{"empty", "", true, ErrCodeInvalidPath},
		{"no extension", "chart", true, ErrCodeInvalidFormat},
		{"unsupported", "chart.yaml", true, ErrCodeInvalidFormat},
		{"control char", "chart\x01.toml", true, ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChartFilename(tt.filename, exts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateChartFilename(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
			if tt.wantErr && !Is(err, tt.code) {
				t.Errorf("ValidateChartFilename(%q) code = %v, want %v", tt.filename, GetCode(err), tt.code)
			}
		})
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"empty", "", false},
		{"plain", "Revenue by quarter", false},
		{"unicode", "Umsatz € 2024", false},
		{"tab", "a\tb", false},
		{"newline", "a\nb", true},
		{"null byte", "a\x00b", true},
		{"too long", strings.Repeat("x", MaxTextLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText("title", tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"default", 800, 600, false},
		{"max", MaxDimension, MaxDimension, false},
		{"zero width", 0, 600, true},
		{"negative height", 800, -1, true},
		{"too wide", MaxDimension + 1, 600, true},
		{"nan", math.NaN(), 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%v, %v) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFinite(t *testing.T) {
	if err := ValidateFinite("value", 3.5); err != nil {
		t.Errorf("ValidateFinite(3.5) = %v, want nil", err)
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := ValidateFinite("value", v)
		if !Is(err, ErrCodeInvalidChart) {
			t.Errorf("ValidateFinite(%v) = %v, want %s", v, err, ErrCodeInvalidChart)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidChart,
		ErrCodeInvalidColor,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
