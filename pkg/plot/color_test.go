package plot

import (
	"testing"

	"github.com/plotkit/barplot/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#1f77b4", Color{0x1f, 0x77, 0xb4, 0xff}},
		{"1F77B4", Color{0x1f, 0x77, 0xb4, 0xff}},
		{"#fff", White},
		{"#ff000080", Color{0xff, 0, 0, 0x80}},
		{"black", Black},
		{" Grey ", Gray},
		{"none", Transparent},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#gggggg", "#ff0000zz", "blue-ish"} {
		_, err := ParseColor(in)
		if !errors.Is(err, errors.ErrCodeInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want %s", in, err, errors.ErrCodeInvalidColor)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := RGB(1, 2, 3).String(); got != "#010203" {
		t.Errorf("String() = %q, want #010203", got)
	}
	if got := RGB(1, 2, 3).WithAlpha(0x80).String(); got != "#01020380" {
		t.Errorf("String() = %q, want #01020380", got)
	}
}

func TestColorTextRoundTrip(t *testing.T) {
	in := Color{10, 20, 30, 40}
	text, err := in.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var out Color
	if err := out.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestLighten(t *testing.T) {
	if got := Black.Lighten(1); got != White {
		t.Errorf("Black.Lighten(1) = %v, want white", got)
	}
	if got := Black.Lighten(0); got != Black {
		t.Errorf("Black.Lighten(0) = %v, want black", got)
	}
}

func TestPaletteColorCycles(t *testing.T) {
	if PaletteColor(0) != PaletteColor(len(palette)) {
		t.Error("PaletteColor should cycle")
	}
	if PaletteColor(0) == PaletteColor(1) {
		t.Error("adjacent palette colors should differ")
	}
}
