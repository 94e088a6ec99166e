package plot

import (
	"math"
	"slices"
	"testing"
)

func tickLabels(ts []Tick) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Label
	}
	return out
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   float64
		maxCount int
		want     []string
	}{
		{"unit steps", 0, 5, 6, []string{"0", "1", "2", "3", "4", "5"}},
		{"step of two", 0, 10, 6, []string{"0", "2", "4", "6", "8", "10"}},
		{"negative range", -3.3, 5.5, 5, []string{"0", "5"}},
		{"fractional", 0, 1, 5, []string{"0.0", "0.5", "1.0"}},
		{"offset start", 0.3, 0.9, 7, []string{"0.3", "0.4", "0.5", "0.6", "0.7", "0.8", "0.9"}},
		{"large", 0, 25000, 6, []string{"0", "5000", "10000", "15000", "20000", "25000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tickLabels(Ticks(tt.lo, tt.hi, tt.maxCount))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Ticks(%v, %v, %d) = %v, want %v", tt.lo, tt.hi, tt.maxCount, got, tt.want)
			}
		})
	}
}

func TestTicksInvalid(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   float64
		maxCount int
	}{
		{"empty range", 1, 1, 5},
		{"reversed", 2, 1, 5},
		{"nan", math.NaN(), 1, 5},
		{"inf", 0, math.Inf(1), 5},
		{"too few", 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ticks(tt.lo, tt.hi, tt.maxCount); got != nil {
				t.Errorf("Ticks() = %v, want nil", got)
			}
		})
	}
}

func TestTicksWithinRange(t *testing.T) {
	for _, r := range [][2]float64{{-7.2, 13.9}, {0.001, 0.0042}, {-1e6, 1e6}} {
		tol := (r[1] - r[0]) * 1e-9
		for _, tk := range Ticks(r[0], r[1], 8) {
			if tk.Position < r[0]-tol || tk.Position > r[1]+tol {
				t.Errorf("tick %v outside [%v, %v]", tk.Position, r[0], r[1])
			}
		}
	}
}
