package cli

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/plotkit/barplot/pkg/cache"
)

// captureStdout returns what fn prints to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	saved := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = saved }()

	fn()
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestStatsLine(t *testing.T) {
	tests := []struct {
		series, bars int
		cached       bool
		want         []string
	}{
		{1, 1, false, []string{"1 series", "1 bar", "fresh"}},
		{2, 8, true, []string{"2 series", "8 bars", "cached"}},
		{0, 0, false, []string{"fresh"}},
	}

	for _, tt := range tests {
		got := statsLine(tt.series, tt.bars, tt.cached)
		if tt.bars == 1 && strings.Contains(got, "bars") {
			t.Errorf("statsLine(%d, %d, %v) = %q, want singular bar", tt.series, tt.bars, tt.cached, got)
		}
		for _, want := range tt.want {
			if !strings.Contains(got, want) {
				t.Errorf("statsLine(%d, %d, %v) = %q, want it to contain %q", tt.series, tt.bars, tt.cached, got, want)
			}
		}
	}
}

func TestNewCacheWithoutHome(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "")

	var (
		c   cache.Cache
		err error
	)
	out := captureStdout(t, func() {
		c, err = newCache(false)
	})
	if err != nil {
		t.Fatalf("newCache(false) error: %v", err)
	}
	if _, ok := c.(cache.NullCache); !ok {
		t.Errorf("newCache(false) = %T, want cache.NullCache", c)
	}
	if !strings.Contains(out, iconWarning) || !strings.Contains(out, "cache disabled") {
		t.Errorf("newCache(false) printed %q, want a cache disabled warning", out)
	}
}
