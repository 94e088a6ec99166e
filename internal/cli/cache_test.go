package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plotkit/barplot/pkg/cache"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	if _, ok := c.(cache.NullCache); !ok {
		t.Errorf("newCache(true) = %T, want cache.NullCache", c)
	}

	c, err = newCache(false)
	if err != nil {
		t.Fatalf("newCache(false) error: %v", err)
	}
	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("newCache(false) = %T, want *cache.FileCache", c)
	}
}

func TestCacheClearCommand(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", root)

	fc, err := cache.NewFileCache(filepath.Join(root, appName))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"a", "b", "c"} {
		if err := fc.Set(ctx, key, []byte(key), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	cmd := New(&bytes.Buffer{}, LogInfo).RootCommand()
	cmd.SetArgs([]string{"cache", "clear"})
	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}

	entries, _, err := fc.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if entries != 0 {
		t.Errorf("entries after clear = %d, want 0", entries)
	}
}

func TestCacheClearMissingDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", root)

	cmd := New(&bytes.Buffer{}, LogInfo).RootCommand()
	cmd.SetArgs([]string{"cache", "clear"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, appName)); !os.IsNotExist(err) {
		t.Error("cache clear should not create a missing cache dir")
	}
}
