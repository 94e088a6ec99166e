package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// TTLs for cached entries.
const (
	// ArtifactTTL bounds how long rendered charts are kept. Keys are
	// content hashes, so entries never go stale; the TTL only limits
	// disk and memory use.
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache stores opaque byte blobs by key.
//
// Get reports a miss with hit=false and a nil error. Backends treat
// unreadable or expired entries as misses.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DefaultDir returns the directory used by the CLI file cache:
// $XDG_CACHE_HOME/barplot, falling back to ~/.cache/barplot.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "barplot"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "barplot"), nil
}
