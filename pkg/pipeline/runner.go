package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plotkit/barplot/pkg/cache"
	"github.com/plotkit/barplot/pkg/chart"
	"github.com/plotkit/barplot/pkg/observability"
)

// Cache key types reported to the cache hooks.
const (
	keyTypeSource   = "source"
	keyTypeArtifact = "artifact"
)

// Runner executes the pipeline with caching. It holds no per-run state,
// so one Runner can serve concurrent runs with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer uses cache.DefaultKeyer, a nil
// cache disables caching and a nil logger uses log.Default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute loads the definition, applies size overrides and renders every
// requested format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	loadStart := time.Now()
	def, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.CacheInfo.LoadHit = loadHit

	applySize(def, opts)
	result.Definition = def
	if result.Figure, err = def.Figure(); err != nil {
		return nil, fmt.Errorf("build figure: %w", err)
	}
	result.ChartHash = def.Hash()
	result.Stats.Series = len(def.Series)
	result.Stats.Bars = def.BarCount()

	opts.Logger.Info("loaded chart",
		"source", opts.Source,
		"series", result.Stats.Series,
		"bars", result.Stats.Bars,
		"cached", loadHit,
		"duration", result.Stats.LoadTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, def, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered chart",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo decodes and validates the definition, reporting
// whether it came from cache. Decoded definitions are cached as JSON under
// the hash of the source bytes.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*chart.Definition, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	hooks := observability.Pipeline()

	data, err := opts.sourceBytes()
	if err != nil {
		return nil, false, err
	}
	key := r.Keyer.SourceKey(cache.Hash(append([]byte(opts.Sheet+"\x00"), data...)), string(opts.InputFormat))

	if !opts.Refresh {
		if def, ok := r.cachedDefinition(ctx, key); ok {
			return def, true, nil
		}
	}

	hooks.OnLoadStart(ctx, opts.Source, string(opts.InputFormat))
	start := time.Now()
	def, err := chart.Decode(bytes.NewReader(data), opts.InputFormat, chart.WithSheet(opts.Sheet))
	if err == nil {
		err = def.Validate()
	}
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Source, 0, 0, time.Since(start), err)
		return nil, false, err
	}
	hooks.OnLoadComplete(ctx, opts.Source, len(def.Series), def.BarCount(), time.Since(start), nil)

	if encoded, err := json.Marshal(def); err == nil {
		if err := r.Cache.Set(ctx, key, encoded, cache.ArtifactTTL); err != nil {
			opts.Logger.Warn("cache write failed", "key", key, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeSource, len(encoded))
		}
	}
	return def, false, nil
}

// Load is LoadWithCacheInfo without the cache info.
func (r *Runner) Load(ctx context.Context, opts Options) (*chart.Definition, error) {
	def, _, err := r.LoadWithCacheInfo(ctx, opts)
	return def, err
}

func (r *Runner) cachedDefinition(ctx context.Context, key string) (*chart.Definition, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeSource)
		return nil, false
	}
	var def chart.Definition
	if err := json.Unmarshal(data, &def); err != nil {
		observability.Cache().OnCacheMiss(ctx, keyTypeSource)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeSource)
	return &def, true
}

// RenderWithCacheInfo renders def in every requested format, applying the
// size overrides of opts to a copy of def. The cached artifacts are used
// only when every format is cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, def *chart.Definition, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	sized := *def
	applySize(&sized, opts)
	def = &sized
	if err := def.Validate(); err != nil {
		return nil, false, err
	}
	hash := def.Hash()

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)))
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
				break
			}
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	fig, err := def.Figure()
	if err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		hooks.OnRenderStart(ctx, format)
		start := time.Now()
		data, err := RenderFigure(fig, format)
		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
		opts.Logger.Debug("rendered format", "format", format, "bytes", len(data), "duration", time.Since(start))

		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
			opts.Logger.Warn("cache write failed", "key", key, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
	}
	return artifacts, false, nil
}

// Render is RenderWithCacheInfo without the cache info.
func (r *Runner) Render(ctx context.Context, def *chart.Definition, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, def, opts)
	return artifacts, err
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func applySize(def *chart.Definition, opts Options) {
	if opts.Width > 0 {
		def.Width = opts.Width
	}
	if opts.Height > 0 {
		def.Height = opts.Height
	}
}
