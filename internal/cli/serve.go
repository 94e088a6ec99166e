package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/plotkit/barplot/pkg/cache"
	"github.com/plotkit/barplot/pkg/observability"
	"github.com/plotkit/barplot/pkg/pipeline"
	"github.com/plotkit/barplot/pkg/server"
)

// redisURLEnv names the environment variable read for --redis.
const redisURLEnv = "BARPLOT_REDIS_URL"

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string
	redisURL  string
	keyPrefix string
	noCache   bool
	maxBody   int64
	timeout   time.Duration
}

// serveCommand creates the serve command for the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:     ":8080",
		redisURL: os.Getenv(redisURLEnv),
		maxBody:  server.DefaultMaxBodyBytes,
		timeout:  30 * time.Second,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Endpoints:
  POST /render   render the chart definition in the request body
  GET  /healthz  liveness probe
  GET  /version  build information

Rendered charts are cached in Redis when --redis (or ` + redisURLEnv + `) is
set, and in the local file cache otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", opts.redisURL, "Redis URL for the shared render cache (env "+redisURLEnv+")")
	cmd.Flags().StringVar(&opts.keyPrefix, "key-prefix", "", "prefix for cache keys in a shared Redis")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "maximum request body size in bytes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request render timeout")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	store, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}

	var keyer cache.Keyer
	if opts.keyPrefix != "" {
		keyer = cache.NewScopedKeyer(nil, opts.keyPrefix)
	}
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	hooks := debugHooks{logger: c.Logger}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	srv := server.New(runner, c.Logger,
		server.WithMaxBodyBytes(opts.maxBody),
		server.WithRenderTimeout(opts.timeout),
	)

	fmt.Println(styleIconInfo.Render(iconListen) + " Listening on " + StyleHighlight.Render(opts.addr))
	if err := srv.ListenAndServe(ctx, opts.addr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	printSuccess("Server stopped")
	return nil
}

// serveCache picks the cache backend: none, Redis when a URL is given,
// or the local file cache.
func (c *CLI) serveCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redisURL != "":
		rc, err := cache.NewRedisCache(ctx, opts.redisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Logger.Info("using redis cache")
		return rc, nil
	}
	return newCache(false)
}
