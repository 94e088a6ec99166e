package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotkit/barplot/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file (single format) or base path (multiple)
	formats string  // comma-separated output formats
	width   float64 // figure width override
	height  float64 // figure height override
	sheet   string  // worksheet for XLSX input
	noCache bool    // bypass the render cache entirely
	refresh bool    // skip cache reads but store fresh results
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [chart]",
		Short: "Render a chart definition to SVG, PNG or JSON",
		Long: `Render a chart definition to one or more output formats.

The chart is read from a TOML, JSON or XLSX file. With a single format the
output is written to --output (or next to the input). With several formats
--output is used as a base path and each format gets its own extension.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(opts.formats)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], formats, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "figure width in pixels (overrides the definition)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "figure height in pixels (overrides the definition)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "worksheet to read from XLSX input (default: first sheet)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results and re-render")

	return cmd
}

// runRender executes the pipeline and writes each artifact to disk.
func (c *CLI) runRender(ctx context.Context, input string, formats []string, opts renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Source:  input,
		Sheet:   opts.sheet,
		Formats: formats,
		Width:   opts.width,
		Height:  opts.height,
		Refresh: opts.refresh,
		Logger:  c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := outputPaths(input, opts.output, formats)
	for _, format := range formats {
		if err := writeArtifact(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %s", input))

	printSuccess("Rendered %s", StyleHighlight.Render(input))
	for _, format := range formats {
		printFile(paths[format])
	}
	printStats(result.Stats.Series, result.Stats.Bars, result.CacheInfo.RenderHit)
	printNewline()
	printNextStep("Preview", appName+" preview "+input)

	return nil
}

// outputPaths maps each format to its destination file. A single format
// writes to output verbatim when set; otherwise output (or the input path
// without its extension) is a base that each format's extension is
// appended to.
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else if ext := filepath.Ext(base); ext != "" && pipeline.ValidateFormat(ext[1:]) == nil {
		base = strings.TrimSuffix(base, ext)
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
