package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/plotkit/barplot/pkg/pipeline"
	"github.com/plotkit/barplot/pkg/plot"
	"github.com/plotkit/barplot/pkg/plot/bar"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		sheet   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [chart]",
		Short: "Summarize the series and axis limits of a chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], sheet, noCache)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet to read from XLSX input (default: first sheet)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input, sheet string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	def, cached, err := runner.LoadWithCacheInfo(ctx, pipeline.Options{Source: input, Sheet: sheet, Logger: c.Logger})
	if err != nil {
		return err
	}
	fig, err := def.Figure()
	if err != nil {
		return err
	}

	title := def.Title
	if title == "" {
		title = input
	}
	fmt.Println(StyleTitle.Render(title))
	printNewline()

	w, h := def.Size()
	printKeyValue("Size", fmt.Sprintf("%.0f × %.0f", w, h))
	limits := fig.AxisLimits()
	printKeyValue("X limits", formatRange(limits.Left, limits.Right))
	printKeyValue("Y limits", formatRange(limits.Bottom, limits.Top))
	if items := fig.LegendItems(); len(items) > 0 && fig.ShowLegend {
		printKeyValue("Legend", strconv.Itoa(len(items))+" entries")
	}
	printNewline()

	fmt.Println(seriesTable(fig).Render())
	printStats(len(def.Series), def.BarCount(), cached)
	return nil
}

// seriesRows returns one summary row per bar series: index, legend text,
// bar count, orientation, value range and first fill color.
func seriesRows(fig *plot.Figure) [][]string {
	var rows [][]string
	for i, p := range fig.Plottables() {
		s, ok := p.(*bar.Series)
		if !ok {
			continue
		}
		orientation := "vertical"
		lo, hi := math.Inf(1), math.Inf(-1)
		swatch := "-"
		for j, b := range s.Bars() {
			if j == 0 {
				swatch = b.FillColor.Hex()
				if b.IsHorizontal() {
					orientation = "horizontal"
				}
			}
			lo = min(lo, b.Value, b.ValueBase)
			hi = max(hi, b.Value, b.ValueBase)
		}
		valueRange := "-"
		if s.Len() > 0 {
			valueRange = formatRange(lo, hi)
		}
		legend := s.LegendText
		if legend == "" {
			legend = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			legend,
			strconv.Itoa(s.Len()),
			orientation,
			valueRange,
			swatch,
		})
	}
	return rows
}

func seriesTable(fig *plot.Figure) *table.Table {
	const colorColumn = 5
	rows := seriesRows(fig)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "SERIES", "BARS", "ORIENTATION", "RANGE", "COLOR").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Inherit(StyleHeader)
			case col == colorColumn && row >= 0 && row < len(rows) && rows[row][col] != "-":
				return style.Foreground(lipgloss.Color(rows[row][col]))
			case col == 2:
				return style.Inherit(StyleNumber)
			}
			return style.Inherit(StyleValue)
		})
}

func formatRange(lo, hi float64) string {
	return bar.FormatValue(lo) + " … " + bar.FormatValue(hi)
}
