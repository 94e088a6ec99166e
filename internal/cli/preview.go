package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/plotkit/barplot/pkg/pipeline"
	"github.com/plotkit/barplot/pkg/plot"
	"github.com/plotkit/barplot/pkg/plot/bar"
	"github.com/plotkit/barplot/pkg/render/term"
)

// Preview size before the first window size message arrives.
const (
	previewCols = 80
	previewRows = 24
	// previewChrome is the number of rows reserved for the help line.
	previewChrome = 2
)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		sheet   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "preview [chart]",
		Short: "Show a chart interactively in the terminal",
		Long: `Show a chart interactively in the terminal.

Keys:
  h  toggle horizontal/vertical bars
  t  toggle value labels on top of every series
  l  toggle the legend
  q  quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], sheet, noCache)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet to read from XLSX input (default: first sheet)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input, sheet string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	def, err := runner.Load(ctx, pipeline.Options{Source: input, Sheet: sheet, Logger: c.Logger})
	if err != nil {
		return err
	}
	fig, err := def.Figure()
	if err != nil {
		return err
	}

	p := tea.NewProgram(newPreviewModel(fig), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// =============================================================================
// previewModel - Interactive chart view
// =============================================================================

// previewModel is the bubbletea model for the preview command. Toggles
// mutate the figure's series through their uniform setters, so the next
// View reflects them.
type previewModel struct {
	fig        *plot.Figure
	series     []*bar.Series
	cols, rows int
	horizontal bool
	onTop      bool
}

func newPreviewModel(fig *plot.Figure) previewModel {
	m := previewModel{fig: fig, cols: previewCols, rows: previewRows}
	for _, p := range fig.Plottables() {
		if s, ok := p.(*bar.Series); ok {
			m.series = append(m.series, s)
		}
	}

	// Category ticks sit on the axis the figure was laid out for; without
	// them the chart is horizontal only when every bar is.
	if len(fig.XTicks) > 0 || len(fig.YTicks) > 0 {
		m.horizontal = len(fig.YTicks) > 0
	} else {
		m.horizontal = allHorizontal(m.series)
	}
	for _, s := range m.series {
		if bars := s.Bars(); len(bars) > 0 {
			m.onTop = bars[0].LabelOnTop
			break
		}
	}
	return m
}

func allHorizontal(series []*bar.Series) bool {
	found := false
	for _, s := range series {
		for _, b := range s.Bars() {
			if !b.IsHorizontal() {
				return false
			}
			found = true
		}
	}
	return found
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "h":
			m.horizontal = !m.horizontal
			for _, s := range m.series {
				s.SetHorizontal(m.horizontal)
			}
			// Category labels follow the category axis.
			m.fig.XTicks, m.fig.YTicks = m.fig.YTicks, m.fig.XTicks
		case "t":
			m.onTop = !m.onTop
			for _, s := range m.series {
				s.SetLabelsOnTop(m.onTop)
			}
		case "l":
			m.fig.ShowLegend = !m.fig.ShowLegend
		}
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 20)
		m.rows = max(msg.Height, previewChrome+5)
	}
	return m, nil
}

func (m previewModel) View() string {
	surface := term.New(m.cols, m.rows-previewChrome)
	m.fig.Width, m.fig.Height = term.PixelSize(surface.Size())
	m.fig.Render(surface)

	var b strings.Builder
	b.WriteString(surface.String())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.helpLine()))
	return b.String()
}

func (m previewModel) helpLine() string {
	orientation := "vertical"
	if m.horizontal {
		orientation = "horizontal"
	}
	return fmt.Sprintf("h %s  t labels on top: %v  l legend: %v  q quit",
		orientation, m.onTop, m.fig.ShowLegend)
}
