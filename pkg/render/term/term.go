package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plotkit/barplot/pkg/plot"
)

// Pixel size of one terminal cell. Figures rendered onto a Surface should
// be sized with PixelSize so that one cell covers a CellWidth x CellHeight
// block of figure pixels.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// PixelSize returns the figure size matching a grid of cols x rows cells.
func PixelSize(cols, rows int) (width, height float64) {
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}

type cell struct {
	ch   rune
	fg   plot.Color
	bg   plot.Color
	bold bool
}

// Surface approximates a figure on a grid of terminal cells. Filled
// rectangles become cell backgrounds, lines become box-drawing runes and
// text is written cell by cell.
type Surface struct {
	cols, rows int
	cells      []cell
}

// New returns a blank grid.
func New(cols, rows int) *Surface {
	cols, rows = max(cols, 1), max(rows, 1)
	cells := make([]cell, cols*rows)
	for i := range cells {
		cells[i].ch = ' '
	}
	return &Surface{cols: cols, rows: rows, cells: cells}
}

// Size returns the grid dimensions.
func (s *Surface) Size() (cols, rows int) { return s.cols, s.rows }

func (s *Surface) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func toCol(x float64) int { return int(math.Floor(x / CellWidth)) }
func toRow(y float64) int { return int(math.Floor(y / CellHeight)) }

// FillRect colors every cell whose center lies in r. A rectangle too thin
// to cover a center still claims the cell under its own center.
func (s *Surface) FillRect(r plot.PixelRect, c plot.Color) {
	if c.A == 0 {
		return
	}
	c0 := int(math.Ceil(r.Left/CellWidth - 0.5))
	c1 := int(math.Floor(r.Right/CellWidth - 0.5))
	r0 := int(math.Ceil(r.Top/CellHeight - 0.5))
	r1 := int(math.Floor(r.Bottom/CellHeight - 0.5))
	if c1 < c0 {
		c0, c1 = toCol(r.CenterX()), toCol(r.CenterX())
	}
	if r1 < r0 {
		r0, r1 = toRow(r.CenterY()), toRow(r.CenterY())
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if p := s.at(col, row); p != nil {
				*p = cell{ch: ' ', bg: c}
			}
		}
	}
}

// StrokeRect draws the outline with box-drawing runes.
func (s *Surface) StrokeRect(r plot.PixelRect, c plot.Color, width float64) {
	tl := plot.Pixel{X: r.Left, Y: r.Top}
	tr := plot.Pixel{X: r.Right, Y: r.Top}
	bl := plot.Pixel{X: r.Left, Y: r.Bottom}
	br := plot.Pixel{X: r.Right, Y: r.Bottom}
	s.DrawLine(tl, tr, c, width)
	s.DrawLine(bl, br, c, width)
	s.DrawLine(tl, bl, c, width)
	s.DrawLine(tr, br, c, width)
}

// DrawLine draws horizontal and vertical segments. Diagonal segments are
// approximated by their dominant direction.
func (s *Surface) DrawLine(from, to plot.Pixel, c plot.Color, width float64) {
	if c.A == 0 || width <= 0 {
		return
	}
	if math.Abs(to.X-from.X)/CellWidth >= math.Abs(to.Y-from.Y)/CellHeight {
		row := toRow((from.Y + to.Y) / 2)
		for col := toCol(min(from.X, to.X)); col <= toCol(max(from.X, to.X)); col++ {
			s.stroke(col, row, '─', c)
		}
		return
	}
	col := toCol((from.X + to.X) / 2)
	for row := toRow(min(from.Y, to.Y)); row <= toRow(max(from.Y, to.Y)); row++ {
		s.stroke(col, row, '│', c)
	}
}

func (s *Surface) stroke(col, row int, ch rune, c plot.Color) {
	p := s.at(col, row)
	if p == nil {
		return
	}
	if (p.ch == '─' && ch == '│') || (p.ch == '│' && ch == '─') {
		ch = '┼'
	}
	p.ch, p.fg, p.bold = ch, c, false
}

// DrawText writes text one rune per cell, aligned around at.
func (s *Surface) DrawText(text string, at plot.Pixel, style plot.LabelStyle) {
	if text == "" || style.Color.A == 0 {
		return
	}
	runes := []rune(text)
	width := float64(len(runes))
	col := int(math.Round(at.X/CellWidth - width*style.Alignment.HorizontalFraction()))

	row := toRow(at.Y)
	if style.Alignment.VerticalFraction() == 1 {
		row = toRow(at.Y - 1)
	}
	for i, r := range runes {
		if p := s.at(col+i, row); p != nil {
			p.ch, p.fg, p.bold = r, style.Color, style.Bold
		}
	}
}

// Plain returns the grid as text without colors.
func (s *Surface) Plain() string {
	var b strings.Builder
	for row := range s.rows {
		line := make([]rune, s.cols)
		for col := range s.cols {
			line[col] = s.cells[row*s.cols+col].ch
		}
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid with lipgloss colors. Adjacent cells with the
// same style are rendered as one run.
func (s *Surface) String() string {
	var b strings.Builder
	for row := range s.rows {
		start := 0
		for col := 1; col <= s.cols; col++ {
			if col < s.cols && sameStyle(s.cells[row*s.cols+col], s.cells[row*s.cols+start]) {
				continue
			}
			run := s.cells[row*s.cols+start : row*s.cols+col]
			var text strings.Builder
			for _, c := range run {
				text.WriteRune(c.ch)
			}
			b.WriteString(cellStyle(run[0]).Render(text.String()))
			start = col
		}
		if row < s.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}

func cellStyle(c cell) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(c.bold)
	if c.fg.A > 0 {
		st = st.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	if c.bg.A > 0 {
		st = st.Background(lipgloss.Color(c.bg.Hex()))
	}
	return st
}

var _ plot.Surface = (*Surface)(nil)
