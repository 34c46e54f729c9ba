package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Partial blocks from one to seven eighths of a cell.
var eighths = [8]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

type Cell struct {
	R    rune
	Fg   lipgloss.Color
	Bold bool
}

// Canvas is a grid of colored cells.
type Canvas struct {
	Width, Height int
	Grid          [][]Cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]Cell, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]Cell, w)
	}
	c.Clear()
	return c
}

// Set writes one cell. Out of range coordinates are ignored.
func (c *Canvas) Set(x, y int, r rune, fg lipgloss.Color) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Grid[y][x] = Cell{R: r, Fg: fg}
}

// Text writes s starting at (x, y), clipped to the canvas.
func (c *Canvas) Text(x, y int, s string, fg lipgloss.Color, bold bool) {
	for _, r := range s {
		if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
			c.Grid[y][x] = Cell{R: r, Fg: fg, Bold: bold}
		}
		x++
	}
}

// CenterText writes s centered on column cx.
func (c *Canvas) CenterText(cx, y int, s string, fg lipgloss.Color, bold bool) {
	c.Text(cx-len([]rune(s))/2, y, s, fg, bold)
}

// Bar fills a column of the given width up from baseline. height is in
// eighths of a row; the top cell uses a partial block.
func (c *Canvas) Bar(x, width, baseline, height int, fg lipgloss.Color) {
	full, rem := height/8, height%8
	for dx := 0; dx < width; dx++ {
		for dy := 0; dy < full; dy++ {
			c.Set(x+dx, baseline-dy, '█', fg)
		}
		if rem > 0 {
			c.Set(x+dx, baseline-full, eighths[rem], fg)
		}
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = Cell{R: ' '}
		}
	}
}

// Plain returns the canvas without color, one line per row.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for _, row := range c.Grid {
		for _, cell := range row {
			b.WriteRune(cell.R)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the canvas, grouping runs of equally styled cells.
func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.Grid {
		var run strings.Builder
		var cur Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Foreground(cur.Fg).Bold(cur.Bold)
			if cur.Fg == "" && !cur.Bold {
				b.WriteString(run.String())
			} else {
				b.WriteString(style.Render(run.String()))
			}
			run.Reset()
		}
		for x, cell := range row {
			if x > 0 && (cell.Fg != cur.Fg || cell.Bold != cur.Bold) {
				flush()
			}
			cur = cell
			run.WriteRune(cell.R)
		}
		flush()
		if y < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
