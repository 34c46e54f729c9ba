package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bsviz/internal/config"
	"github.com/san-kum/bsviz/internal/playback"
	"github.com/san-kum/bsviz/internal/render"
)

const (
	sideWidth      = 44 // side panel width, padding included
	minChartWidth  = 20
	minPanelHeight = 8
	// header, field boxes (3), readouts, status, transport
	fixedRows = 7
)

// frame is how the terminal is split between the chart and the side panel.
type frame struct {
	chartW, bodyH int
	side          bool
}

func (m Model) frame() frame {
	helpH := lipgloss.Height(m.help.View(m.keys))
	f := frame{
		chartW: m.width,
		bodyH:  max(m.height-fixedRows-helpH, 1),
	}
	// the panel stays only while every bar keeps a one cell gap
	if w := m.width - sideWidth - 4; w >= max(2*len(m.data), minChartWidth) && f.bodyH >= minPanelHeight {
		f.side, f.chartW = true, w
	}
	return f
}

func (m Model) View() string {
	st := m.styles
	step := m.step()
	f := m.frame()
	clip := lipgloss.NewStyle().MaxWidth(m.width)

	header := st.Title.Render("BINARY SEARCH VISUALIZER") + "  " +
		st.Subtle.Render(fmt.Sprintf("theme %s · sound %s", m.theme.Name, onOff(m.soundOn)))

	fields := lipgloss.JoinHorizontal(lipgloss.Top,
		m.field("Size", "◀ "+strconv.Itoa(m.sizeInput)+" ▶", m.focus == focusSize),
		m.field("List", m.listInput.View(), m.focus == focusList),
		m.field("Find", m.targetInput.View(), m.focus == focusTarget),
	)

	low, mid, high := render.Readouts(step)
	readouts := st.Label.Render("LOW ") + st.Value.Render(fmt.Sprintf("%-3s", low)) + "  " +
		st.Label.Render("MID ") + lipgloss.NewStyle().Foreground(m.theme.Mid).Bold(true).Render(fmt.Sprintf("%-3s", mid)) + "  " +
		st.Label.Render("HIGH ") + st.Value.Render(fmt.Sprintf("%-3s", high))
	if line := render.LineFor(step); !f.side && line > 0 {
		readouts += "   " + st.CodeLine.Render(fmt.Sprintf("%2d %s", line, strings.TrimSpace(render.Pseudocode[line-1])))
	}

	msg, tone := m.Status()
	status := clip.Render(st.Tone(tone).Render(msg))
	if m.bell {
		// rides along with the frame so it never interleaves with a repaint
		status = "\a" + status
	}

	_, canvas := m.chart(f)
	body := lipgloss.NewStyle().MaxWidth(f.chartW).Render(canvas.String())
	if f.side {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.sidePanel(f.bodyH))
	}
	body = lipgloss.NewStyle().MaxHeight(f.bodyH).Render(body)

	return strings.Join([]string{
		clip.Render(header),
		clip.Render(fields),
		clip.Render(readouts),
		status,
		clip.Render(body),
		clip.Render(m.transport()),
		clip.Render(m.help.View(m.keys)),
	}, "\n")
}

// chart lays out and rasterizes the bar chart for f.
func (m Model) chart(f frame) (render.Scene, *Canvas) {
	sc := render.Layout(m.data, m.step(), render.Viewport{Width: f.chartW, Height: f.bodyH},
		render.Options{LabelThreshold: m.cfg.LabelThreshold})
	canvas := NewCanvas(sc.Width, sc.Height)
	if len(m.data) == 0 {
		canvas.CenterText(sc.Width/2, sc.Height/2, "no data: press r or load a list", m.theme.Muted, false)
	} else {
		drawScene(canvas, sc, m.theme)
	}
	return sc, canvas
}

func (m Model) field(title, content string, focused bool) string {
	style := m.styles.Field
	if focused {
		style = m.styles.Focused
	}
	return style.Render(m.styles.Label.Render(title) + " " + content)
}

func (m Model) transport() string {
	st := m.styles
	play := "▶ Play"
	switch m.cursor.State() {
	case playback.Playing:
		play = "⏸ Pause"
	case playback.Finished:
		play = "↺ Reset"
	}
	pos := "-"
	if m.run != nil {
		pos = fmt.Sprintf("%d/%d", m.cursor.Index()+1, m.cursor.Len())
	}
	frac := (config.MaxSpeed - m.speed) / (config.MaxSpeed - config.MinSpeed)
	return st.Button.Render("⏪ Back") + " " + st.Button.Render(play) + " " + st.Button.Render("Fwd ⏩") +
		"  " + st.Subtle.Render("step "+pos) +
		"   " + st.Label.Render("Fast ") + ProgressBar(frac, 10, m.theme.Accent) + st.Label.Render(" Slow ") +
		st.Value.Render(fmt.Sprintf("%.2fs", m.speed))
}

// sidePanel renders the code listing and, space permitting, the complexity,
// definition and window graph, in exactly height rows.
func (m Model) sidePanel(height int) string {
	st := m.styles
	inner := sideWidth - 4
	avail := max(height-2, 1)
	active := render.LineFor(m.step())

	lines := []string{st.Heading.Render("CODE EXECUTION")}
	rows := min(len(render.Pseudocode), avail-1)
	first := 0
	if rows < len(render.Pseudocode) && active > 0 {
		first = min(max(active-1-rows/2, 0), len(render.Pseudocode)-rows)
	}
	for i := first; i < first+rows; i++ {
		text := fmt.Sprintf("%2d  %-*s", i+1, inner-4, render.Pseudocode[i])
		if i+1 == active {
			lines = append(lines, st.CodeLine.Render(text))
		} else {
			lines = append(lines, st.Code.Render(text))
		}
	}

	sep := Separator(inner, m.theme.Inactive)
	sections := [][]string{
		{sep, st.Heading.Render("COMPLEXITY"), lipgloss.NewStyle().Foreground(m.theme.Success).Render(render.Complexity)},
		{sep, st.Heading.Render("DEFINITION"), lipgloss.NewStyle().Width(inner).Foreground(m.theme.Text).Render(render.Definition)},
	}
	if sizes := render.WindowSizes(m.run, m.cursor.Index()); len(sizes) > 1 {
		graph := asciigraph.Plot(sizes, asciigraph.Height(4), asciigraph.Width(inner-10),
			asciigraph.LowerBound(0), asciigraph.Caption("window"))
		sections = append(sections, []string{sep, st.Graph.Render(graph)})
	}
	for _, sec := range sections {
		rows := strings.Split(strings.Join(sec, "\n"), "\n")
		if len(lines)+len(rows) <= avail {
			lines = append(lines, rows...)
		}
	}

	return st.Panel.Width(sideWidth).Height(avail).Render(strings.Join(lines, "\n"))
}

// drawScene rasterizes a laid out scene onto c.
func drawScene(c *Canvas, sc render.Scene, th Theme) {
	for _, bar := range sc.Bars {
		c.Bar(bar.X, bar.Width, sc.Baseline, bar.Height, barColor(bar.Role, th))
		if bar.ShowLabel {
			emph := bar.Role == render.RoleMid || bar.Role == render.RoleFound
			c.CenterText(bar.X+bar.Width/2, bar.TopRow(sc.Baseline)-1, bar.Label, th.Text, emph)
		}
		c.Text(bar.IndexX, bar.IndexRow, strconv.Itoa(bar.Index), th.IndexText, false)
	}
	for _, p := range sc.Pointers {
		fg := th.Bound
		if p.Kind == render.PointerMid {
			fg = th.Mid
		}
		c.Text(p.X, p.Row, p.Name, fg, true)
	}
}

func barColor(r render.Role, th Theme) lipgloss.Color {
	switch r {
	case render.RoleFound:
		return th.Success
	case render.RoleMid:
		return th.Mid
	case render.RoleInactive:
		return th.Inactive
	default:
		return th.Accent
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
