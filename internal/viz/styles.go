package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/bsviz/internal/render"
)

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Field    lipgloss.Style
	Focused  lipgloss.Style
	Panel    lipgloss.Style
	Heading  lipgloss.Style
	Code     lipgloss.Style
	CodeLine lipgloss.Style
	Graph    lipgloss.Style
	Button   lipgloss.Style
	tones    map[render.Tone]lipgloss.Style
}

func NewStyles(t Theme) Styles {
	base := lipgloss.NewStyle().Foreground(t.Text)
	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Inactive).
		Padding(0, 1)
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Subtle:   lipgloss.NewStyle().Foreground(t.Muted),
		Label:    lipgloss.NewStyle().Foreground(t.Muted).Bold(true),
		Value:    lipgloss.NewStyle().Foreground(t.Bound).Bold(true),
		Field:    field,
		Focused:  field.BorderForeground(t.Accent),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Inactive).Padding(0, 1),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(t.Muted),
		Code:     lipgloss.NewStyle().Foreground(t.Muted),
		CodeLine: lipgloss.NewStyle().Foreground(t.CodeText).Background(t.CodeLine).Bold(true),
		Graph:    lipgloss.NewStyle().Foreground(t.Bound),
		Button:   lipgloss.NewStyle().Foreground(t.Text).Background(t.Inactive).Padding(0, 1),
		tones: map[render.Tone]lipgloss.Style{
			render.ToneNormal:    base,
			render.ToneHighlight: lipgloss.NewStyle().Foreground(t.Mid).Bold(true),
			render.ToneSuccess:   lipgloss.NewStyle().Foreground(t.Success).Bold(true),
			render.ToneWarning:   lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
			render.ToneError:     lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		},
	}
}

// Tone returns the status line style for a tone.
func (s Styles) Tone(t render.Tone) lipgloss.Style {
	if st, ok := s.tones[t]; ok {
		return st
	}
	return s.tones[render.ToneNormal]
}

// ProgressBar renders a filled/empty bar for a fraction in [0, 1].
func ProgressBar(percent float64, width int, fg lipgloss.Color) string {
	filled := int(percent*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(fg).Render(bar)
}

// Separator draws a decorated horizontal rule.
func Separator(width int, fg lipgloss.Color) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(fg).Render(left + " ◆ " + right)
}
