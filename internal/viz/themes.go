package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the visualizer
type Theme struct {
	Name      string
	Panel     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color // default bars, focused controls
	Inactive  lipgloss.Color // bars outside the window
	Mid       lipgloss.Color // midpoint bar and M pointer
	Bound     lipgloss.Color // L and H pointers
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	CodeLine  lipgloss.Color // background of the active pseudocode line
	CodeText  lipgloss.Color
	IndexText lipgloss.Color
}

// Available themes
var (
	ThemeEditor = Theme{
		Name:      "vscode",
		Panel:     lipgloss.Color("#252526"),
		Text:      lipgloss.Color("#d4d4d4"),
		Muted:     lipgloss.Color("#888888"),
		Accent:    lipgloss.Color("#007acc"),
		Inactive:  lipgloss.Color("#3c3c3c"),
		Mid:       lipgloss.Color("#dcdcaa"),
		Bound:     lipgloss.Color("#4fc1ff"),
		Success:   lipgloss.Color("#4ec9b0"),
		Warning:   lipgloss.Color("#ce9178"),
		Error:     lipgloss.Color("#f44747"),
		CodeLine:  lipgloss.Color("#264f78"),
		CodeText:  lipgloss.Color("#ffffff"),
		IndexText: lipgloss.Color("#666666"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Panel:     lipgloss.Color("#1a001a"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Accent:    lipgloss.Color("#ff00ff"), // Magenta
		Inactive:  lipgloss.Color("#333333"),
		Mid:       lipgloss.Color("#ffff00"), // Yellow
		Bound:     lipgloss.Color("#00ffff"), // Cyan
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
		CodeLine:  lipgloss.Color("#550055"),
		CodeText:  lipgloss.Color("#ffffff"),
		IndexText: lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Panel:     lipgloss.Color("#001100"),
		Text:      lipgloss.Color("#00ff00"), // Green phosphor
		Muted:     lipgloss.Color("#005500"),
		Accent:    lipgloss.Color("#00cc00"),
		Inactive:  lipgloss.Color("#003300"),
		Mid:       lipgloss.Color("#ffff00"),
		Bound:     lipgloss.Color("#88ff88"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
		CodeLine:  lipgloss.Color("#004400"),
		CodeText:  lipgloss.Color("#ccffcc"),
		IndexText: lipgloss.Color("#007700"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Panel:     lipgloss.Color("#001a33"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Accent:    lipgloss.Color("#0077be"), // Ocean blue
		Inactive:  lipgloss.Color("#0a2a44"),
		Mid:       lipgloss.Color("#ffd700"),
		Bound:     lipgloss.Color("#00a8cc"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
		CodeLine:  lipgloss.Color("#003366"),
		CodeText:  lipgloss.Color("#ffffff"),
		IndexText: lipgloss.Color("#4488aa"),
	}

	// All available themes
	Themes = []Theme{
		ThemeEditor,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeEditor
}

// NextTheme returns the theme after name, wrapping around
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
