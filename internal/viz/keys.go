package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start     key.Binding
	Play      key.Binding
	Back      key.Binding
	Forward   key.Binding
	Randomize key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Theme     key.Binding
	Mute      key.Binding
	Next      key.Binding
	Prev      key.Binding
	Blur      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Play:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Back:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "back")),
		Forward:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "forward")),
		Randomize: key.NewBinding(key.WithKeys("r", "g"), key.WithHelp("r", "randomize")),
		Faster:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Mute:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "sound")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Blur:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "chart")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Play, k.Back, k.Forward, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Play, k.Back, k.Forward},
		{k.Randomize, k.Faster, k.Slower},
		{k.Theme, k.Mute, k.Help, k.Quit},
		{k.Next, k.Prev, k.Blur},
	}
}
