package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Motion  key.Binding
	Narrow  key.Binding
	Tier    key.Binding
	Play    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Motion:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "reduced motion")),
		Narrow:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "narrow viewport")),
		Tier:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle tier")),
		Play:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Motion, k.Narrow, k.Tier, k.Play, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Motion, k.Narrow, k.Tier},
		{k.Play, k.Restart, k.Help, k.Quit},
	}
}
