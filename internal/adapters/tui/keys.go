package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown by the help footer.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Click    key.Binding
	Zoom     key.Binding
	ZoomOut  key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Expand:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "expand")),
		Collapse: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "collapse")),
		Click:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select / move here")),
		Zoom:     key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom")),
		ZoomOut:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "zoom out")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy assignments")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Zoom, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand, k.Collapse},
		{k.Click, k.Zoom, k.ZoomOut},
		{k.Copy, k.Help, k.Quit},
	}
}
