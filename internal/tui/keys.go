package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the settings screen.
type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Activate      key.Binding
	ToggleProxy   key.Binding
	ToggleBackend key.Binding
	Add           key.Binding
	Remove        key.Binding
	Save          key.Binding
	Quit          key.Binding
	Commit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle/edit"),
		),
		ToggleProxy: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "workers on/off"),
		),
		ToggleBackend: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "server on/off"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add worker"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove worker"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "done"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Add, k.Remove, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Activate},
		{k.ToggleProxy, k.ToggleBackend, k.Add, k.Remove},
		{k.Save, k.Quit},
	}
}

// editingKeys is the help shown while a text field is being edited.
type editingKeys struct{ commit key.Binding }

func (k editingKeys) ShortHelp() []key.Binding { return []key.Binding{k.commit} }
func (k editingKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.commit}} }
