package tui

import (
	"picren/internal/plugin"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Refresh  key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy path"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// actionBinding turns a window action's accelerator into a key binding.
func actionBinding(name, accelerator string) key.Binding {
	desc := name
	if name == plugin.ActionName {
		desc = "rename"
	}
	return key.NewBinding(
		key.WithKeys(accelerator),
		key.WithHelp(accelerator, desc),
	)
}

// helpKeys implements help.KeyMap over the fixed keys plus the registered
// actions.
type helpKeys struct {
	keys    keyMap
	actions []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	short := []key.Binding{h.keys.Up, h.keys.Down}
	short = append(short, h.actions...)
	return append(short, h.keys.Help, h.keys.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.keys.Up, h.keys.Down, h.keys.PageUp, h.keys.PageDown, h.keys.Home, h.keys.End},
		append(append([]key.Binding{}, h.actions...), h.keys.Refresh, h.keys.Copy),
		{h.keys.Help, h.keys.Quit},
	}
}
