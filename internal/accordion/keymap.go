package accordion

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the accordion Model.
type KeyMap struct {
	Toggle key.Binding
	Next   key.Binding
	Prev   key.Binding
	First  key.Binding
	Last   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap binds enter and space to toggle, arrows/tab and vim keys
// to focus movement.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle")),
		Next:   key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next")),
		Prev:   key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "prev")),
		First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first")),
		Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Next, k.Prev},
		{k.First, k.Last},
		{k.Help, k.Quit},
	}
}
