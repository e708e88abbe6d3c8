package screens

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding
	SortName   key.Binding
	SortOrigin key.Binding
	ClearSort  key.Binding
	Reload     key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "top")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "bottom")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "choose")),
		Right:      key.NewBinding(key.WithKeys("right", "l")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		NextFocus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		PrevFocus:  key.NewBinding(key.WithKeys("shift+tab")),
		SortName:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort name")),
		SortOrigin: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort origin")),
		ClearSort:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear sort")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) tableHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageDown, k.SortName, k.SortOrigin, k.ClearSort, k.NextFocus, k.Reload, k.Quit}
}

func (k keyMap) dropdownHelp() []key.Binding {
	return []key.Binding{k.Left, k.Select, k.NextFocus, k.Reload, k.Quit}
}
