package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding. Ctrl chords work from either focus;
// single letters only act while the list is focused.
type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Remove key.Binding
	Clear  key.Binding
	Dark   key.Binding
	Focus  key.Binding
	Quit   key.Binding

	Submit     key.Binding
	Leave      key.Binding
	ListToggle key.Binding
	ListRemove key.Binding
	ListClear  key.Binding
	ListDark   key.Binding
	Edit       key.Binding
	Insert     key.Binding
	Help       key.Binding
	ListQuit   key.Binding

	Yes   key.Binding
	No    key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add task")),
		Toggle: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "mark done")),
		Remove: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "remove")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear all")),
		Dark:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "dark mode")),
		Focus:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch focus")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Leave:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "to list")),
		ListToggle: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space/x", "mark done")),
		ListRemove: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		ListClear:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		ListDark:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark mode")),
		Edit:       key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("e/enter", "edit")),
		Insert:     key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "new task")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		ListQuit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),

		Yes:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:    key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Left:  key.NewBinding(key.WithKeys("left", "h", "tab", "shift+tab"), key.WithHelp("←", "prev")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	}
}

func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.Toggle, k.Remove, k.Clear, k.Dark, k.Quit}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Insert, k.ListToggle, k.Edit, k.ListRemove, k.ListClear, k.ListDark, k.Help, k.ListQuit}
}
