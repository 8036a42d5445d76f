package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the host scenes respond to.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Delete  key.Binding
	Menu    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " ", "z"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "x", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete save"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "tab"),
			key.WithHelp("m", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// mapHelp and listHelp adapt the key map to help.KeyMap for each scene.
type mapHelp struct{ k KeyMap }

func (h mapHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Menu, h.k.Up, h.k.Down, h.k.Quit}
}

func (h mapHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type listHelp struct {
	k          KeyMap
	horizontal bool
}

func (h listHelp) ShortHelp() []key.Binding {
	if h.horizontal {
		return []key.Binding{h.k.Left, h.k.Right, h.k.Confirm, h.k.Cancel}
	}
	return []key.Binding{h.k.Up, h.k.Down, h.k.Confirm, h.k.Cancel}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type slotHelp struct{ k KeyMap }

func (h slotHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Confirm, h.k.Delete, h.k.Cancel}
}

func (h slotHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
