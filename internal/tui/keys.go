package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings for the browse mode of every tab.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Complete  key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	DeleteAll key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Reload    key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Tasks     key.Binding
	Calendar  key.Binding
	Settings  key.Binding
	Help      key.Binding
	Quit      key.Binding

	// Dialogs.
	Submit  key.Binding
	Dismiss key.Binding
	Yes     key.Binding
	No      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Complete:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		DeleteAll: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete all")),
		MoveUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Tasks:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "tasks")),
		Calendar:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "calendar")),
		Settings:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "settings")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		No:      key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Edit, k.Delete, k.NextTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown},
		{k.Toggle, k.Complete, k.Add, k.Edit},
		{k.Delete, k.DeleteAll, k.Reload},
		{k.NextTab, k.PrevTab, k.Tasks, k.Calendar, k.Settings},
		{k.Help, k.Quit},
	}
}

// dialogKeys is the help shown while a text dialog is open.
type dialogKeys struct{ submit, dismiss key.Binding }

func (k dialogKeys) ShortHelp() []key.Binding  { return []key.Binding{k.submit, k.dismiss} }
func (k dialogKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// confirmKeys is the help shown while a confirmation is pending.
type confirmKeys struct{ yes, no key.Binding }

func (k confirmKeys) ShortHelp() []key.Binding  { return []key.Binding{k.yes, k.no} }
func (k confirmKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
