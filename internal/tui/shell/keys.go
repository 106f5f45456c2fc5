package shell

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	MainDrawer      key.Binding
	SecondaryDrawer key.Binding
	Language        key.Binding
	Theme           key.Binding
	Search          key.Binding
	Close           key.Binding

	Prev    key.Binding
	Next    key.Binding
	Jump    key.Binding
	NextTab key.Binding
	PrevTab key.Binding

	Up     key.Binding
	Down   key.Binding
	Page   key.Binding
	Select key.Binding

	Help key.Binding
	Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		MainDrawer:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		SecondaryDrawer: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "more")),
		Language:        key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "language")),
		Theme:           key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		Search:          key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Close:           key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),

		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev slide")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next slide")),
		Jump:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to slide")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Page:   key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MainDrawer, k.Language, k.Theme, k.Search, k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MainDrawer, k.SecondaryDrawer, k.Language, k.Theme, k.Search, k.Close},
		{k.Prev, k.Next, k.Jump, k.NextTab, k.PrevTab},
		{k.Up, k.Down, k.Page, k.Select},
		{k.Help, k.Quit},
	}
}
