package tui

import "github.com/charmbracelet/bubbles/key"

// GridKeys defines key bindings for the card grid
type GridKeys struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Detail   key.Binding
	Search   key.Binding
	Sort     key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k GridKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Detail, k.Search, k.Sort, k.Quit, k.Help}
}

func (k GridKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Detail, k.Search, k.Sort},
		{k.Quit, k.Help},
	}
}

var GridKeyMap = GridKeys{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
	Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first")),
	End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),
	Detail:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// FilterKeys defines key bindings while typing a search query
type FilterKeys struct {
	Apply  key.Binding
	Cancel key.Binding
}

func (k FilterKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Cancel}
}

func (k FilterKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Apply, k.Cancel}}
}

var FilterKeyMap = FilterKeys{
	Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
