package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit         key.Binding
	Reload       key.Binding
	TabCreate    key.Binding
	TabList      key.Binding
	TabBoard     key.Binding
	NextTab      key.Binding
	Search       key.Binding
	FilterMenu   key.Binding
	ClearFilters key.Binding
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Select       key.Binding
	Back         key.Binding
	Submit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		TabCreate:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "create")),
		TabList:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "tickets")),
		TabBoard:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "board")),
		NextTab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		FilterMenu:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "status filter")),
		ClearFilters: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "move ticket")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Submit:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	}
}
