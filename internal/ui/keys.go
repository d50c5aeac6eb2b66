package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the browser's key bindings
type keyMap struct {
	up        key.Binding
	down      key.Binding
	home      key.Binding
	end       key.Binding
	open      key.Binding
	prevTopic key.Binding
	nextTopic key.Binding
	topicN    key.Binding
	sidebar   key.Binding
	focus     key.Binding
	nextCode  key.Binding
	prevCode  key.Binding
	copy      key.Binding
	search    key.Binding
	cancel    key.Binding
	quit      key.Binding
}

var keys = keyMap{
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	end: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),
	open: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open"),
	),
	prevTopic: key.NewBinding(
		key.WithKeys("left", "["),
		key.WithHelp("←/→", "topic"),
	),
	nextTopic: key.NewBinding(
		key.WithKeys("right", "]"),
		key.WithHelp("]", "next topic"),
	),
	topicN: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "topic"),
	),
	sidebar: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "sidebar"),
	),
	focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "focus"),
	),
	nextCode: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n/p", "code"),
	),
	prevCode: key.NewBinding(
		key.WithKeys("p"),
	),
	copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.prevTopic, k.focus, k.sidebar, k.nextCode, k.copy, k.search, k.quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.home, k.end, k.open},
		{k.prevTopic, k.nextTopic, k.topicN, k.sidebar, k.focus},
		{k.nextCode, k.copy, k.search, k.quit},
	}
}

// searchKeys is the help shown while the search input is open
type searchKeys struct{}

func (searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{keys.up, keys.down, keys.open, keys.cancel}
}

func (searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{searchKeys{}.ShortHelp()}
}
