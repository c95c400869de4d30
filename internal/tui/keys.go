package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/rps/internal/game"
)

// keyMap holds the bindings for the playing screen
type keyMap struct {
	Paper    key.Binding
	Rock     key.Binding
	Scissors key.Binding
	Left     key.Binding
	Right    key.Binding
	Press    key.Binding
	History  key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func newKeyMap(c *game.Catalog) keyMap {
	return keyMap{
		Paper: key.NewBinding(
			key.WithKeys("p", "k", "1"),
			key.WithHelp("p/1", c.MoveName(game.Paper)),
		),
		Rock: key.NewBinding(
			key.WithKeys("r", "b", "2"),
			key.WithHelp("r/2", c.MoveName(game.Rock)),
		),
		Scissors: key.NewBinding(
			key.WithKeys("s", "g", "3"),
			key.WithHelp("s/3", c.MoveName(game.Scissors)),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←/→", "select"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "tab"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", c.HistoryButton),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "h", "q", "enter"),
			key.WithHelp("esc", c.CloseHistory),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// moveFor returns the move bound to a shortcut key, if any
func (k keyMap) moveFor(msg tea.KeyMsg) (game.Move, bool) {
	switch {
	case key.Matches(msg, k.Paper):
		return game.Paper, true
	case key.Matches(msg, k.Rock):
		return game.Rock, true
	case key.Matches(msg, k.Scissors):
		return game.Scissors, true
	}
	return 0, false
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Paper, k.Rock, k.Scissors, k.History, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Paper, k.Rock, k.Scissors},
		{k.Left, k.Press},
		{k.History, k.Quit},
	}
}

// historyKeys is the help shown while the history panel is open
type historyKeys struct {
	keyMap
}

func (k historyKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		k.Close,
	}
}

func (k historyKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
