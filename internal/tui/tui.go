package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/rps/internal/game"
)

type phase int

const (
	phaseName phase = iota
	phaseGreeting
	phasePlaying
	phaseHistory
)

func (p phase) String() string {
	switch p {
	case phaseName:
		return "name"
	case phaseGreeting:
		return "greeting"
	case phasePlaying:
		return "playing"
	case phaseHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Options configures the TUI model
type Options struct {
	PlayerName string // pre-fills the name prompt
	Theme      string
	Logger     *log.Logger
}

// Model is the Bubble Tea model for one game session. It only reads and
// renders session state; the session itself is changed through PlayRound.
type Model struct {
	session *game.Session
	catalog *game.Catalog
	styles  *Styles
	keys    keyMap
	logger  *log.Logger

	// UI components
	nameInput textinput.Model
	history   viewport.Model
	help      help.Model

	// State
	phase      phase
	playerName string
	warning    string
	selected   int       // index into game.Moves under the cursor
	pressed    game.Move // last move played, highlighted in the move bar
	last       *game.RoundResult
	quitting   bool

	// Dimensions
	width  int
	height int
}

// New creates a TUI model bound to session
func New(session *game.Session, opts Options) (*Model, error) {
	if session == nil {
		return nil, errors.New("session is required")
	}
	if opts.Theme == "" {
		opts.Theme = "default"
	}
	styles, err := NewStyles(opts.Theme)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	catalog := session.Catalog()

	ti := textinput.New()
	ti.Placeholder = catalog.NamePrompt
	ti.CharLimit = 40
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.SetValue(opts.PlayerName)
	ti.Focus()

	vp := viewport.New(60, 10)

	return &Model{
		session:   session,
		catalog:   catalog,
		styles:    styles,
		keys:      newKeyMap(catalog),
		logger:    logger.WithPrefix("tui"),
		nameInput: ti,
		history:   vp,
		help:      help.New(),
		phase:     phaseName,
		selected:  1, // Rock sits in the middle
	}, nil
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes each message to the handler for the current screen
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeHistory()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		switch m.phase {
		case phaseName:
			return m.updateName(msg)
		case phaseGreeting:
			return m.updateGreeting(msg)
		case phasePlaying:
			return m.updatePlaying(msg)
		case phaseHistory:
			return m.updateHistory(msg)
		}
	}

	var cmd tea.Cmd
	switch m.phase {
	case phaseName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case phaseHistory:
		m.history, cmd = m.history.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.quit()
	case tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.warning = m.catalog.NameRequired
			return m, nil
		}
		m.playerName = name
		m.warning = ""
		m.nameInput.Blur()
		m.phase = phaseGreeting
		m.logger.Info("Player joined", "name", name, "session", m.session.ID())
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) updateGreeting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeySpace, tea.KeyEsc:
		m.phase = phasePlaying
	}
	return m, nil
}

func (m *Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if move, ok := m.keys.moveFor(msg); ok {
		return m.play(move)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.History):
		m.openHistory()
	case key.Matches(msg, m.keys.Left):
		m.selected = (m.selected + len(game.Moves) - 1) % len(game.Moves)
	case key.Matches(msg, m.keys.Right):
		m.selected = (m.selected + 1) % len(game.Moves)
	case key.Matches(msg, m.keys.Press):
		return m.play(game.Moves[m.selected])
	}
	return m, nil
}

func (m *Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Close) {
		m.phase = phasePlaying
		return m, nil
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m *Model) play(move game.Move) (tea.Model, tea.Cmd) {
	result, err := m.session.PlayRound(move)
	if err != nil {
		m.logger.Error("Failed to play round", "move", move, "error", err)
		m.warning = err.Error()
		return m, nil
	}

	m.last = &result
	m.pressed = move
	m.warning = ""
	for i, mv := range game.Moves {
		if mv == move {
			m.selected = i
		}
	}
	return m, nil
}

func (m *Model) openHistory() {
	m.phase = phaseHistory
	m.history.SetContent(m.historyContent())
	m.history.GotoTop()
}

func (m *Model) historyContent() string {
	if !m.session.HasHistory() {
		return m.catalog.HistoryEmpty
	}
	records := m.session.HistorySnapshot()
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("%4d. %s", r.Number, m.catalog.FormatHistoryEntry(r)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) resizeHistory() {
	w := m.width - 10
	if w < 20 {
		w = 20
	}
	h := m.height - 12
	if h < 3 {
		h = 3
	}
	m.history.Width = w
	m.history.Height = h
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("Session finished",
		"session", m.session.ID(),
		"rounds", m.session.Rounds(),
		"player_score", m.session.PlayerScore(),
		"computer_score", m.session.ComputerScore())
	return m, tea.Quit
}

// PlayerName returns the name entered on the first screen
func (m *Model) PlayerName() string {
	return m.playerName
}

// Run starts the interactive program and blocks until the player quits or ctx is cancelled
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
