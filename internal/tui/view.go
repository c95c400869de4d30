package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/rps/internal/game"
)

var glyphs = map[game.Move]string{
	game.Paper:    "✋",
	game.Rock:     "✊",
	game.Scissors: "✌",
}

// View renders the current screen
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.phase {
	case phaseName:
		body = m.renderNameEntry()
	case phaseGreeting:
		body = m.renderGreeting()
	case phaseHistory:
		body = m.renderHistory()
	default:
		body = m.renderBoard()
	}

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) renderHeader() string {
	return m.styles.Header.Render(m.catalog.Title)
}

func (m *Model) renderNameEntry() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Prompt.Render(m.catalog.NamePrompt))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render(m.warning))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter: continue • esc: quit"))
	return m.styles.Frame.Render(b.String())
}

func (m *Model) renderGreeting() string {
	greeting := lipgloss.NewStyle().
		Width(60).
		Align(lipgloss.Center).
		Render(fmt.Sprintf(m.catalog.Greeting, m.playerName))

	start := m.styles.Hovered.Render(m.catalog.StartPlaying)

	content := lipgloss.JoinVertical(lipgloss.Center, greeting, "", start)
	return m.styles.Popup.Render(content)
}

func (m *Model) renderBoard() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Prompt.Render(m.catalog.ChooseMove))
	b.WriteString("\n\n")
	b.WriteString(m.renderMoveBar())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Button.Render("[h] " + m.catalog.HistoryButton))
	b.WriteString("\n\n")

	if m.last != nil {
		b.WriteString(m.resultStyle(m.last.Outcome).Render(m.catalog.FormatRound(*m.last)))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Score.Render(
		m.catalog.FormatScore(m.playerName, m.session.PlayerScore(), m.session.ComputerScore())))
	b.WriteString("\n")

	if m.warning != "" {
		b.WriteString(m.styles.Warning.Render(m.warning))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return m.styles.Frame.Render(b.String())
}

// renderMoveBar draws one button per move. The button under the cursor is
// drawn hovered and the last move played is drawn pressed.
func (m *Model) renderMoveBar() string {
	buttons := make([]string, 0, len(game.Moves))
	for i, move := range game.Moves {
		label := fmt.Sprintf("%s\n%s\n[%s]", glyphs[move], m.catalog.MoveName(move), move.Shortcut())

		style := m.styles.Button
		switch {
		case move == m.pressed:
			style = m.styles.Pressed
		case i == m.selected:
			style = m.styles.Hovered
		}
		buttons = append(buttons, style.Width(12).Render(label))
		if i < len(game.Moves)-1 {
			buttons = append(buttons, "  ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m *Model) renderHistory() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(" ")
	b.WriteString(m.styles.Prompt.Render(m.catalog.HistoryTitle))
	b.WriteString("\n\n")
	b.WriteString(m.styles.History.Render(m.history.View()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(historyKeys{m.keys}))
	return m.styles.Popup.Render(b.String())
}

func (m *Model) resultStyle(o game.Outcome) lipgloss.Style {
	switch o {
	case game.PlayerWin:
		return m.styles.Win
	case game.PlayerLoss:
		return m.styles.Lose
	default:
		return m.styles.Draw
	}
}
