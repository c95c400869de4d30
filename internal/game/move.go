package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned when a value outside the three moves reaches the core.
var ErrInvalidMove = errors.New("invalid move")

// Move represents a player or opponent selection for one round
type Move uint8

const (
	// the zero value is not a move, so an unset Move is rejected
	_ Move = iota
	Paper
	Rock
	Scissors
)

// Moves lists every valid move in display order
var Moves = [...]Move{Paper, Rock, Scissors}

// beats maps each move to the move it defeats
var beats = [...]Move{
	Paper:    Rock,
	Rock:     Scissors,
	Scissors: Paper,
}

// Valid reports whether m is one of Paper, Rock or Scissors
func (m Move) Valid() bool {
	return m >= Paper && m <= Scissors
}

// Beats returns the move that m defeats. It panics on an invalid move.
func (m Move) Beats() Move {
	if !m.Valid() {
		panic(fmt.Sprintf("game: Beats called on %s", m))
	}
	return beats[m]
}

// String returns the canonical English name of the move
func (m Move) String() string {
	switch m {
	case Paper:
		return "Paper"
	case Rock:
		return "Rock"
	case Scissors:
		return "Scissors"
	default:
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
}

// Shortcut returns the single-letter key bound to the move
func (m Move) Shortcut() string {
	switch m {
	case Paper:
		return "p"
	case Rock:
		return "r"
	case Scissors:
		return "s"
	default:
		return ""
	}
}

// ParseMove converts user or config text into a Move. It accepts the English
// names, the Indonesian names and the single-letter shortcuts, ignoring case.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paper", "kertas", "p":
		return Paper, nil
	case "rock", "batu", "r":
		return Rock, nil
	case "scissors", "gunting", "s":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}
