package game

import "fmt"

// Outcome is the result of one round from the player's point of view
type Outcome uint8

const (
	Tie Outcome = iota
	PlayerWin
	PlayerLoss
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Tie:
		return "Tie"
	case PlayerWin:
		return "PlayerWin"
	case PlayerLoss:
		return "PlayerLoss"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// ResolveOutcome compares two valid moves. Equal moves tie, otherwise the
// player wins exactly when their move beats the computer's.
func ResolveOutcome(player, computer Move) Outcome {
	switch {
	case player == computer:
		return Tie
	case player.Beats() == computer:
		return PlayerWin
	default:
		return PlayerLoss
	}
}
