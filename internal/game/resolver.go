package game

import (
	"fmt"
	"math/rand/v2"
)

// MoveSource produces the computer's move for each round
type MoveSource interface {
	NextMove() Move
}

// MoveSourceFunc adapts a plain function to MoveSource
type MoveSourceFunc func() Move

// NextMove calls f
func (f MoveSourceFunc) NextMove() Move { return f() }

// RandomMoves draws uniformly from the three moves using rng
func RandomMoves(rng *rand.Rand) MoveSource {
	if rng == nil {
		panic("rng is required for random moves")
	}
	return MoveSourceFunc(func() Move {
		return Moves[rng.IntN(len(Moves))]
	})
}

// ScriptedMoves replays moves in order, wrapping around at the end.
// It is meant for tests and demos that need a known opponent.
func ScriptedMoves(moves ...Move) MoveSource {
	if len(moves) == 0 {
		panic("at least one scripted move required")
	}
	i := 0
	return MoveSourceFunc(func() Move {
		m := moves[i%len(moves)]
		i++
		return m
	})
}

// Score holds the cumulative totals for one session
type Score struct {
	Player   int64
	Computer int64
}

// Resolver draws the computer's move and settles a round against a Score
type Resolver struct {
	source MoveSource
}

// NewResolver creates a resolver drawing opponent moves from source
func NewResolver(source MoveSource) *Resolver {
	if source == nil {
		panic("move source is required")
	}
	return &Resolver{source: source}
}

// Resolve plays player against a freshly drawn computer move and applies the
// outcome to score: a win adds one to Player, a loss adds one to Computer and
// a tie changes neither. Nothing is mutated when an invalid move is involved.
func (r *Resolver) Resolve(player Move, score *Score) (RoundResult, error) {
	if !player.Valid() {
		return RoundResult{}, fmt.Errorf("%w: player played %s", ErrInvalidMove, player)
	}
	computer := r.source.NextMove()
	if !computer.Valid() {
		return RoundResult{}, fmt.Errorf("%w: move source produced %s", ErrInvalidMove, computer)
	}

	outcome := ResolveOutcome(player, computer)
	switch outcome {
	case PlayerWin:
		score.Player++
	case PlayerLoss:
		score.Computer++
	}

	return RoundResult{
		PlayerMove:   player,
		ComputerMove: computer,
		Outcome:      outcome,
	}, nil
}
