// Package game implements the paper-rock-scissors game state engine.
//
// The main type is Session, which owns the cumulative scores, a HistoryLog
// of every completed round and a NotificationQueue of result text.
//
// # Basic Usage
//
//	s := game.NewSession(game.RandomMoves(randutil.NewUnseeded()))
//	result, err := s.PlayRound(game.Rock)
//	if err != nil {
//	    // only ErrInvalidMove is possible
//	}
//	fmt.Println(s.Catalog().FormatRound(result))
//
// # Deterministic Testing
//
// The computer's move comes from an injected MoveSource. Use ScriptedMoves
// to force specific moves, or RandomMoves with a seeded generator:
//
//	s := game.NewSession(game.ScriptedMoves(game.Scissors))
//	s.PlayRound(game.Rock) // always PlayerWin
//
//	s := game.NewSession(game.RandomMoves(randutil.New(42)))
//
// # Architecture
//
// Session delegates responsibilities to small components:
//   - Resolver: draws the computer's move and updates the Score
//   - HistoryLog: last-in-first-out store of RoundRecord values
//   - NotificationQueue: first-in-first-out store of result text
//   - Catalog: locale specific text for results, moves and screens
//
// Scores are only ever changed by Resolver.Resolve.
package game
