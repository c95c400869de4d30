package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/rps/internal/game"
)

// MoveCounts counts how often each move was played, indexed by game.Move
type MoveCounts [4]int

// Total returns the number of moves counted
func (c MoveCounts) Total() int {
	total := 0
	for _, m := range game.Moves {
		total += c[m]
	}
	return total
}

// Statistics aggregates rounds across one or more sessions.
// Net score per round is +1 for a player win, -1 for a loss and 0 for a tie.
type Statistics struct {
	Rounds int
	Wins   int
	Losses int
	Ties   int

	SumNet  float64
	SumNet2 float64 // Sum of squares for variance calculation

	PlayerMoves   MoveCounts
	ComputerMoves MoveCounts

	// Net score per finished session, for median/percentile calculation
	SessionNets []float64
}

// Mean returns the mean net score per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of the per-round net score
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of the per-round net score
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the fraction of rounds won by the player
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// Add incorporates one round
func (s *Statistics) Add(r game.RoundResult) {
	var net float64
	switch r.Outcome {
	case game.PlayerWin:
		s.Wins++
		net = 1
	case game.PlayerLoss:
		s.Losses++
		net = -1
	default:
		s.Ties++
	}

	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net

	if r.PlayerMove.Valid() {
		s.PlayerMoves[r.PlayerMove]++
	}
	if r.ComputerMove.Valid() {
		s.ComputerMoves[r.ComputerMove]++
	}
}

// AddSession incorporates every round of a finished session
func (s *Statistics) AddSession(session *game.Session) {
	for _, r := range session.HistorySnapshot() {
		s.Add(r.RoundResult)
	}
	s.SessionNets = append(s.SessionNets, float64(session.PlayerScore()-session.ComputerScore()))
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Ties += other.Ties
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	for _, m := range game.Moves {
		s.PlayerMoves[m] += other.PlayerMoves[m]
		s.ComputerMoves[m] += other.ComputerMoves[m]
	}
	s.SessionNets = append(s.SessionNets, other.SessionNets...)
}

// ChiSquare returns Pearson's chi-square statistic of the computer's moves
// against a uniform distribution over the three moves (2 degrees of freedom).
func (s *Statistics) ChiSquare() float64 {
	total := s.ComputerMoves.Total()
	if total == 0 {
		return 0
	}
	expected := float64(total) / float64(len(game.Moves))
	var chi float64
	for _, m := range game.Moves {
		d := float64(s.ComputerMoves[m]) - expected
		chi += d * d / expected
	}
	return chi
}

// LooksUniform reports whether the computer's moves pass a chi-square test
// at the 1% level (critical value 9.210 for 2 degrees of freedom).
func (s *Statistics) LooksUniform() bool {
	return s.ChiSquare() < 9.210
}

// Median returns the median net score per session
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the per-session net score at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.SessionNets) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.SessionNets))
	copy(sorted, s.SessionNets)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the tallies agree with each other
func (s *Statistics) Validate() error {
	if s.Wins+s.Losses+s.Ties != s.Rounds {
		return fmt.Errorf("outcome mismatch: wins=%d losses=%d ties=%d rounds=%d",
			s.Wins, s.Losses, s.Ties, s.Rounds)
	}

	if math.Abs(s.SumNet-float64(s.Wins-s.Losses)) > 1e-6 {
		return fmt.Errorf("net score mismatch: sum=%.0f wins-losses=%d", s.SumNet, s.Wins-s.Losses)
	}

	if total := s.PlayerMoves.Total(); total != s.Rounds {
		return fmt.Errorf("player moves total (%d) does not match rounds (%d)", total, s.Rounds)
	}

	if total := s.ComputerMoves.Total(); total != s.Rounds {
		return fmt.Errorf("computer moves total (%d) does not match rounds (%d)", total, s.Rounds)
	}

	return nil
}
