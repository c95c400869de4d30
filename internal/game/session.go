package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/rps/internal/sessionid"
)

// SessionOption configures a Session during creation.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	id      string
	clock   quartz.Clock
	catalog *Catalog
	logger  *log.Logger
}

// WithSessionID overrides the generated session identifier
func WithSessionID(id string) SessionOption {
	return func(c *sessionConfig) { c.id = id }
}

// WithClock sets the clock used to stamp round records
func WithClock(clock quartz.Clock) SessionOption {
	return func(c *sessionConfig) { c.clock = clock }
}

// WithCatalog sets the catalog used to render notification text
func WithCatalog(catalog *Catalog) SessionOption {
	return func(c *sessionConfig) { c.catalog = catalog }
}

// WithLogger sets the session logger
func WithLogger(logger *log.Logger) SessionOption {
	return func(c *sessionConfig) { c.logger = logger }
}

// Session owns the scores, history log and notification queue of one game.
// It accepts rounds for as long as it lives and is not safe for concurrent use.
type Session struct {
	id       string
	resolver *Resolver
	clock    quartz.Clock
	catalog  *Catalog
	logger   *log.Logger

	score         Score
	rounds        int
	history       *HistoryLog
	notifications *NotificationQueue
}

// NewSession creates a session with zero scores and empty history.
// The move source is required so that tests can force the computer's moves:
//
//	// Production
//	s := NewSession(RandomMoves(randutil.NewUnseeded()))
//
//	// Testing
//	s := NewSession(ScriptedMoves(Scissors, Rock), WithClock(quartz.NewMock(t)))
func NewSession(source MoveSource, opts ...SessionOption) *Session {
	cfg := &sessionConfig{
		clock:   quartz.NewReal(),
		catalog: English,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.id == "" {
		cfg.id = sessionid.Generate()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	return &Session{
		id:            cfg.id,
		resolver:      NewResolver(source),
		clock:         cfg.clock,
		catalog:       cfg.catalog,
		logger:        cfg.logger.With("session", cfg.id),
		history:       NewHistoryLog(),
		notifications: NewNotificationQueue(),
	}
}

// PlayRound plays one round for the given player move. The round is recorded
// in the history log and its result text is queued before returning. An
// invalid move returns ErrInvalidMove and leaves the session unchanged.
func (s *Session) PlayRound(player Move) (RoundResult, error) {
	result, err := s.resolver.Resolve(player, &s.score)
	if err != nil {
		s.logger.Error("Rejected round", "move", player, "error", err)
		return RoundResult{}, err
	}

	s.rounds++
	s.history.Push(RoundRecord{
		RoundResult: result,
		Number:      s.rounds,
		PlayedAt:    s.clock.Now(),
	})
	s.notifications.Enqueue(s.catalog.Result(result.Outcome))

	s.logger.Debug("Round played",
		"round", s.rounds,
		"player", result.PlayerMove,
		"computer", result.ComputerMove,
		"outcome", result.Outcome,
		"player_score", s.score.Player,
		"computer_score", s.score.Computer)

	return result, nil
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Catalog returns the catalog used for notification text
func (s *Session) Catalog() *Catalog { return s.catalog }

// PlayerScore returns the number of rounds the player has won
func (s *Session) PlayerScore() int64 { return s.score.Player }

// ComputerScore returns the number of rounds the computer has won
func (s *Session) ComputerScore() int64 { return s.score.Computer }

// Score returns both totals
func (s *Session) Score() Score { return s.score }

// Rounds returns the number of rounds played
func (s *Session) Rounds() int { return s.rounds }

// Ties returns the number of tied rounds
func (s *Session) Ties() int64 {
	return int64(s.rounds) - s.score.Player - s.score.Computer
}

// HasHistory reports whether any round has been recorded
func (s *Session) HasHistory() bool { return !s.history.IsEmpty() }

// HistorySnapshot returns every recorded round, most recent first
func (s *Session) HistorySnapshot() []RoundRecord {
	return s.history.Traverse()
}

// Notifications returns the queued result text in arrival order without draining it
func (s *Session) Notifications() []string {
	return s.notifications.Items()
}

// DrainNotifications removes and returns every queued result text, oldest first
func (s *Session) DrainNotifications() []string {
	var out []string
	for {
		item, ok := s.notifications.Dequeue()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}
