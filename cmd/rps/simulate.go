package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rps/cmd/rps/shared"
	"github.com/lox/rps/internal/fileutil"
	"github.com/lox/rps/internal/game"
	"github.com/lox/rps/internal/randutil"
	"github.com/lox/rps/internal/statistics"
	"github.com/lox/rps/internal/tui"
)

// SimulateCmd plays many sessions with a random player and reports the results
type SimulateCmd struct {
	Sessions int    `help:"Number of independent sessions (default from config)"`
	Rounds   int    `help:"Rounds per session (default from config)"`
	Workers  int    `help:"Parallel workers (default from config)"`
	Seed     int64  `help:"Base RNG seed (0 for random)"`
	Player   string `default:"random" help:"Player strategy: random, or a move to always play (rock, paper, scissors)"`
	Output   string `short:"o" type:"path" help:"Also write the report to this file"`
}

type simulation struct {
	Sessions int
	Rounds   int
	Workers  int
	Seed     int64
	Fixed    game.Move // zero means the player picks at random
}

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	if c.Sessions != 0 {
		cfg.Simulate.Sessions = c.Sessions
	}
	if c.Rounds != 0 {
		cfg.Simulate.Rounds = c.Rounds
	}
	if c.Workers != 0 {
		cfg.Simulate.Workers = c.Workers
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.UI.NoColor {
		tui.DisableColor()
	}

	logger, err := shared.SetupLogger(cfg.UI.LogLevel)
	if err != nil {
		return err
	}

	_, seed := randutil.FromSeed(cfg.Game.Seed)
	sim := simulation{
		Sessions: cfg.Simulate.Sessions,
		Rounds:   cfg.Simulate.Rounds,
		Workers:  cfg.Simulate.Workers,
		Seed:     seed,
	}
	if c.Player != "random" {
		move, err := game.ParseMove(c.Player)
		if err != nil {
			return fmt.Errorf("invalid player strategy: %w", err)
		}
		sim.Fixed = move
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	logger.Info("Starting simulation",
		"sessions", sim.Sessions,
		"rounds", sim.Rounds,
		"workers", sim.Workers,
		"seed", sim.Seed,
		"player", sim.strategy())

	start := time.Now()
	stats, err := runSimulation(ctx, sim, logger)
	if err != nil {
		return err
	}
	logger.Info("Simulation complete", "rounds", stats.Rounds, "elapsed", time.Since(start).Round(time.Millisecond))

	fmt.Println(titleStyle.Render(" ✋ ✊ ✌ Simulation report "))
	fmt.Println()
	if err := writeReport(os.Stdout, sim, stats); err != nil {
		return err
	}

	if c.Output != "" {
		if err := fileutil.WriteAtomic(c.Output, 0o644, func(w io.Writer) error {
			return writeReport(w, sim, stats)
		}); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Report written", "path", c.Output)
	}

	if err := stats.Validate(); err != nil {
		return fmt.Errorf("statistics failed validation: %w", err)
	}
	return nil
}

// runSimulation plays every session on a bounded pool of workers. Each session
// and its tally belong to a single goroutine; tallies are merged after Wait.
func runSimulation(ctx context.Context, sim simulation, logger *log.Logger) (*statistics.Statistics, error) {
	results := make([]statistics.Statistics, sim.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sim.Workers)

	for i := 0; i < sim.Sessions; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			opponent := game.RandomMoves(randutil.New(randutil.Derive(sim.Seed, 2*i)))
			player := sim.playerMoves(i)
			session := game.NewSession(opponent)

			for r := 0; r < sim.Rounds; r++ {
				if _, err := session.PlayRound(player.NextMove()); err != nil {
					return fmt.Errorf("session %d round %d: %w", i, r+1, err)
				}
			}

			results[i].AddSession(session)
			logger.Debug("Session finished",
				"session", session.ID(),
				"player_score", session.PlayerScore(),
				"computer_score", session.ComputerScore(),
				"ties", session.Ties())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for i := range results {
		total.Merge(&results[i])
	}
	return total, nil
}

func (sim simulation) playerMoves(session int) game.MoveSource {
	if sim.Fixed.Valid() {
		return game.ScriptedMoves(sim.Fixed)
	}
	return game.RandomMoves(randutil.New(randutil.Derive(sim.Seed, 2*session+1)))
}

func (sim simulation) strategy() string {
	if sim.Fixed.Valid() {
		return "always " + sim.Fixed.String()
	}
	return "random"
}

// writeReport renders the statistics as plain tables so the same output works
// on a terminal and in a file
func writeReport(w io.Writer, sim simulation, stats *statistics.Statistics) error {
	lo, hi := stats.ConfidenceInterval95()

	summary := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Metric", "Value").
		Row("Sessions", strconv.Itoa(sim.Sessions)).
		Row("Rounds per session", strconv.Itoa(sim.Rounds)).
		Row("Seed", strconv.FormatInt(sim.Seed, 10)).
		Row("Player strategy", sim.strategy()).
		Row("Rounds played", strconv.Itoa(stats.Rounds)).
		Row("Player wins", fmt.Sprintf("%d (%.2f%%)", stats.Wins, pct(stats.Wins, stats.Rounds))).
		Row("Computer wins", fmt.Sprintf("%d (%.2f%%)", stats.Losses, pct(stats.Losses, stats.Rounds))).
		Row("Ties", fmt.Sprintf("%d (%.2f%%)", stats.Ties, pct(stats.Ties, stats.Rounds))).
		Row("Mean net/round", fmt.Sprintf("%+.4f", stats.Mean())).
		Row("95% CI", fmt.Sprintf("[%+.4f, %+.4f]", lo, hi)).
		Row("Median net/session", fmt.Sprintf("%+.1f", stats.Median()))

	moves := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Move", "Player", "Computer")
	for _, m := range game.Moves {
		moves.Row(m.String(), strconv.Itoa(stats.PlayerMoves[m]), strconv.Itoa(stats.ComputerMoves[m]))
	}

	uniform := "yes"
	if !stats.LooksUniform() {
		uniform = "NO"
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s\n\nOpponent chi-square: %.3f (uniform at 1%%: %s)\n",
		summary.Render(), moves.Render(), stats.ChiSquare(), uniform)
	return err
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
