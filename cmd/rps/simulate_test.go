package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rps/internal/fileutil"
	"github.com/lox/rps/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRunSimulation(t *testing.T) {
	sim := simulation{Sessions: 8, Rounds: 250, Workers: 3, Seed: 42}

	stats, err := runSimulation(context.Background(), sim, quietLogger())
	require.NoError(t, err)
	require.NoError(t, stats.Validate())

	assert.Equal(t, sim.Sessions*sim.Rounds, stats.Rounds)
	assert.Len(t, stats.SessionNets, sim.Sessions)
	assert.Equal(t, stats.Wins+stats.Losses+stats.Ties, stats.Rounds)
}

func TestRunSimulationIsReproducible(t *testing.T) {
	sim := simulation{Sessions: 5, Rounds: 100, Workers: 5, Seed: 7}

	a, err := runSimulation(context.Background(), sim, quietLogger())
	require.NoError(t, err)

	sim.Workers = 1
	b, err := runSimulation(context.Background(), sim, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, a.Wins, b.Wins)
	assert.Equal(t, a.Losses, b.Losses)
	assert.Equal(t, a.ComputerMoves, b.ComputerMoves)
	assert.Equal(t, a.SessionNets, b.SessionNets, "results are merged in session order")
}

func TestRunSimulationCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runSimulation(ctx, simulation{Sessions: 4, Rounds: 10, Workers: 2, Seed: 1}, quietLogger())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteReport(t *testing.T) {
	sim := simulation{Sessions: 2, Rounds: 50, Workers: 1, Seed: 3}
	stats, err := runSimulation(context.Background(), sim, quietLogger())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, sim, stats))

	out := buf.String()
	for _, want := range []string{"Rounds played", "100", "Player wins", "Computer wins", "Ties", "Paper", "Rock", "Scissors", "Opponent chi-square"} {
		assert.Contains(t, out, want)
	}

	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return writeReport(w, sim, stats)
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
}

func TestRunSimulationFixedPlayer(t *testing.T) {
	sim := simulation{Sessions: 3, Rounds: 200, Workers: 2, Seed: 11, Fixed: game.Rock}

	stats, err := runSimulation(context.Background(), sim, quietLogger())
	require.NoError(t, err)
	require.NoError(t, stats.Validate())

	assert.Equal(t, 600, stats.PlayerMoves[game.Rock])
	assert.Zero(t, stats.PlayerMoves[game.Paper])
	assert.Zero(t, stats.PlayerMoves[game.Scissors])

	// against a fixed move, each outcome maps to exactly one opponent move
	assert.Equal(t, stats.ComputerMoves[game.Scissors], stats.Wins)
	assert.Equal(t, stats.ComputerMoves[game.Paper], stats.Losses)
	assert.Equal(t, stats.ComputerMoves[game.Rock], stats.Ties)
	assert.Equal(t, "always Rock", sim.strategy())
}
