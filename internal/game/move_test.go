package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeatsIsThreeCycle(t *testing.T) {
	for _, m := range Moves {
		assert.NotEqual(t, m, m.Beats(), "%s must not beat itself", m)
		assert.Equal(t, m, m.Beats().Beats().Beats(), "three applications of Beats must return to %s", m)
	}

	assert.Equal(t, Rock, Paper.Beats())
	assert.Equal(t, Scissors, Rock.Beats())
	assert.Equal(t, Paper, Scissors.Beats())
}

func TestBeatsPanicsOnInvalidMove(t *testing.T) {
	assert.Panics(t, func() { Move(0).Beats() })
	assert.Panics(t, func() { Move(9).Beats() })
}

func TestResolveOutcomeAllPairs(t *testing.T) {
	for _, a := range Moves {
		for _, b := range Moves {
			got := ResolveOutcome(a, b)
			switch {
			case a == b:
				assert.Equal(t, Tie, got, "%s vs %s", a, b)
			case a.Beats() == b:
				assert.Equal(t, PlayerWin, got, "%s vs %s", a, b)
			default:
				assert.Equal(t, PlayerLoss, got, "%s vs %s", a, b)
			}
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input   string
		want    Move
		wantErr bool
	}{
		{input: "Paper", want: Paper},
		{input: "rock", want: Rock},
		{input: " SCISSORS ", want: Scissors},
		{input: "kertas", want: Paper},
		{input: "Batu", want: Rock},
		{input: "gunting", want: Scissors},
		{input: "p", want: Paper},
		{input: "r", want: Rock},
		{input: "s", want: Scissors},
		{input: "lizard", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMove)
				assert.False(t, got.Valid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoveValid(t *testing.T) {
	for _, m := range Moves {
		assert.True(t, m.Valid())
		assert.NotEmpty(t, m.Shortcut())
	}
	assert.False(t, Move(0).Valid())
	assert.False(t, Move(4).Valid())
	assert.Equal(t, "Move(4)", Move(4).String())
}

func TestCatalogResultStrings(t *testing.T) {
	assert.Equal(t, "Result: Draw", English.Result(Tie))
	assert.Equal(t, "Result: You Win!", English.Result(PlayerWin))
	assert.Equal(t, "Result: You Lose", English.Result(PlayerLoss))

	assert.Equal(t, "Hasil: Seri", Indonesian.Result(Tie))
	assert.Equal(t, "Hasil: Kamu Menang!", Indonesian.Result(PlayerWin))
	assert.Equal(t, "Hasil: Kamu Kalah", Indonesian.Result(PlayerLoss))
}

func TestCatalogFormatting(t *testing.T) {
	result := RoundResult{PlayerMove: Rock, ComputerMove: Scissors, Outcome: PlayerWin}

	assert.Equal(t, "You chose: Rock, Computer chose: Scissors. Result: You Win!", English.FormatRound(result))
	assert.Equal(t, "Kamu memilih: Batu, Komputer memilih: Gunting. Hasil: Kamu Menang!", Indonesian.FormatRound(result))
	assert.Equal(t, "Score - Ana: 2 | Computer: 1", English.FormatScore("Ana", 2, 1))
	assert.Equal(t, "Player: Rock, Computer: Scissors, Result: Result: You Win!",
		English.FormatHistoryEntry(RoundRecord{RoundResult: result, Number: 1}))
}

func TestCatalogFor(t *testing.T) {
	for _, locale := range Locales() {
		c, err := CatalogFor(locale)
		require.NoError(t, err)
		assert.Equal(t, locale, c.Locale)
		for _, m := range Moves {
			assert.NotEmpty(t, c.MoveName(m))
		}
	}

	_, err := CatalogFor("fr")
	assert.Error(t, err)
}
