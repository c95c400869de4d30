package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(n int, player, computer Move) RoundRecord {
	return RoundRecord{
		RoundResult: RoundResult{
			PlayerMove:   player,
			ComputerMove: computer,
			Outcome:      ResolveOutcome(player, computer),
		},
		Number: n,
	}
}

func TestHistoryLog(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		h := NewHistoryLog()
		assert.True(t, h.IsEmpty())
		assert.Equal(t, 0, h.Len())
		assert.Empty(t, h.Traverse())

		_, ok := h.Pop()
		assert.False(t, ok)
		assert.True(t, h.IsEmpty(), "pop on empty log must leave it empty")

		_, ok = h.Peek()
		assert.False(t, ok)
	})

	t.Run("traverse is most recent first", func(t *testing.T) {
		h := NewHistoryLog()
		pushed := []RoundRecord{
			record(1, Rock, Scissors),
			record(2, Paper, Scissors),
			record(3, Scissors, Scissors),
			record(4, Rock, Paper),
		}
		for _, r := range pushed {
			h.Push(r)
		}

		got := h.Traverse()
		require.Len(t, got, len(pushed))
		assert.Equal(t, pushed[len(pushed)-1], got[0])
		for i := range pushed {
			assert.Equal(t, pushed[len(pushed)-1-i], got[i])
		}
		assert.Equal(t, len(pushed), h.Len(), "traverse must not mutate")
	})

	t.Run("traverse returns a copy", func(t *testing.T) {
		h := NewHistoryLog()
		h.Push(record(1, Rock, Rock))

		snapshot := h.Traverse()
		snapshot[0].Number = 99

		top, ok := h.Peek()
		require.True(t, ok)
		assert.Equal(t, 1, top.Number)
	})

	t.Run("pop returns in reverse push order", func(t *testing.T) {
		h := NewHistoryLog()
		for i := 1; i <= 3; i++ {
			h.Push(record(i, Rock, Paper))
		}

		for want := 3; want >= 1; want-- {
			r, ok := h.Pop()
			require.True(t, ok)
			assert.Equal(t, want, r.Number)
		}
		assert.True(t, h.IsEmpty())

		_, ok := h.Pop()
		assert.False(t, ok)
	})
}
