package entity

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatch(t *testing.T) {
	// When: a match is created for a WHITE human
	match := NewMatch("123", 9, gomoku.White)

	// Then: the AI plays BLACK, which moves first
	expectedMatch := &Match{
		ID:     "123",
		Size:   9,
		Human:  gomoku.White,
		AI:     gomoku.Black,
		Turn:   gomoku.Black,
		Status: StatusOngoing,
	}

	require.Equal(t, expectedMatch, match)
	assert.False(t, match.IsHumanTurn())
}

func TestMatch_Finish(t *testing.T) {
	t.Run("Finishes with a winner", func(t *testing.T) {
		// Given: an ongoing match
		match := NewMatch("123", 9, gomoku.Black)

		// When: the match is finished
		match.Finish(string(gomoku.Black))

		// Then: the match is over and nobody has the turn
		assert.True(t, match.IsFinished())
		assert.False(t, match.IsOngoing())
		assert.Equal(t, "BLACK", match.Winner)
		assert.Empty(t, match.Turn)
	})

	t.Run("Finishes with a tie", func(t *testing.T) {
		match := NewMatch("123", 5, gomoku.Black)

		match.Finish(PlayerTie)

		assert.True(t, match.IsFinished())
		assert.Equal(t, PlayerTie, match.Winner)
	})
}

func TestMatch_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when match is ongoing", func(t *testing.T) {
		match := &Match{Status: StatusOngoing}

		assert.NoError(t, match.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when match is finished", func(t *testing.T) {
		match := &Match{Status: StatusFinished}

		assert.ErrorIs(t, match.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown match status", func(t *testing.T) {
		// Given: a match with unknown status
		match := &Match{Status: "unknown"}

		// When: checking if the match is active
		err := match.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, ErrUnknownMatchStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}
