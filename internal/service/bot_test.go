package service

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Opens in the center", func(t *testing.T) {
		// Given: an empty 9x9 board and a BLACK bot
		board, err := gomoku.NewBoard(9)
		require.NoError(t, err)

		bot, err := NewBotService(board, gomoku.Black)
		require.NoError(t, err)

		// When: the bot makes a turn
		pos, result, err := bot.MakeTurn(board)

		// Then: it plays the center and the stone is on the board
		require.NoError(t, err)
		assert.Equal(t, gomoku.Position{Row: 5, Col: 5}, pos)
		assert.Equal(t, gomoku.ResultContinue, result)
		assert.Equal(t, gomoku.BlackStone, board.Grid()[4][4])
		assert.Equal(t, gomoku.Black, board.LastRecord().Detail.Player)
	})

	t.Run("Counts its own stone", func(t *testing.T) {
		board, err := gomoku.NewBoard(9)
		require.NoError(t, err)

		bot, err := NewBotService(board, gomoku.White)
		require.NoError(t, err)

		pos, _, err := bot.MakeTurn(board)
		require.NoError(t, err)

		// When: the same stone is observed again
		_, err = bot.Observe(pos)

		// Then: it was already counted by MakeTurn
		require.ErrorIs(t, err, apperror.ErrStoneCounted)
	})

	t.Run("Completes its own five", func(t *testing.T) {
		// Given: the bot (WHITE) holds (2,2)..(2,5)
		board, err := gomoku.NewBoard(9)
		require.NoError(t, err)

		bot, err := NewBotService(board, gomoku.White)
		require.NoError(t, err)

		for col := 2; col <= 5; col++ {
			_, err = board.PutChess(2, col, gomoku.White)
			require.NoError(t, err)
			_, err = bot.Observe(gomoku.Position{Row: 2, Col: col})
			require.NoError(t, err)
		}
		_, err = board.PutChess(2, 1, gomoku.Black)
		require.NoError(t, err)
		_, err = bot.Observe(gomoku.Position{Row: 2, Col: 1})
		require.NoError(t, err)

		// When: the bot makes a turn
		pos, result, err := bot.MakeTurn(board)

		// Then: it wins at (2,6)
		require.NoError(t, err)
		assert.Equal(t, gomoku.Position{Row: 2, Col: 6}, pos)
		assert.Equal(t, gomoku.ResultWin, result)
	})

	t.Run("Full board", func(t *testing.T) {
		board, err := gomoku.NewBoard(5)
		require.NoError(t, err)

		bot, err := NewBotService(board, gomoku.Black)
		require.NoError(t, err)

		player := gomoku.Black
		for row := 1; row <= 5; row++ {
			for col := 1; col <= 5; col++ {
				_, err = board.PutChess(row, col, player)
				require.NoError(t, err)
				_, err = bot.Observe(gomoku.Position{Row: row, Col: col})
				require.NoError(t, err)
				player = player.Opponent()
			}
		}

		_, _, err = bot.MakeTurn(board)

		require.ErrorIs(t, err, apperror.ErrBoardFull)
	})
}

func TestNewBotService(t *testing.T) {
	board, err := gomoku.NewBoard(9)
	require.NoError(t, err)

	_, err = NewBotService(board, gomoku.System)

	require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
}
