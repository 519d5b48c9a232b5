package gomoku

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()

	board, err := NewBoard(size)
	require.NoError(t, err)

	return board
}

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty board with an INIT record", func(t *testing.T) {
		// When: a default sized board is created
		board := newTestBoard(t, DefaultSize)

		// Then: every cell is empty
		assert.Equal(t, DefaultSize, board.Size())
		for _, cells := range board.Grid() {
			for _, cell := range cells {
				assert.Equal(t, Empty, cell)
			}
		}

		// Then: the history holds only the system INIT record
		history := board.History()
		require.Len(t, history, 1)
		assert.False(t, history[0].Recoverable)
		assert.Equal(t, RecordDetail{
			Player:    System,
			Operation: OperationInit,
			Position:  Position{Row: 9, Col: 9},
		}, history[0].Detail)
		assert.Equal(t, NewGrid(9).String(), history[0].Board)
	})

	t.Run("Rejects even and too small sizes", func(t *testing.T) {
		for _, size := range []int{-1, 0, 3, 4, 6, 10} {
			// When: a board with an invalid size is created
			board, err := NewBoard(size)

			// Then: ErrInvalidSize is returned
			require.ErrorIs(t, err, apperror.ErrInvalidSize, "size %d", size)
			assert.Nil(t, board)
		}
	})

	t.Run("Accepts odd sizes from five", func(t *testing.T) {
		for _, size := range []int{5, 7, 15, 19} {
			board, err := NewBoard(size)

			require.NoError(t, err, "size %d", size)
			assert.Equal(t, size, board.Size())
		}
	})
}

func TestBoard_PutChess(t *testing.T) {
	t.Run("Places a stone and records the move", func(t *testing.T) {
		// Given: an empty board with a fixed clock
		board := newTestBoard(t, 5)
		board.now = func() time.Time { return time.UnixMilli(1700000000000) }

		// When: BLACK plays (2,3)
		result, err := board.PutChess(2, 3, Black)

		// Then: the stone is on the grid and the game continues
		require.NoError(t, err)
		assert.Equal(t, ResultContinue, result)
		assert.Equal(t, BlackStone, board.Grid()[1][2])

		// Then: a recoverable PUT record with the snapshot after the write is appended
		record := board.LastRecord()
		assert.True(t, record.Recoverable)
		assert.Equal(t, int64(1700000000000), record.Timestamp)
		assert.Equal(t, "[[0,0,0,0,0],[0,0,1,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0]]", record.Board)
		assert.Equal(t, RecordDetail{Player: Black, Operation: OperationPut, Position: Position{Row: 2, Col: 3}}, record.Detail)
	})

	t.Run("Five in a row wins", func(t *testing.T) {
		// Given: BLACK holds (1,1)..(1,4) on a 5x5 board
		board := newTestBoard(t, 5)
		for col := 1; col <= 4; col++ {
			result, err := board.PutChess(1, col, Black)
			require.NoError(t, err)
			require.Equal(t, ResultContinue, result)
		}

		// When: BLACK plays (1,5)
		result, err := board.PutChess(1, 5, Black)

		// Then: the move wins
		require.NoError(t, err)
		assert.Equal(t, ResultWin, result)
	})

	t.Run("Out of range", func(t *testing.T) {
		board := newTestBoard(t, 9)

		for _, pos := range []Position{{0, 1}, {1, 0}, {10, 1}, {1, 10}, {-3, -3}} {
			// When: a move outside the grid is made
			result, err := board.PutChess(pos.Row, pos.Col, Black)

			// Then: ErrOutOfRange is returned
			require.ErrorIs(t, err, apperror.ErrOutOfRange, "position %s", pos)
			assert.Empty(t, result)
		}

		// Then: nothing was recorded
		assert.Len(t, board.History(), 1)
	})

	t.Run("Cell already occupied", func(t *testing.T) {
		// Given: WHITE holds (5,5)
		board := newTestBoard(t, 9)
		_, err := board.PutChess(5, 5, White)
		require.NoError(t, err)
		before := board.Grid().Clone()

		// When: BLACK plays (5,5)
		_, err = board.PutChess(5, 5, Black)

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, board.Grid())
		assert.Len(t, board.History(), 2)
	})

	t.Run("Invalid player", func(t *testing.T) {
		board := newTestBoard(t, 9)

		for _, player := range []Player{System, "", "RED"} {
			// When: a non stone color plays
			_, err := board.PutChess(1, 1, player)

			// Then: ErrInvalidPlayer is returned and the cell stays empty
			require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
			assert.Equal(t, Empty, board.Grid()[0][0])
		}

		assert.Len(t, board.History(), 1)
	})

	t.Run("Range is checked before the player", func(t *testing.T) {
		board := newTestBoard(t, 9)

		_, err := board.PutChess(0, 1, System)

		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Placement after a win is still accepted", func(t *testing.T) {
		// Given: BLACK already won on row 1
		board := newTestBoard(t, 5)
		for col := 1; col <= 5; col++ {
			_, err := board.PutChess(1, col, Black)
			require.NoError(t, err)
		}

		// When: WHITE keeps playing
		result, err := board.PutChess(3, 3, White)

		// Then: the board accepts it
		require.NoError(t, err)
		assert.Equal(t, ResultContinue, result)
	})

	t.Run("History grows by one per successful move", func(t *testing.T) {
		board := newTestBoard(t, 7)
		moves := []struct {
			pos    Position
			player Player
			ok     bool
		}{
			{Position{4, 4}, Black, true},
			{Position{4, 4}, White, false},
			{Position{0, 0}, White, false},
			{Position{3, 3}, White, true},
			{Position{3, 4}, System, false},
			{Position{5, 5}, Black, true},
		}

		successes := 0
		for _, move := range moves {
			_, err := board.PutChess(move.pos.Row, move.pos.Col, move.player)
			if move.ok {
				require.NoError(t, err)
				successes++
			} else {
				require.Error(t, err)
			}
		}

		history := board.History()
		require.Len(t, history, 1+successes)
		assert.Equal(t, OperationInit, history[0].Detail.Operation)
		assert.False(t, history[0].Recoverable)
		for _, record := range history[1:] {
			assert.True(t, record.Recoverable)
			assert.Equal(t, OperationPut, record.Detail.Operation)
		}
	})
}

func TestBoard_completesLine(t *testing.T) {
	tests := []struct {
		name  string
		moves []Position
		last  Position
		win   bool
	}{
		{
			name:  "vertical",
			moves: []Position{{1, 3}, {2, 3}, {3, 3}, {5, 3}},
			last:  Position{4, 3},
			win:   true,
		},
		{
			name:  "diagonal",
			moves: []Position{{3, 3}, {4, 4}, {5, 5}, {6, 6}},
			last:  Position{7, 7},
			win:   true,
		},
		{
			name:  "anti-diagonal",
			moves: []Position{{1, 9}, {2, 8}, {4, 6}, {5, 5}},
			last:  Position{3, 7},
			win:   true,
		},
		{
			name:  "six in a row",
			moves: []Position{{5, 1}, {5, 2}, {5, 3}, {5, 5}, {5, 6}},
			last:  Position{5, 4},
			win:   true,
		},
		{
			name:  "four with a gap",
			moves: []Position{{5, 1}, {5, 2}, {5, 3}, {5, 6}},
			last:  Position{5, 4},
			win:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: BLACK stones on a 9x9 board
			board := newTestBoard(t, 9)
			for _, move := range tt.moves {
				_, err := board.PutChess(move.Row, move.Col, Black)
				require.NoError(t, err)
			}

			// When: the last stone is placed
			result, err := board.PutChess(tt.last.Row, tt.last.Col, Black)
			require.NoError(t, err)

			// Then: the win is detected only for five or more in a row
			assert.Equal(t, tt.win, result == ResultWin)
		})
	}

	t.Run("Mixed colors never win", func(t *testing.T) {
		board := newTestBoard(t, 9)
		for col := 1; col <= 4; col++ {
			_, err := board.PutChess(1, col, Black)
			require.NoError(t, err)
		}

		result, err := board.PutChess(1, 5, White)

		require.NoError(t, err)
		assert.Equal(t, ResultContinue, result)
	})
}

func TestMaxRun(t *testing.T) {
	assert.Equal(t, 0, maxRun(nil))
	assert.Equal(t, 0, maxRun([]PointState{Empty, Empty}))
	assert.Equal(t, 2, maxRun([]PointState{BlackStone, BlackStone, Empty, WhiteStone}))
	assert.Equal(t, 1, maxRun([]PointState{BlackStone, Empty, BlackStone, Empty, BlackStone}))
	assert.Equal(t, 3, maxRun([]PointState{WhiteStone, BlackStone, BlackStone, BlackStone, WhiteStone}))
}

func TestGrid_String(t *testing.T) {
	grid := NewGrid(5)
	grid[0][0] = BlackStone
	grid[4][4] = WhiteStone

	assert.Equal(t, "[[1,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,2]]", grid.String())
}

func TestParsePlayer(t *testing.T) {
	player, err := ParsePlayer(" white ")
	require.NoError(t, err)
	assert.Equal(t, White, player)

	_, err = ParsePlayer("system")
	require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
}
