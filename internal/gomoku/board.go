package gomoku

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// MoveRecord is one entry of the append-only board history.
type MoveRecord struct {
	Recoverable bool         `json:"recoverable"`
	Timestamp   int64        `json:"timestamp"`
	Board       string       `json:"board"`
	Detail      RecordDetail `json:"detail"`
}

type RecordDetail struct {
	Player    Player    `json:"player"`
	Operation Operation `json:"operation"`
	Position  Position  `json:"position"`
}

// Board owns the grid and the move history. It is not safe for concurrent use.
type Board struct {
	grid    Grid
	history []MoveRecord

	now func() time.Time
}

// NewBoard creates an empty board. The size must be odd and at least MinSize.
func NewBoard(size int) (*Board, error) {
	if size%2 == 0 || size < MinSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, size)
	}

	board := &Board{
		grid: NewGrid(size),
		now:  time.Now,
	}

	board.pushRecord(System, OperationInit, Position{Row: size, Col: size}, false)

	return board, nil
}

func (that *Board) Size() int {
	return that.grid.Size()
}

// Grid returns the live grid. Callers must treat it as read-only.
func (that *Board) Grid() Grid {
	return that.grid
}

// History returns a copy of every record, INIT first.
func (that *Board) History() []MoveRecord {
	return append([]MoveRecord(nil), that.history...)
}

// LastRecord returns the most recent record.
func (that *Board) LastRecord() MoveRecord {
	return that.history[len(that.history)-1]
}

func (that *Board) IsFull() bool {
	return that.grid.IsFull()
}

// PutChess places a stone for player at the 1-based (row, col). A failed
// validation leaves the board untouched. Placement is not blocked after a
// win; stopping the game is up to the caller.
func (that *Board) PutChess(row, col int, player Player) (Result, error) {
	if err := that.validateMove(row-1, col-1, player); err != nil {
		return "", err
	}

	that.grid[row-1][col-1] = player.Stone()
	that.pushRecord(player, OperationPut, Position{Row: row, Col: col}, true)

	if that.completesLine(row-1, col-1) {
		return ResultWin, nil
	}

	return ResultContinue, nil
}

// validateMove - checks the 0-based target cell and the player.
func (that *Board) validateMove(row, col int, player Player) error {
	if !that.grid.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfRange, row+1, col+1)
	}

	if that.grid[row][col] != Empty {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrCellOccupied, row+1, col+1)
	}

	if !player.IsStoneColor() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, player)
	}

	return nil
}

// completesLine - checks if the stone at the 0-based cell is part of a run of
// WinLength or more in any orientation.
func (that *Board) completesLine(row, col int) bool {
	for _, orientation := range orientations {
		if maxRun(that.grid.lineThrough(row, col, orientation)) >= WinLength {
			return true
		}
	}

	return false
}

func (that *Board) pushRecord(player Player, operation Operation, position Position, recoverable bool) {
	that.history = append(that.history, MoveRecord{
		Recoverable: recoverable,
		Timestamp:   that.now().UnixMilli(),
		Board:       that.grid.String(),
		Detail: RecordDetail{
			Player:    player,
			Operation: operation,
			Position:  position,
		},
	})
}
