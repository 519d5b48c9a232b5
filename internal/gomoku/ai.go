package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// Outcome is reported by UpdateWins after a stone has been counted.
type Outcome string

const (
	OutcomeContinue    Outcome = "continue"
	OutcomeOpponentWon Outcome = "player win"
	OutcomeAIWon       Outcome = "ai win"
)

// Continue reports whether nobody has completed a line yet.
func (that Outcome) Continue() bool {
	return that == OutcomeContinue
}

func (that Outcome) String() string {
	return string(that)
}

type lineScore struct {
	base  int
	bonus int
}

// lineScores is indexed by the number of stones a color has on a live line.
var lineScores = [WinLength]lineScore{
	1: {base: 200, bonus: 20},
	2: {base: 400, bonus: 20},
	3: {base: 2000, bonus: 100},
	4: {base: 10000, bonus: 10000},
}

// occupancy is the state of one line for one color: either active with a
// stone count, or dead because the other color already sits on it.
type occupancy struct {
	stones int
	dead   bool
}

func (that occupancy) active() (int, bool) {
	return that.stones, !that.dead
}

const (
	blackSlot = 0
	whiteSlot = 1
)

func slotOf(stone PointState) int {
	if stone == WhiteStone {
		return whiteSlot
	}
	return blackSlot
}

// ScoreBoard holds per-cell heuristic scores, 0-based [row][col]. Occupied
// cells score zero.
type ScoreBoard struct {
	Black [][]int
	White [][]int
}

func newScoreBoard(size int) ScoreBoard {
	scores := ScoreBoard{Black: make([][]int, size), White: make([][]int, size)}
	for row := 0; row < size; row++ {
		scores.Black[row] = make([]int, size)
		scores.White[row] = make([]int, size)
	}

	return scores
}

// At returns both scores for the 1-based cell.
func (that ScoreBoard) At(row, col int) (int, int) {
	return that.Black[row-1][col-1], that.White[row-1][col-1]
}

func (that ScoreBoard) forRole(role Player) ([][]int, [][]int) {
	if role == Black {
		return that.Black, that.White
	}
	return that.White, that.Black
}

// AI picks moves by counting how far each color is along every win line.
//
// The AI reads the live grid it was created with, but its line counters are
// only advanced by UpdateWins. Callers must call UpdateWins once after every
// placement on that grid, for both colors, before the next BestPoint.
type AI struct {
	role  Player
	grid  Grid
	index *WinLineIndex

	lines   [][2]occupancy
	counted []bool
}

// NewAI builds the line index for the grid size and creates the AI.
func NewAI(grid Grid, role Player) (*AI, error) {
	return NewAIWithIndex(grid, role, NewWinLineIndex(grid.Size()))
}

// NewAIWithIndex creates an AI playing role on grid. Stones already on the
// grid are counted.
func NewAIWithIndex(grid Grid, role Player, index *WinLineIndex) (*AI, error) {
	if !role.IsStoneColor() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, role)
	}

	if index.Size() != grid.Size() {
		return nil, fmt.Errorf("%w: index for %d, grid of %d", apperror.ErrInvalidSize, index.Size(), grid.Size())
	}

	ai := &AI{
		role:    role,
		grid:    grid,
		index:   index,
		lines:   make([][2]occupancy, index.Count()),
		counted: make([]bool, grid.Size()*grid.Size()),
	}

	for row, cells := range grid {
		for col, cell := range cells {
			if cell != Empty {
				ai.count(row, col, cell)
			}
		}
	}

	return ai, nil
}

func (that *AI) Role() Player {
	return that.role
}

// UpdateWins counts the stone at the 1-based (row, col) on every line through
// it and reports whether that completed a line.
func (that *AI) UpdateWins(row, col int) (Outcome, error) {
	if !that.grid.InBounds(row-1, col-1) {
		return "", fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfRange, row, col)
	}

	stone := that.grid[row-1][col-1]
	if stone == Empty {
		return "", fmt.Errorf("%w: (%d,%d)", apperror.ErrCellEmpty, row, col)
	}

	if that.counted[(row-1)*that.grid.Size()+col-1] {
		return "", fmt.Errorf("%w: (%d,%d)", apperror.ErrStoneCounted, row, col)
	}

	if !that.count(row-1, col-1, stone) {
		return OutcomeContinue, nil
	}

	if stone == that.role.Stone() {
		return OutcomeAIWon, nil
	}

	return OutcomeOpponentWon, nil
}

// count applies the stone at the 0-based cell to every line through it and
// reports whether one of them is now full.
func (that *AI) count(row, col int, stone PointState) bool {
	that.counted[row*that.grid.Size()+col] = true

	own, other := slotOf(stone), 1-slotOf(stone)
	completed := false

	for _, id := range that.index.linesAt(row, col) {
		line := &that.lines[id]

		if !line[own].dead {
			line[own].stones++
			if line[own].stones == WinLength {
				completed = true
			}
		}

		line[other] = occupancy{dead: true}
	}

	return completed
}

// Evaluate scores every empty cell for both colors.
func (that *AI) Evaluate() ScoreBoard {
	size := that.grid.Size()
	scores := newScoreBoard(size)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if that.grid[row][col] != Empty {
				continue
			}

			for _, id := range that.index.linesAt(row, col) {
				scores.Black[row][col] += that.lineValue(that.lines[id][blackSlot], Black)
				scores.White[row][col] += that.lineValue(that.lines[id][whiteSlot], White)
			}
		}
	}

	return scores
}

func (that *AI) lineValue(state occupancy, color Player) int {
	stones, ok := state.active()
	if !ok || stones <= 0 || stones >= WinLength {
		return 0
	}

	score := lineScores[stones]
	if color == that.role {
		return score.base + score.bonus
	}

	return score.base
}

// liveLines counts the lines through the 0-based cell the AI can still fill.
func (that *AI) liveLines(row, col int) int {
	slot := slotOf(that.role.Stone())

	live := 0
	for _, id := range that.index.linesAt(row, col) {
		if !that.lines[id][slot].dead {
			live++
		}
	}

	return live
}

// BestPoint returns the 1-based cell the AI wants to play next.
//
// Cells are scanned row by row. A higher own score always wins; on an equal
// own score the cell where the opponent scores more is taken, and if that
// ties as well the cell on more live lines is taken. BestPoint does not
// change any state.
func (that *AI) BestPoint() (Position, error) {
	own, opponent := that.Evaluate().forRole(that.role)

	bestRow, bestCol, bestLive := -1, -1, 0
	for row, cells := range that.grid {
		for col, cell := range cells {
			if cell != Empty {
				continue
			}

			live := that.liveLines(row, col)
			if bestRow < 0 || better(own, opponent, row, col, bestRow, bestCol, live, bestLive) {
				bestRow, bestCol, bestLive = row, col, live
			}
		}
	}

	if bestRow < 0 {
		return Position{}, apperror.ErrBoardFull
	}

	return Position{Row: bestRow + 1, Col: bestCol + 1}, nil
}

// better reports whether the 0-based (row, col) beats the current best. Only
// a strictly better cell replaces it, so the earlier cell keeps a full tie.
// The live-line step runs before that row-major fallback on purpose: without
// it an empty board would pick (1,1) instead of the center.
func better(own, opponent [][]int, row, col, bestRow, bestCol, live, bestLive int) bool {
	switch {
	case own[row][col] != own[bestRow][bestCol]:
		return own[row][col] > own[bestRow][bestCol]
	case opponent[row][col] != opponent[bestRow][bestCol]:
		return opponent[row][col] > opponent[bestRow][bestCol]
	default:
		return live > bestLive
	}
}
