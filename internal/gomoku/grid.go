package gomoku

import (
	"strconv"
	"strings"
)

// Grid is a square board addressed as grid[row][col], 0-based.
type Grid [][]PointState

func NewGrid(size int) Grid {
	grid := make(Grid, size)
	for row := range grid {
		grid[row] = make([]PointState, size)
	}

	return grid
}

func (that Grid) Size() int {
	return len(that)
}

func (that Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < len(that) && col < len(that)
}

func (that Grid) IsFull() bool {
	for _, cells := range that {
		for _, cell := range cells {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

func (that Grid) Clone() Grid {
	clone := make(Grid, len(that))
	for row, cells := range that {
		clone[row] = append([]PointState(nil), cells...)
	}

	return clone
}

// String renders the snapshot stored in move records, e.g. [[0,1],[2,0]].
func (that Grid) String() string {
	var builder strings.Builder

	builder.WriteByte('[')
	for row, cells := range that {
		if row > 0 {
			builder.WriteByte(',')
		}

		builder.WriteByte('[')
		for col, cell := range cells {
			if col > 0 {
				builder.WriteByte(',')
			}
			builder.WriteString(strconv.Itoa(int(cell)))
		}
		builder.WriteByte(']')
	}
	builder.WriteByte(']')

	return builder.String()
}

// reach counts how many cells past (row, col) along (dRow, dCol) stay on the
// board, capped at WinLength-1.
func (that Grid) reach(row, col, dRow, dCol int) int {
	steps := 0
	for steps < WinLength-1 && that.InBounds(row+(steps+1)*dRow, col+(steps+1)*dCol) {
		steps++
	}

	return steps
}

// lineThrough returns the cells within distance WinLength-1 of (row, col)
// along the orientation, clamped to the board.
func (that Grid) lineThrough(row, col int, orientation Orientation) []PointState {
	dRow, dCol := orientation.Delta()
	back := that.reach(row, col, -dRow, -dCol)
	forward := that.reach(row, col, dRow, dCol)

	cells := make([]PointState, 0, back+forward+1)
	for step := -back; step <= forward; step++ {
		cells = append(cells, that[row+step*dRow][col+step*dCol])
	}

	return cells
}

// maxRun is the longest run of one stone color. Empty cells break runs.
func maxRun(cells []PointState) int {
	best, run := 0, 0
	previous := Empty

	for _, cell := range cells {
		switch {
		case cell == Empty:
			run = 0
		case cell == previous:
			run++
		default:
			run = 1
		}

		previous = cell
		best = max(best, run)
	}

	return best
}
