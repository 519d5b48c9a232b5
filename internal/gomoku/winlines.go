package gomoku

// WinLine is one set of WinLength cells that wins when filled by one color.
type WinLine struct {
	Orientation Orientation
	Cells       [WinLength]Position // 1-based
}

// WinLineIndex lists every win line of a board size and, for each cell, the
// lines passing through it. It is immutable once built and can be shared by
// any number of AIs playing on a board of the same size.
type WinLineIndex struct {
	size       int
	lines      []WinLine
	membership [][]int // row*size+col (0-based) -> line indices
}

func NewWinLineIndex(size int) *WinLineIndex {
	index := &WinLineIndex{
		size:       size,
		membership: make([][]int, size*size),
	}

	if size < WinLength {
		return index
	}

	last := size - WinLength
	for row := 0; row < size; row++ {
		for col := 0; col <= last; col++ {
			index.add(Horizontal, row, col)
		}
	}
	for col := 0; col < size; col++ {
		for row := 0; row <= last; row++ {
			index.add(Vertical, row, col)
		}
	}
	for row := 0; row <= last; row++ {
		for col := 0; col <= last; col++ {
			index.add(Diagonal, row, col)
		}
	}
	for row := 0; row <= last; row++ {
		for col := size - 1; col >= WinLength-1; col-- {
			index.add(AntiDiagonal, row, col)
		}
	}

	return index
}

// LineCount returns the number of geometric win lines on a size×size board.
func LineCount(size int) int {
	if size < WinLength {
		return 0
	}

	starts := size - WinLength + 1
	return 2*size*starts + 2*starts*starts
}

// add registers the line starting at the 0-based (row, col).
func (that *WinLineIndex) add(orientation Orientation, row, col int) {
	id := len(that.lines)
	dRow, dCol := orientation.Delta()

	line := WinLine{Orientation: orientation}
	for step := 0; step < WinLength; step++ {
		r, c := row+step*dRow, col+step*dCol
		line.Cells[step] = Position{Row: r + 1, Col: c + 1}
		that.membership[r*that.size+c] = append(that.membership[r*that.size+c], id)
	}

	that.lines = append(that.lines, line)
}

func (that *WinLineIndex) Size() int {
	return that.size
}

func (that *WinLineIndex) Count() int {
	return len(that.lines)
}

func (that *WinLineIndex) Line(id int) WinLine {
	return that.lines[id]
}

// LinesThrough returns the indices of the lines through the 1-based cell.
// The slice is shared and must not be modified.
func (that *WinLineIndex) LinesThrough(row, col int) []int {
	if row < 1 || col < 1 || row > that.size || col > that.size {
		return nil
	}

	return that.membership[(row-1)*that.size+col-1]
}

func (that *WinLineIndex) linesAt(row, col int) []int {
	return that.membership[row*that.size+col]
}
