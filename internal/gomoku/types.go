package gomoku

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const (
	DefaultSize = 9
	MinSize     = 5

	// WinLength is the number of consecutive stones that wins the game.
	WinLength = 5
)

// PointState is the content of a single board cell.
type PointState uint8

const (
	Empty PointState = iota
	BlackStone
	WhiteStone
)

func (that PointState) String() string {
	switch that {
	case BlackStone:
		return "BLACK"
	case WhiteStone:
		return "WHITE"
	default:
		return "EMPTY"
	}
}

// Player is the author of a move. System only appears on the INIT record.
type Player string

const (
	Black  Player = "BLACK"
	White  Player = "WHITE"
	System Player = "SYSTEM"
)

// ParsePlayer accepts BLACK or WHITE in any case.
func ParsePlayer(value string) (Player, error) {
	switch player := Player(strings.ToUpper(strings.TrimSpace(value))); player {
	case Black, White:
		return player, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, value)
	}
}

// IsStoneColor reports whether the player can put a stone on the board.
func (that Player) IsStoneColor() bool {
	return that == Black || that == White
}

func (that Player) Stone() PointState {
	switch that {
	case Black:
		return BlackStone
	case White:
		return WhiteStone
	default:
		return Empty
	}
}

func (that Player) Opponent() Player {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return that
	}
}

// Operation is the kind of a history record.
type Operation string

const (
	OperationInit Operation = "INIT"
	OperationPut  Operation = "PUT"
)

// Result is the outcome of a successful placement.
type Result string

const (
	ResultWin      Result = "WIN"
	ResultContinue Result = "CONTINUE"
)

// Position is a 1-based board coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Orientation is one of the four axes a line of stones can follow.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
	Diagonal     // top-left to bottom-right
	AntiDiagonal // top-right to bottom-left
)

var orientations = [...]Orientation{Vertical, Horizontal, Diagonal, AntiDiagonal}

var orientationDeltas = [...][2]int{
	Vertical:     {1, 0},
	Horizontal:   {0, 1},
	Diagonal:     {1, 1},
	AntiDiagonal: {1, -1},
}

// Delta returns the row and column step of a single move along the axis.
func (that Orientation) Delta() (int, int) {
	delta := orientationDeltas[that]
	return delta[0], delta[1]
}

func (that Orientation) String() string {
	switch that {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Diagonal:
		return "diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	default:
		return "unknown"
	}
}
