package apperror

import "errors"

var (
	ErrInvalidSize   = errors.New("wrong size, required an odd number not smaller than 5")
	ErrOutOfRange    = errors.New("position is out of range")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrBoardFull     = errors.New("board is full")
	ErrCellEmpty     = errors.New("cell is empty")
	ErrStoneCounted  = errors.New("stone is already counted")

	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrMatchNotFound = errors.New("match not found")
)
