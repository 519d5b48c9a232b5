package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

var ErrUnknownMatchStatus = errors.New("unknown match status")

// Match is the externally visible state of a human versus AI game.
type Match struct {
	ID       string           `json:"id"`
	Size     int              `json:"size"`
	Human    gomoku.Player    `json:"human"`
	AI       gomoku.Player    `json:"ai"`
	Turn     gomoku.Player    `json:"turn,omitempty"`
	Status   string           `json:"status"`
	Winner   string           `json:"winner,omitempty"`
	Board    string           `json:"board"`
	LastMove *gomoku.Position `json:"last_move,omitempty"`
	Moves    int              `json:"moves"`
}

func NewMatch(id string, size int, human gomoku.Player) *Match {
	return &Match{
		ID:     id,
		Size:   size,
		Human:  human,
		AI:     human.Opponent(),
		Turn:   gomoku.Black,
		Status: StatusOngoing,
	}
}

// Finish ends the match. The winner is a stone color or PlayerTie.
func (that *Match) Finish(winner string) {
	that.Winner = winner
	that.Status = StatusFinished
	that.Turn = ""
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Match) IsHumanTurn() bool {
	return that.IsOngoing() && that.Turn == that.Human
}

func (that *Match) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMatchStatus, that.Status)
	}
}
