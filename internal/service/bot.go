package service

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

// BotService plays the AI side of one board.
type BotService interface {
	// Observe counts a stone that was just put on the board.
	Observe(pos gomoku.Position) (gomoku.Outcome, error)
	// MakeTurn picks, plays and counts the AI's move.
	MakeTurn(board *gomoku.Board) (gomoku.Position, gomoku.Result, error)
	Role() gomoku.Player
}

type botService struct {
	ai *gomoku.AI
}

func NewBotService(board *gomoku.Board, role gomoku.Player) (BotService, error) {
	ai, err := gomoku.NewAI(board.Grid(), role)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai: %w", err)
	}

	return &botService{ai: ai}, nil
}

func (that *botService) Role() gomoku.Player {
	return that.ai.Role()
}

func (that *botService) Observe(pos gomoku.Position) (gomoku.Outcome, error) {
	outcome, err := that.ai.UpdateWins(pos.Row, pos.Col)
	if err != nil {
		return "", fmt.Errorf("failed to update wins: %w", err)
	}

	return outcome, nil
}

func (that *botService) MakeTurn(board *gomoku.Board) (gomoku.Position, gomoku.Result, error) {
	pos, err := that.ai.BestPoint()
	if err != nil {
		return gomoku.Position{}, "", fmt.Errorf("failed to pick a point: %w", err)
	}

	result, err := board.PutChess(pos.Row, pos.Col, that.ai.Role())
	if err != nil {
		return gomoku.Position{}, "", fmt.Errorf("bot failed to make turn: %w", err)
	}

	if _, err = that.Observe(pos); err != nil {
		return gomoku.Position{}, "", err
	}

	return pos, result, nil
}
