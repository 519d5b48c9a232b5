package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
)

type GamePlayService interface {
	StartMatch(ctx context.Context, human gomoku.Player) (*entity.Match, error)
	MakeTurn(ctx context.Context, matchID string, row, col int) (*entity.Match, error)
	GetMatch(matchID string) (*entity.Match, error)
	CloseMatch(matchID string)
}

type recordRepo interface {
	Append(ctx context.Context, matchID string, records ...gomoku.MoveRecord) error
}

// session is one live match. Its mutex serializes moves, so the board and
// the bot are always touched by one goroutine at a time.
type session struct {
	mu sync.Mutex

	match *entity.Match
	board *gomoku.Board
	bot   BotService

	// published is the number of history records already exported.
	published int
}

type gamePlayService struct {
	logger    *slog.Logger
	boardSize int
	records   recordRepo

	mu       sync.Mutex
	sessions map[string]*session
}

// NewGamePlayService - records may be nil, in which case history is not exported.
func NewGamePlayService(logger *slog.Logger, boardSize int, records recordRepo) GamePlayService {
	return &gamePlayService{
		logger:    logger.With("component", "gameplay"),
		boardSize: boardSize,
		records:   records,
		sessions:  make(map[string]*session),
	}
}

func (that *gamePlayService) StartMatch(ctx context.Context, human gomoku.Player) (*entity.Match, error) {
	if !human.IsStoneColor() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, human)
	}

	matchID, err := pkg.GenerateMatchID()
	if err != nil {
		return nil, fmt.Errorf("error generating match ID: %w", err)
	}

	board, err := gomoku.NewBoard(that.boardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	bot, err := NewBotService(board, human.Opponent())
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	sess := &session{
		match: entity.NewMatch(matchID, that.boardSize, human),
		board: board,
		bot:   bot,
	}

	if !sess.match.IsHumanTurn() {
		if err = that.botTurn(sess); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	that.refresh(sess)
	that.publish(ctx, sess)

	that.mu.Lock()
	that.sessions[matchID] = sess
	that.mu.Unlock()

	that.logger.Info("match started", "matchID", matchID, "human", human, "size", that.boardSize)

	return sess.snapshot(), nil
}

// MakeTurn plays the human move, keeps the bot's line counters in sync and
// lets the bot answer unless the match is over.
func (that *gamePlayService) MakeTurn(ctx context.Context, matchID string, row, col int) (*entity.Match, error) {
	sess, err := that.session(matchID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	log := that.logger.With("method", "MakeTurn", "matchID", matchID)

	if err = sess.match.ConfirmOngoingState(); err != nil {
		return sess.snapshot(), err
	}

	if !sess.match.IsHumanTurn() {
		return sess.snapshot(), apperror.ErrNotYourTurn
	}

	pos := gomoku.Position{Row: row, Col: col}

	result, err := sess.board.PutChess(row, col, sess.match.Human)
	if err != nil {
		return sess.snapshot(), fmt.Errorf("failed to make turn: %w", err)
	}

	outcome, err := sess.bot.Observe(pos)
	if err != nil {
		// the stone is already on the board
		sess.match.LastMove = &pos
		that.refresh(sess)
		return sess.snapshot(), err
	}

	log.Debug("human move", "position", pos, "result", result, "outcome", outcome)

	sess.match.LastMove = &pos

	switch {
	case result == gomoku.ResultWin:
		sess.match.Finish(string(sess.match.Human))
	case sess.board.IsFull():
		sess.match.Finish(entity.PlayerTie)
	default:
		if err = that.botTurn(sess); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	that.refresh(sess)
	that.publish(ctx, sess)

	if sess.match.IsFinished() {
		log.Info("match finished", "winner", sess.match.Winner, "moves", sess.match.Moves)
	}

	return sess.snapshot(), nil
}

func (that *gamePlayService) GetMatch(matchID string) (*entity.Match, error) {
	sess, err := that.session(matchID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.snapshot(), nil
}

// CloseMatch forgets a match. Exported history is kept.
func (that *gamePlayService) CloseMatch(matchID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, matchID)
}

func (that *gamePlayService) session(matchID string) (*session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	sess, ok := that.sessions[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, matchID)
	}

	return sess, nil
}

func (that *gamePlayService) botTurn(sess *session) error {
	pos, result, err := sess.bot.MakeTurn(sess.board)
	if errors.Is(err, apperror.ErrBoardFull) {
		sess.match.Finish(entity.PlayerTie)
		return nil
	}

	if err != nil {
		return err
	}

	sess.match.LastMove = &pos

	switch {
	case result == gomoku.ResultWin:
		sess.match.Finish(string(sess.bot.Role()))
	case sess.board.IsFull():
		sess.match.Finish(entity.PlayerTie)
	default:
		sess.match.Turn = sess.match.Human
	}

	return nil
}

func (that *gamePlayService) refresh(sess *session) {
	sess.match.Board = sess.board.Grid().String()
	sess.match.Moves = len(sess.board.History()) - 1
}

// publish exports the records added since the last successful export. A
// failed export is retried with the next move.
func (that *gamePlayService) publish(ctx context.Context, sess *session) {
	history := sess.board.History()
	if that.records == nil {
		sess.published = len(history)
		return
	}

	pending := history[sess.published:]
	if len(pending) == 0 {
		return
	}

	if err := that.records.Append(ctx, sess.match.ID, pending...); err != nil {
		that.logger.Error("failed to export history", "matchID", sess.match.ID, "error", err)
		return
	}

	sess.published = len(history)
}

func (that *session) snapshot() *entity.Match {
	match := *that.match
	if that.match.LastMove != nil {
		lastMove := *that.match.LastMove
		match.LastMove = &lastMove
	}

	return &match
}
