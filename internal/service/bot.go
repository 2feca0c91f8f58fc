package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
	SuggestTurn(board entity.Board, mark entity.Mark) (minimax.Move, error)
}

type moveSearcher interface {
	BestMove(board entity.Board, toMove entity.Mark) (minimax.Move, error)
}

type botService struct {
	logger   *slog.Logger
	searcher moveSearcher
}

func NewBotService(logger *slog.Logger, searcher moveSearcher) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		searcher: searcher,
	}
}

// MakeTurn - plays the minimax move for the bot's mark and returns the chosen cell.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	if !game.IsWithBot() {
		return minimax.NoMove, ErrBotNotFound
	}

	if game.IsFinished() {
		return minimax.NoMove, apperror.ErrGameFinished
	}

	if len(game.Board.LegalMoves()) == 0 {
		return minimax.NoMove, ErrNoAvailableMoves
	}

	if game.Turn != game.BotMark {
		return minimax.NoMove, apperror.ErrNotYourTurn
	}

	move, err := that.SuggestTurn(game.Board, game.BotMark)
	if err != nil {
		return minimax.NoMove, err
	}

	if err = game.MakeTurn(game.BotMark, move.Index); err != nil {
		return minimax.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Info("bot made turn", "game_id", game.ID, "mark", game.BotMark.String(), "cell", move.Index, "score", move.Score)

	return move.Index, nil
}

// SuggestTurn - best move for mark without touching any game.
func (that *botService) SuggestTurn(board entity.Board, mark entity.Mark) (minimax.Move, error) {
	move, err := that.searcher.BestMove(board, mark)
	if err != nil {
		return move, fmt.Errorf("failed to search best move: %w", err)
	}

	return move, nil
}
