package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
	SuggestTurn(board entity.Board, mark entity.Mark) (minimax.Move, error)
}

// GameManager owns the live game session and runs the automated player's replies.
type GameManager struct {
	logger     *slog.Logger
	botService botService

	mu   sync.Mutex
	game *entity.Game
}

// NewGameManager - creates a manager with a fresh game. humanMark is only used in bot mode.
func NewGameManager(logger *slog.Logger, botService botService, mode string, humanMark entity.Mark) (*GameManager, error) {
	that := &GameManager{
		logger:     logger.With("component", "game_manager"),
		botService: botService,
	}

	if _, err := that.NewGame(context.Background(), mode, humanMark); err != nil {
		return nil, err
	}

	return that, nil
}

// Game - returns a copy of the current session.
func (that *GameManager) Game() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return *that.game
}

// NewGame - replaces the session. In bot mode the bot takes the mark the human does not play.
func (that *GameManager) NewGame(ctx context.Context, mode string, humanMark entity.Mark) (entity.Game, error) {
	mode, err := entity.ParseMode(mode)
	if err != nil {
		return entity.Game{}, err
	}

	var botMark entity.Mark
	if mode == entity.ModeBot {
		if !humanMark.IsPlayer() {
			return entity.Game{}, fmt.Errorf("%w: human must play X or O", apperror.ErrInvalidMark)
		}
		botMark = humanMark.Opponent()
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.game = entity.NewGame(uuid.NewString(), mode, botMark)

	that.logger.InfoContext(ctx, "game created", "game_id", that.game.ID, "mode", mode, "bot_mark", botMark.String())

	if err = that.openForBot(ctx); err != nil {
		return *that.game, err
	}

	return *that.game, nil
}

// Reset - clears the board and keeps the mode.
func (that *GameManager) Reset(ctx context.Context) (entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.game.Reset()

	that.logger.InfoContext(ctx, "game reset", "game_id", that.game.ID)

	if err := that.openForBot(ctx); err != nil {
		return *that.game, err
	}

	return *that.game, nil
}

// MakeTurn - plays cell for the side to move and lets the bot answer.
// When the game ends the finished game is returned together with apperror.ErrGameFinished.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "MakeTurn", "game_id", that.game.ID)

	if that.game.IsFinished() {
		return *that.game, apperror.ErrGameFinished
	}

	if that.game.IsBotTurn() {
		return *that.game, apperror.ErrNotYourTurn
	}

	mark := that.game.Turn
	if err := that.game.MakeTurn(mark, cell); err != nil {
		return *that.game, fmt.Errorf("failed make turn: %w", err)
	}

	log.DebugContext(ctx, "turn made", "mark", mark.String(), "cell", cell)

	if that.game.IsFinished() {
		return that.finish(ctx)
	}

	if that.game.IsBotTurn() {
		if _, err := that.botService.MakeTurn(that.game); err != nil {
			return *that.game, fmt.Errorf("bot failed to make turn: %w", err)
		}

		if that.game.IsFinished() {
			return that.finish(ctx)
		}
	}

	return *that.game, nil
}

// Hint - the minimax move for the side to move. The session is not changed.
func (that *GameManager) Hint(_ context.Context) (minimax.Move, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game.IsFinished() {
		return minimax.Move{Index: minimax.NoMove}, apperror.ErrGameFinished
	}

	move, err := that.botService.SuggestTurn(that.game.Board, that.game.Turn)
	if err != nil {
		return move, fmt.Errorf("failed to suggest turn: %w", err)
	}

	return move, nil
}

// openForBot - lets the bot play first when it holds X. Caller holds mu.
func (that *GameManager) openForBot(ctx context.Context) error {
	if !that.game.IsBotTurn() {
		return nil
	}

	if _, err := that.botService.MakeTurn(that.game); err != nil {
		that.logger.ErrorContext(ctx, "bot failed to open the game", "game_id", that.game.ID, "error", err)

		return fmt.Errorf("bot failed to make first turn: %w", err)
	}

	return nil
}

func (that *GameManager) finish(ctx context.Context) (entity.Game, error) {
	that.logger.InfoContext(ctx, "game finished", "game_id", that.game.ID, "status", that.game.Status.String())

	return *that.game, apperror.ErrGameFinished
}

// IsGameOver - reports whether err only signals the end of the game.
func IsGameOver(err error) bool {
	return errors.Is(err, apperror.ErrGameFinished)
}
