package minimax

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Searcher wraps Search with input checks that return errors instead of panicking.
type Searcher struct {
	logger *slog.Logger
}

func NewSearcher(logger *slog.Logger) *Searcher {
	return &Searcher{
		logger: logger.With("component", "minimax"),
	}
}

// BestMove - returns the move toMove should play on board.
func (that *Searcher) BestMove(board entity.Board, toMove entity.Mark) (Move, error) {
	log := that.logger.With("method", "BestMove")

	if !toMove.IsPlayer() {
		return Move{Index: NoMove}, fmt.Errorf("%w: %s to move", apperror.ErrInvalidMark, toMove)
	}

	if err := board.Validate(); err != nil {
		return Move{Index: NoMove}, fmt.Errorf("invalid board: %w", err)
	}

	if board.Status().IsTerminal() {
		return Move{Index: NoMove}, apperror.ErrGameFinished
	}

	var nodes int
	move := search(board, toMove, &nodes)

	log.Debug("search finished", "board", board.String(), "to_move", toMove.String(),
		"cell", move.Index, "score", move.Score, "nodes", nodes)

	return move, nil
}
