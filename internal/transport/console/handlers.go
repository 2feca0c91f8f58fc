package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var errBadArguments = errors.New("bad arguments")

const helpText = `commands:
  move <0-8>          place your mark (a bare number works too)
  hint                show the best move for the side to move
  reset               start the current game over
  mode pvp            two players at one keyboard
  mode bot [X|O]      play against the computer as X (default) or O
  board               show the board
  help                show this text
  quit                leave
`

func (that *Server) handleMove(ctx context.Context, args []string) error {
	log := that.logger.With("method", "handleMove")

	if len(args) != 1 {
		that.printError(fmt.Errorf("%w: usage: move <0-8>", errBadArguments))
		return nil
	}

	cell, err := parseCell(args[0])
	if err != nil {
		that.printError(err)
		return nil
	}

	game, err := that.uGame.MakeTurn(ctx, cell)
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		that.printGame(game)
	case err != nil:
		log.Debug("turn rejected", "cell", cell, "error", err)
		that.printError(err)
	default:
		that.printGame(game)
	}

	return nil
}

func (that *Server) handleHint(ctx context.Context, _ []string) error {
	move, err := that.uGame.Hint(ctx)
	if err != nil {
		that.printError(err)
		return nil
	}

	that.printf("hint: cell %d (%s)\n", move.Index, describeScore(move.Score))

	return nil
}

func (that *Server) handleReset(ctx context.Context, _ []string) error {
	game, err := that.uGame.Reset(ctx)
	if err != nil {
		that.printError(err)
	}

	that.printGame(game)

	return nil
}

func (that *Server) handleMode(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		that.printError(fmt.Errorf("%w: usage: mode <pvp|bot> [X|O]", errBadArguments))
		return nil
	}

	humanMark := entity.X
	if len(args) == 2 {
		mark, err := entity.ParseMark(args[1])
		if err != nil || !mark.IsPlayer() {
			that.printError(fmt.Errorf("%w: %q", apperror.ErrInvalidMark, args[1]))
			return nil
		}
		humanMark = mark
	}

	game, err := that.uGame.NewGame(ctx, args[0], humanMark)
	if err != nil {
		that.printError(err)
		return nil
	}

	that.printGame(game)

	return nil
}

func (that *Server) handleBoard(_ context.Context, _ []string) error {
	that.printGame(that.uGame.Game())
	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.printf("%s", helpText)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	that.printf("bye\n")
	return errQuit
}

func parseCell(s string) (int, error) {
	cell, err := strconv.Atoi(s)
	if err != nil || cell < 0 || cell >= entity.BoardSize {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, s)
	}

	return cell, nil
}

func describeScore(score int) string {
	switch {
	case score > 0:
		return "O wins with perfect play"
	case score < 0:
		return "X wins with perfect play"
	default:
		return "draw with perfect play"
	}
}
