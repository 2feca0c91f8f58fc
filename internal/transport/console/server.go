package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

var errQuit = errors.New("quit")

type uGame interface {
	Game() entity.Game
	NewGame(ctx context.Context, mode string, humanMark entity.Mark) (entity.Game, error)
	Reset(ctx context.Context) (entity.Game, error)
	MakeTurn(ctx context.Context, cell int) (entity.Game, error)
	Hint(ctx context.Context) (minimax.Move, error)
}

type handler func(ctx context.Context, args []string) error

// Server reads commands line by line and prints the game after each of them.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	out *termenv.Output

	handlers map[string]handler
}

// New - creates a console server writing to w. Colours are used only when color is set
// and w is a terminal that supports them.
func New(logger *slog.Logger, uGame uGame, w io.Writer, color bool) *Server {
	var out *termenv.Output
	if color {
		out = termenv.NewOutput(w)
	} else {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}

	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		out:    out,

		handlers: make(map[string]handler),
	}

	server.handlers["move"] = server.handleMove
	server.handlers["hint"] = server.handleHint
	server.handlers["reset"] = server.handleReset
	server.handlers["mode"] = server.handleMode
	server.handlers["board"] = server.handleBoard
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - processes commands from r until quit, end of input or ctx is done.
func (that *Server) Start(ctx context.Context, r io.Reader) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	that.printf("Tic-tac-toe. Type \"help\" for commands.\n")
	that.printGame(that.uGame.Game())

	for {
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}

			if err := that.process(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

func (that *Server) process(ctx context.Context, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	action, args := fields[0], fields[1:]

	// a bare cell number is a move
	if _, err := strconv.Atoi(action); err == nil {
		action, args = "move", fields
	}

	h, ok := that.handlers[action]
	if !ok {
		that.printError(fmt.Errorf("unknown command %q, type \"help\"", action))
		return nil
	}

	return h(ctx, args)
}

func (that *Server) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func (that *Server) printError(err error) {
	that.printf("%s %v\n", that.out.String("error:").Foreground(that.out.Color("1")), err)
}
