package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

// RunApp - runs the console game until the player quits, input ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	humanMark, err := entity.ParseMark(conf.Game.HumanMark)
	if err != nil {
		return fmt.Errorf("invalid human mark in config: %w", err)
	}

	searcher := minimax.NewSearcher(logger)
	botService := service.NewBotService(logger, searcher)

	gameManager, err := usecase.NewGameManager(logger, botService, conf.Game.Mode, humanMark)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	log.Info("Starting console", "mode", conf.Game.Mode, "human_mark", humanMark.String())

	consoleServer := console.New(logger, gameManager, out, conf.Console.UseColor())
	if err = consoleServer.Start(ctx, in); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}
