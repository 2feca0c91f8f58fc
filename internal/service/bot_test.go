package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

func newTestBot() BotService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewBotService(logger, minimax.NewSearcher(logger))
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Bot takes the winning cell", func(t *testing.T) {
		// Given: a bot game where the bot (O) can complete the middle row
		game := entity.NewGame("g1", entity.ModeBot, entity.O)
		game.Board = entity.Board{
			entity.X, entity.X, entity.Empty,
			entity.O, entity.O, entity.Empty,
			entity.X, entity.Empty, entity.Empty,
		}
		game.Turn = entity.O

		// When: the bot makes its turn
		cell, err := newTestBot().MakeTurn(game)

		// Then: it wins on cell 5
		require.NoError(t, err)
		assert.Equal(t, 5, cell)
		assert.Equal(t, entity.WonByO, game.Status)
		assert.Equal(t, "Player O wins!", game.Result())
	})

	t.Run("Bot opens on cell 0 when playing X", func(t *testing.T) {
		// Given: a fresh game with the bot as X
		game := entity.NewGame("g2", entity.ModeBot, entity.X)

		// When: the bot opens
		cell, err := newTestBot().MakeTurn(game)

		// Then: every opening draws, so the first cell is taken and the turn passes
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
		assert.Equal(t, entity.X, game.Board[0])
		assert.Equal(t, entity.O, game.Turn)
	})

	t.Run("Error when it is not the bot's turn", func(t *testing.T) {
		game := entity.NewGame("g3", entity.ModeBot, entity.O)

		_, err := newTestBot().MakeTurn(game)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, game.Board)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		game := entity.NewGame("g4", entity.ModeBot, entity.O)
		game.Board = entity.Board{entity.X, entity.X, entity.X, entity.O, entity.O}
		game.UpdateGameState()

		_, err := newTestBot().MakeTurn(game)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Error without a bot", func(t *testing.T) {
		game := entity.NewGame("g5", entity.ModePvP, entity.Empty)

		_, err := newTestBot().MakeTurn(game)

		require.ErrorIs(t, err, ErrBotNotFound)
	})

	t.Run("Error on a full board that was never re-evaluated", func(t *testing.T) {
		game := entity.NewGame("g6", entity.ModeBot, entity.O)
		game.Board = entity.Board{
			entity.O, entity.X, entity.O,
			entity.O, entity.X, entity.X,
			entity.X, entity.O, entity.X,
		}
		game.Turn = entity.O

		_, err := newTestBot().MakeTurn(game)

		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestBotService_SuggestTurn(t *testing.T) {
	board := entity.Board{entity.X, entity.X}

	move, err := newTestBot().SuggestTurn(board, entity.O)

	require.NoError(t, err)
	assert.Equal(t, 2, move.Index)
	assert.Equal(t, entity.Board{entity.X, entity.X}, board)
}
