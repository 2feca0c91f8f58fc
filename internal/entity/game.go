package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	ModePvP = "pvp"
	ModeBot = "bot"
)

// Game is the live session: the board, whose turn it is and how the game is played.
type Game struct {
	ID      string
	Board   Board
	Turn    Mark
	Status  Status
	Winner  Mark
	Mode    string
	BotMark Mark
}

// ParseMode - validates a game mode name.
func ParseMode(s string) (string, error) {
	switch mode := strings.ToLower(strings.TrimSpace(s)); mode {
	case ModePvP, ModeBot:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, s)
	}
}

// NewGame - creates a game with an empty board and X to move.
// botMark is ignored outside of ModeBot.
func NewGame(id, mode string, botMark Mark) *Game {
	game := &Game{
		ID:   id,
		Mode: mode,
	}

	if mode == ModeBot {
		game.BotMark = botMark
	}

	game.Reset()

	return game
}

// Reset - clears the board and hands the first turn to X.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Turn = X
	that.Status = InProgress
	that.Winner = Empty
}

func (that *Game) UpdateGameState() {
	that.Status = that.Board.Status()

	if that.Status.IsTerminal() {
		that.Winner = that.Status.Winner()
		that.Turn = Empty
	}
}

func (that *Game) MakeTurn(mark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Board.Place(cell, mark)
	if err != nil {
		return err
	}

	that.Board = board
	that.Turn = mark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeBot && that.BotMark.IsPlayer()
}

// IsBotTurn - reports whether the automated player should move now.
func (that *Game) IsBotTurn() bool {
	return that.IsWithBot() && !that.IsFinished() && that.Turn == that.BotMark
}

// HumanMark - the mark played by the person at the keyboard in a bot game.
func (that *Game) HumanMark() Mark {
	if !that.IsWithBot() {
		return Empty
	}
	return that.BotMark.Opponent()
}

// Result - human readable outcome of a finished game.
func (that *Game) Result() string {
	switch that.Status {
	case WonByX, WonByO:
		return fmt.Sprintf("Player %s wins!", that.Winner)
	case Draw:
		return "It's a draw!"
	default:
		return ""
	}
}
