// Package minimax finds the game-theoretically optimal tic-tac-toe move by
// exhaustive search of the game tree.
//
// O is the maximising player and X the minimising one. Scores are taken
// unchanged from terminal positions, so every result is one of ScoreXWins,
// ScoreDraw or ScoreOWins.
package minimax

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	ScoreXWins = -10
	ScoreDraw  = 0
	ScoreOWins = 10

	// NoMove is the index of a Move scored on an already finished board.
	NoMove = -1
)

// Move is a cell to play and the score the game reaches with perfect play after it.
type Move struct {
	Index int
	Score int
}

// IsTerminal reports whether the move only carries the score of a finished board.
func (that Move) IsTerminal() bool {
	return that.Index == NoMove
}

// Evaluate - scores a finished board. terminal is false while the game is still in progress.
func Evaluate(board entity.Board) (int, bool) {
	switch board.Status() {
	case entity.WonByX:
		return ScoreXWins, true
	case entity.WonByO:
		return ScoreOWins, true
	case entity.Draw:
		return ScoreDraw, true
	default:
		return 0, false
	}
}

// Search returns the best move for toMove. On a finished board it returns the
// terminal score with Index set to NoMove; callers must check Status first when
// they need a real move.
//
// Search panics when toMove is not X or O or the board holds an unknown mark.
func Search(board entity.Board, toMove entity.Mark) Move {
	mustBeWellFormed(board, toMove)

	return search(board, toMove, nil)
}

func search(board entity.Board, toMove entity.Mark, nodes *int) Move {
	if nodes != nil {
		*nodes++
	}

	if score, terminal := Evaluate(board); terminal {
		return Move{Index: NoMove, Score: score}
	}

	best := Move{Index: NoMove}
	for cell := range board {
		if !board.IsEmpty(cell) {
			continue
		}

		// board is a copy, the caller's array is never touched
		child := board
		child[cell] = toMove

		candidate := Move{Index: cell, Score: search(child, toMove.Opponent(), nodes).Score}

		if best.Index == NoMove || better(toMove, candidate.Score, best.Score) {
			best = candidate
		}
	}

	return best
}

// better keeps the first best candidate: ties never replace it.
func better(toMove entity.Mark, score, best int) bool {
	if toMove == entity.O {
		return score > best
	}
	return score < best
}

func mustBeWellFormed(board entity.Board, toMove entity.Mark) {
	if !toMove.IsPlayer() {
		panic(fmt.Errorf("minimax: %w: %s to move", apperror.ErrInvalidMark, toMove))
	}

	if err := board.Validate(); err != nil {
		panic(fmt.Errorf("minimax: %w", err))
	}
}
