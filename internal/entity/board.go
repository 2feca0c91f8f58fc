package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark is the symbol occupying a board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

const BoardSize = 9

// WinLines - every row, column and diagonal that wins the game.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	case Empty:
		return "-"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(that))
	}
}

// Opponent - returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

func (that Mark) valid() bool {
	return that == Empty || that.IsPlayer()
}

// ParseMark - converts "X", "O" or an empty-cell symbol into a Mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	case "", "-", ".", "_":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

// Board is the 3x3 grid in row-major order.
type Board [BoardSize]Mark

// ParseBoard - reads nine mark characters, e.g. "XX-OO----" or "XX-|OO-|---".
func ParseBoard(s string) (Board, error) {
	var board Board

	i := 0
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '|', '/', ',':
			continue
		}

		if i >= BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells in %q", apperror.ErrInvalidBoard, BoardSize, s)
		}

		mark, err := ParseMark(string(r))
		if err != nil {
			return Board{}, fmt.Errorf("%w: cell %d: %w", apperror.ErrInvalidBoard, i, err)
		}

		board[i] = mark
		i++
	}

	if i != BoardSize {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", apperror.ErrInvalidBoard, i, BoardSize)
	}

	return board, nil
}

func (that Board) String() string {
	var sb strings.Builder
	for _, cell := range that {
		sb.WriteString(cell.String())
	}
	return sb.String()
}

// Validate - checks that every cell holds a known mark.
func (that Board) Validate() error {
	for i, cell := range that {
		if !cell.valid() {
			return fmt.Errorf("%w: %s at cell %d", apperror.ErrInvalidMark, cell, i)
		}
	}
	return nil
}

func (that Board) IsEmpty(cell int) bool {
	return that[cell] == Empty
}

// CheckWin - reports whether mark holds all three cells of any win line.
func (that Board) CheckWin(mark Mark) bool {
	for _, line := range WinLines {
		if that[line[0]] == mark && that[line[1]] == mark && that[line[2]] == mark {
			return true
		}
	}
	return false
}

// CheckDraw - reports whether the board is full. It does not look for a winner, use Status for that.
func (that Board) CheckDraw() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}
	return true
}

// LegalMoves - empty cells in ascending order.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

func (that Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}
	return n
}

// Status - classifies the board. X is checked before O, and both before the draw.
func (that Board) Status() Status {
	switch {
	case that.CheckWin(X):
		return WonByX
	case that.CheckWin(O):
		return WonByO
	case that.CheckDraw():
		return Draw
	default:
		return InProgress
	}
}

// Place - returns a copy of the board with mark set at cell.
func (that Board) Place(cell int, mark Mark) (Board, error) {
	if cell < 0 || cell >= BoardSize {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !mark.IsPlayer() {
		return that, fmt.Errorf("%w: %s", apperror.ErrInvalidMark, mark)
	}

	if that[cell] != Empty {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return that, nil
}
