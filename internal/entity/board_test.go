package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestParseMark(t *testing.T) {
	for input, expected := range map[string]Mark{"x": X, "O": O, ".": Empty, "-": Empty} {
		mark, err := ParseMark(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, mark, input)
	}

	_, err := ParseMark("Z")
	assert.ErrorIs(t, err, apperror.ErrInvalidMark)
}

func TestParseBoard(t *testing.T) {
	t.Run("Compact and separated forms", func(t *testing.T) {
		// When: parsing the same position in two notations
		compact, err := ParseBoard("XX-OO----")
		require.NoError(t, err)

		grid, err := ParseBoard("XX.|OO.|...")
		require.NoError(t, err)

		// Then: both produce the same board
		expected := Board{X, X, Empty, O, O, Empty, Empty, Empty, Empty}
		assert.Equal(t, expected, compact)
		assert.Equal(t, expected, grid)
		assert.Equal(t, "XX-OO----", compact.String())
	})

	t.Run("Wrong length", func(t *testing.T) {
		_, err := ParseBoard("XXO")
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)

		_, err = ParseBoard("XXOXXOXXOX")
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		_, err := ParseBoard("XX-OO---Z")
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBoard_Validate(t *testing.T) {
	require.NoError(t, Board{X, O}.Validate())

	err := Board{X, O, Mark(7)}.Validate()
	assert.ErrorIs(t, err, apperror.ErrInvalidMark)
}

func TestBoard_CheckWin(t *testing.T) {
	t.Run("Every win line counts", func(t *testing.T) {
		for _, line := range WinLines {
			// Given: a board holding only one win line for O
			var board Board
			for _, cell := range line {
				board[cell] = O
			}

			// Then: O wins and X does not
			assert.True(t, board.CheckWin(O), line)
			assert.False(t, board.CheckWin(X), line)
		}
	})

	t.Run("Two in a row is not a win", func(t *testing.T) {
		board := Board{X, X, Empty, O, O, Empty, Empty, Empty, Empty}

		assert.False(t, board.CheckWin(X))
		assert.False(t, board.CheckWin(O))
	})
}

func TestBoard_CheckDraw(t *testing.T) {
	assert.False(t, Board{}.CheckDraw())
	assert.True(t, Board{O, X, O, X, X, O, X, O, X}.CheckDraw())
	// a full board with a winner is still "full"
	assert.True(t, Board{X, X, X, O, O, X, X, O, O}.CheckDraw())
}

func TestBoard_LegalMoves(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Board{}.LegalMoves())
	assert.Equal(t, []int{2, 5, 6, 7, 8}, Board{X, X, Empty, O, O}.LegalMoves())
	assert.Empty(t, Board{O, X, O, X, X, O, X, O, X}.LegalMoves())
}

func TestBoard_Status(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected Status
	}{
		{name: "empty board", board: "---------", expected: InProgress},
		{name: "X column", board: "XO-XO-X--", expected: WonByX},
		{name: "O diagonal", board: "OX-XO-X-O", expected: WonByO},
		{name: "full board draw", board: "OXOOXXXOX", expected: Draw},
		{name: "full board with X row", board: "XXXOOXXOO", expected: WonByX},
		{name: "both win, X checked first", board: "XXXOOO---", expected: WonByX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := ParseBoard(tt.board)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, board.Status())
		})
	}
}

func TestBoard_Place(t *testing.T) {
	t.Run("Returns a copy", func(t *testing.T) {
		// Given: an empty board
		original := Board{}

		// When: placing X in the centre
		placed, err := original.Place(4, X)

		// Then: only the copy changes
		require.NoError(t, err)
		assert.Equal(t, X, placed[4])
		assert.True(t, original.IsEmpty(4))
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		board := Board{X}

		_, err := board.Place(0, O)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		_, err = board.Place(9, O)
		require.ErrorIs(t, err, apperror.ErrInvalidCell)

		_, err = board.Place(1, Empty)
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBoard_Count(t *testing.T) {
	board := Board{X, X, Empty, O, O, Empty, Empty, Empty, X}

	assert.Equal(t, 3, board.Count(X))
	assert.Equal(t, 2, board.Count(O))
	assert.Equal(t, 4, board.Count(Empty))
}
