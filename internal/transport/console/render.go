package console

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	colorX    = "9"  // bright red
	colorO    = "12" // bright blue
	colorHint = "8"
)

// printGame - draws the board and a status line.
func (that *Server) printGame(game entity.Game) {
	that.printf("%s", that.renderBoard(game.Board))

	switch {
	case game.IsFinished():
		that.printf("%s\n", that.out.String(game.Result()).Bold())
		that.printf("type \"reset\" to play again\n")
	case game.IsWithBot():
		that.printf("your turn (%s)\n", that.styledMark(game.HumanMark()))
	default:
		that.printf("player %s to move\n", that.styledMark(game.Turn))
	}
}

// renderBoard - 3x3 grid, free cells show their index.
func (that *Server) renderBoard(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("|")
			}

			cell := row*3 + col
			sb.WriteString(" ")
			if board.IsEmpty(cell) {
				sb.WriteString(that.out.String(strconv.Itoa(cell)).Foreground(that.out.Color(colorHint)).String())
			} else {
				sb.WriteString(that.styledMark(board[cell]))
			}
			sb.WriteString(" ")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *Server) styledMark(mark entity.Mark) string {
	var style termenv.Style

	switch mark {
	case entity.X:
		style = that.out.String(mark.String()).Foreground(that.out.Color(colorX)).Bold()
	case entity.O:
		style = that.out.String(mark.String()).Foreground(that.out.Color(colorO)).Bold()
	default:
		return mark.String()
	}

	return style.String()
}
