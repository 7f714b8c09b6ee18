package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hailam/chessrules/internal/board"
)

var (
	lightSquare = lipgloss.NewStyle().Background(lipgloss.Color("180"))
	darkSquare  = lipgloss.NewStyle().Background(lipgloss.Color("137"))
	markSquare  = lipgloss.NewStyle().Background(lipgloss.Color("149"))
	whiteInk    = lipgloss.Color("231")
	blackInk    = lipgloss.Color("16")
)

// RenderBoard draws b with rank 8 on top, or rank 1 on top when flipped.
// Squares in marked are highlighted.
func RenderBoard(b *board.Board, flipped bool, marked map[board.Square]bool) string {
	var sb strings.Builder

	files := "    a  b  c  d  e  f  g  h\n"
	if flipped {
		files = "    h  g  f  e  d  c  b  a\n"
	}
	sb.WriteString(files)

	for row := 0; row < 8; row++ {
		rank := 7 - row
		if flipped {
			rank = row
		}
		sb.WriteString(" ")
		sb.WriteByte(byte('1' + rank))
		sb.WriteString(" ")

		for col := 0; col < 8; col++ {
			file := col
			if flipped {
				file = 7 - col
			}
			sq := board.NewSquare(file, rank)
			sb.WriteString(cell(b.PieceAt(sq), sq, marked[sq]))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(files)
	return sb.String()
}

// cell returns a fixed-width 3-char cell.
func cell(p board.Piece, sq board.Square, marked bool) string {
	style := lightSquare
	if (sq.File()+sq.Rank())%2 == 0 {
		style = darkSquare
	}
	if marked {
		style = markSquare
	}

	if p.IsEmpty() {
		return style.Render("   ")
	}

	ink := whiteInk
	if p.Color == board.Black {
		ink = blackInk
	}
	return style.Foreground(ink).Bold(true).Render(" " + strings.ToUpper(p.String()) + " ")
}
