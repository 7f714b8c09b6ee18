package game

import (
	"strings"

	"github.com/hailam/chessrules/internal/board"
)

// PromotionHandler chooses the piece a pawn becomes on reaching the last
// rank. It is called synchronously and blocks the move until it returns.
type PromotionHandler interface {
	Promote(sq board.Square, c board.Color) board.PieceType
}

// PromotionFunc adapts a function to PromotionHandler.
type PromotionFunc func(sq board.Square, c board.Color) board.PieceType

// Promote calls f.
func (f PromotionFunc) Promote(sq board.Square, c board.Color) board.PieceType {
	return f(sq, c)
}

// AutoQueen always promotes to a queen.
var AutoQueen = PromotionFunc(func(board.Square, board.Color) board.PieceType {
	return board.Queen
})

// ParsePromotionChoice maps a one-letter answer to a piece type.
// q, r, b and n are accepted in either case; k is kept as an alias for the
// knight. Anything else, including an empty answer, falls back to Queen.
func ParsePromotionChoice(s string) board.PieceType {
	s = strings.TrimSpace(s)
	if s == "" {
		return board.Queen
	}
	switch strings.ToLower(s)[0] {
	case 'r':
		return board.Rook
	case 'b':
		return board.Bishop
	case 'n', 'k':
		return board.Knight
	default:
		return board.Queen
	}
}

// promotable reports whether a pawn may become pt.
func promotable(pt board.PieceType) bool {
	switch pt {
	case board.Queen, board.Rook, board.Bishop, board.Knight:
		return true
	}
	return false
}
