package board

import "fmt"

// Color represents the color of a piece or player.
// NoColor marks an unoccupied square.
type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

// Other returns the opposite color. NoColor has no opposite.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PawnDirection returns the square delta of a single pawn step for c.
func (c Color) PawnDirection() int {
	if c == Black {
		return -8
	}
	return 8
}

// PieceType represents the kind of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the placement character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	switch pt {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return ' '
	}
}

// IsSlider reports whether the piece walks along lines until blocked.
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// Piece is the content of one square: a kind and a color.
// The zero value is an empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	return Piece{Type: pt, Color: c}
}

// IsEmpty returns true for an unoccupied square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Valid reports whether the pair is consistent: a kind without a color, or a
// color without a kind, never describes a real square.
func (p Piece) Valid() bool {
	if p.Type > King || p.Color > Black {
		return false
	}
	return (p.Type == NoPieceType) == (p.Color == NoColor)
}

// String returns the placement character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	c := p.Type.Char()
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// GoString helps test diffs read like a board.
func (p Piece) GoString() string {
	if p.IsEmpty() {
		return "board.NoPiece"
	}
	return fmt.Sprintf("board.Piece{%s %s}", p.Color, p.Type)
}

// PieceFromChar converts a placement character to a Piece.
// The second result is false for anything outside pnbrqk / PNBRQK.
func PieceFromChar(c byte) (Piece, bool) {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}

	var pt PieceType
	switch c {
	case 'P':
		pt = Pawn
	case 'N':
		pt = Knight
	case 'B':
		pt = Bishop
	case 'R':
		pt = Rook
	case 'Q':
		pt = Queen
	case 'K':
		pt = King
	default:
		return NoPiece, false
	}
	return NewPiece(pt, color), true
}
