package board

import (
	"fmt"
	"strings"
)

// Board is the flat 64-square store. The zero value is an empty board.
// It owns no rules; move generation and attack tests take a *Board.
type Board struct {
	squares [64]Piece
}

// NewBoard creates the starting position.
func NewBoard() *Board {
	b, err := ParsePlacement(StartPlacement)
	if err != nil {
		panic(err)
	}
	return b
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	mustValid(sq)
	return b.squares[sq]
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq).IsEmpty()
}

// SetPiece places p on sq, replacing whatever was there.
// It panics if p pairs a kind with the wrong kind of color.
func (b *Board) SetPiece(sq Square, p Piece) {
	mustValid(sq)
	if !p.Valid() {
		panic(fmt.Sprintf("board: invalid piece %#v on %s", p, sq))
	}
	b.squares[sq] = p
}

// RemovePiece clears sq and returns what was on it.
func (b *Board) RemovePiece(sq Square) Piece {
	p := b.PieceAt(sq)
	b.squares[sq] = NoPiece
	return p
}

// MovePiece relocates the piece on from to to and returns whatever was
// captured on to. The source square is left empty.
func (b *Board) MovePiece(from, to Square) Piece {
	p := b.RemovePiece(from)
	captured := b.RemovePiece(to)
	b.SetPiece(to, p)
	return captured
}

// KingSquare returns the square of c's king, or NoSquare if it has none.
func (b *Board) KingSquare(c Color) Square {
	king := NewPiece(King, c)
	for sq := A1; sq <= H8; sq++ {
		if b.squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Count returns the number of pieces of color c on the board.
func (b *Board) Count(c Color) int {
	n := 0
	for _, p := range b.squares {
		if !p.IsEmpty() && p.Color == c {
			n++
		}
	}
	return n
}

// Clear resets the board to empty.
func (b *Board) Clear() {
	*b = Board{}
}

// Validate checks the invariants a loaded position must satisfy.
func (b *Board) Validate() error {
	for sq, p := range b.squares {
		if !p.Valid() {
			return fmt.Errorf("square %s holds inconsistent piece %#v", Square(sq), p)
		}
	}
	for _, c := range []Color{White, Black} {
		kings := 0
		for _, p := range b.squares {
			if p == NewPiece(King, c) {
				kings++
			}
		}
		if kings > 1 {
			return fmt.Errorf("%s has %d kings", c, kings)
		}
	}
	return nil
}

// String returns a visual representation of the board, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p.IsEmpty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
