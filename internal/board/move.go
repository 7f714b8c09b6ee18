package board

import "fmt"

// Move encodes a (from, to) pair in 12 bits:
// bits 0-5:  from square (0-63)
// bits 6-11: to square (0-63)
type Move uint16

// NoMove represents an invalid or null move.
const NoMove Move = 0xFFFF

// NewMove creates a move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// IsCapture returns true if this move captures a piece on b, counting an
// en passant capture recorded in ep.
func (m Move) IsCapture(b *Board, ep EnPassant) bool {
	mover := b.PieceAt(m.From())
	target := b.PieceAt(m.To())
	if !target.IsEmpty() {
		return target.Color != mover.Color
	}
	return mover.Type == Pawn && ep.Captures(mover.Color, m.To())
}

// String returns the move in coordinate notation (e.g., "e2e4").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return m.From().String() + m.To().String()
}

// ParseMove parses "e2e4", "e2-e4" or "e2 e4".
func ParseMove(s string) (Move, error) {
	var fromStr, toStr string
	switch len(s) {
	case 4:
		fromStr, toStr = s[0:2], s[2:4]
	case 5:
		fromStr, toStr = s[0:2], s[3:5]
	default:
		return NoMove, fmt.Errorf("%w: move %q", ErrInvalidSquare, s)
	}

	from, err := ParseSquare(fromStr)
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(toStr)
	if err != nil {
		return NoMove, err
	}
	return NewMove(from, to), nil
}

// MoveList collects generated moves. It starts with room for a typical
// position and grows when a crowded board needs more.
type MoveList struct {
	moves []Move
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{moves: make([]Move, 0, 64)}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves = append(ml.moves, m)
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.moves = ml.moves[:0]
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for _, lm := range ml.moves {
		if lm == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}
