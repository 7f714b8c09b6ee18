package board

// EnPassant remembers the pawn that just advanced two squares.
// The zero value means no record.
type EnPassant struct {
	Square Square // where the double-stepped pawn now stands
	Color  Color  // color of that pawn
}

// NoEnPassant is the empty record.
var NoEnPassant = EnPassant{Square: NoSquare}

// Valid reports whether the record is live.
func (ep EnPassant) Valid() bool {
	return ep.Color != NoColor && ep.Square.IsValid()
}

// Target returns the square a capturing pawn lands on: the square the
// recorded pawn passed over.
func (ep EnPassant) Target() Square {
	if !ep.Valid() {
		return NoSquare
	}
	return Square(int(ep.Square) - ep.Color.PawnDirection())
}

// Captures reports whether a pawn of color mover landing on to takes the
// recorded pawn en passant.
func (ep EnPassant) Captures(mover Color, to Square) bool {
	return ep.Valid() && ep.Color != mover && to == ep.Target()
}

// String returns the target square in algebraic notation, or "-".
func (ep EnPassant) String() string {
	return ep.Target().String()
}
