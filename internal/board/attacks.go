package board

// IsSquareAttacked reports whether any piece of color by has a candidate move
// landing on sq. Pawn pushes never land on an occupied square, so only
// their diagonal captures count as attacks on an occupied sq.
func IsSquareAttacked(b *Board, sq Square, by Color) bool {
	mustValid(sq)
	for from := A1; from <= H8; from++ {
		p := b.PieceAt(from)
		if p.IsEmpty() || p.Color != by {
			continue
		}
		if attacksFrom(b, from, sq) {
			return true
		}
	}
	return false
}

// attacksFrom reports whether the piece on from reaches target.
func attacksFrom(b *Board, from, target Square) bool {
	if b.PieceAt(from).Type == Pawn {
		return pawnAttacks(b, from, target)
	}
	ml := NewMoveList()
	generatePieceMoves(b, ml, from, NoEnPassant)
	for _, m := range ml.Slice() {
		if m.To() == target {
			return true
		}
	}
	return false
}

// pawnAttacks covers the diagonal squares a pawn threatens, whether or not
// something is standing on them yet.
func pawnAttacks(b *Board, from, target Square) bool {
	us := b.PieceAt(from).Color
	dirs := [2]Direction{NorthWest, NorthEast}
	if us == Black {
		dirs = [2]Direction{SouthWest, SouthEast}
	}
	for _, dir := range dirs {
		if Step(from, dir, 1) == target {
			occ := b.PieceAt(target)
			return occ.IsEmpty() || occ.Color != us
		}
	}
	return false
}

// IsKingAttacked reports whether c's king is attacked by the other color.
// A board without a king of color c is never in check.
func IsKingAttacked(b *Board, c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return IsSquareAttacked(b, ksq, c.Other())
}

// Checkers returns the squares of the pieces of color by attacking sq.
func Checkers(b *Board, sq Square, by Color) []Square {
	var out []Square
	for from := A1; from <= H8; from++ {
		p := b.PieceAt(from)
		if p.IsEmpty() || p.Color != by {
			continue
		}
		if attacksFrom(b, from, sq) {
			out = append(out, from)
		}
	}
	return out
}
