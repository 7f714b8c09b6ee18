package board

// Candidate moves follow piece geometry only. Whether a candidate leaves the
// mover's own king attacked is decided by the caller after applying it.

// GenerateMoves returns the candidate moves of the piece on sq.
// An empty square yields an empty list. ep is consulted by pawns only.
func GenerateMoves(b *Board, sq Square, ep EnPassant) *MoveList {
	ml := NewMoveList()
	generatePieceMoves(b, ml, sq, ep)
	return ml
}

// GenerateAllMoves returns the candidate moves of every piece of color us.
func GenerateAllMoves(b *Board, us Color, ep EnPassant) *MoveList {
	ml := NewMoveList()
	for sq := A1; sq <= H8; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.Color != us {
			continue
		}
		generatePieceMoves(b, ml, sq, ep)
	}
	return ml
}

func generatePieceMoves(b *Board, ml *MoveList, sq Square, ep EnPassant) {
	switch b.PieceAt(sq).Type {
	case Bishop, Rook, Queen:
		generateSlidingMoves(b, ml, sq)
	case Knight:
		generateKnightMoves(b, ml, sq)
	case King:
		generateKingMoves(b, ml, sq)
	case Pawn:
		generatePawnMoves(b, ml, sq, ep)
	}
}

// SlidingMoves returns the candidate moves of the bishop, rook or queen on sq.
func SlidingMoves(b *Board, sq Square) *MoveList {
	ml := NewMoveList()
	generateSlidingMoves(b, ml, sq)
	return ml
}

// KnightMoves returns the candidate moves of the knight on sq.
func KnightMoves(b *Board, sq Square) *MoveList {
	ml := NewMoveList()
	generateKnightMoves(b, ml, sq)
	return ml
}

// KingMoves returns the candidate moves of the king on sq.
func KingMoves(b *Board, sq Square) *MoveList {
	ml := NewMoveList()
	generateKingMoves(b, ml, sq)
	return ml
}

// PawnMoves returns the candidate moves of the pawn on sq.
func PawnMoves(b *Board, sq Square, ep EnPassant) *MoveList {
	ml := NewMoveList()
	generatePawnMoves(b, ml, sq, ep)
	return ml
}

// slidingDirections returns the [start, end) range of directions a piece walks.
// Orthogonals come first in the Direction order, diagonals last.
func slidingDirections(pt PieceType) (Direction, Direction) {
	switch pt {
	case Bishop:
		return NorthWest, SouthWest + 1
	case Rook:
		return North, East + 1
	default:
		return North, SouthWest + 1
	}
}

func generateSlidingMoves(b *Board, ml *MoveList, from Square) {
	piece := b.PieceAt(from)
	start, end := slidingDirections(piece.Type)

	for dir := start; dir < end; dir++ {
		for n := 1; n <= EdgeDistance(from, dir); n++ {
			to := Step(from, dir, n)
			target := b.PieceAt(to)

			if target.IsEmpty() {
				ml.Add(NewMove(from, to))
				continue
			}
			if target.Color != piece.Color {
				ml.Add(NewMove(from, to))
			}
			break
		}
	}
}

func generateKnightMoves(b *Board, ml *MoveList, from Square) {
	piece := b.PieceAt(from)

	for _, delta := range KnightOffsets {
		t := int(from) + delta
		if t < 0 || t > 63 {
			continue
		}
		to := Square(t)
		// A jump never moves more than two files; anything more wrapped around.
		if abs(to.File()-from.File()) > 2 {
			continue
		}
		if target := b.PieceAt(to); !target.IsEmpty() && target.Color == piece.Color {
			continue
		}
		ml.Add(NewMove(from, to))
	}
}

func generateKingMoves(b *Board, ml *MoveList, from Square) {
	piece := b.PieceAt(from)

	for dir := North; dir <= SouthWest; dir++ {
		to := Step(from, dir, 1)
		if to == NoSquare {
			continue
		}
		if target := b.PieceAt(to); !target.IsEmpty() && target.Color == piece.Color {
			continue
		}
		ml.Add(NewMove(from, to))
	}
}

func generatePawnMoves(b *Board, ml *MoveList, from Square, ep EnPassant) {
	us := b.PieceAt(from).Color
	them := us.Other()

	forward, captureDirs := North, [2]Direction{NorthWest, NorthEast}
	if us == Black {
		forward, captureDirs = South, [2]Direction{SouthWest, SouthEast}
	}

	// Single and double push
	if one := Step(from, forward, 1); one != NoSquare && b.IsEmpty(one) {
		ml.Add(NewMove(from, one))

		if from.RelativeRank(us) == 1 {
			if two := Step(from, forward, 2); b.IsEmpty(two) {
				ml.Add(NewMove(from, two))
			}
		}
	}

	// Diagonal captures
	for _, dir := range captureDirs {
		to := Step(from, dir, 1)
		if to == NoSquare {
			continue
		}
		if target := b.PieceAt(to); !target.IsEmpty() && target.Color == them {
			ml.Add(NewMove(from, to))
		}
	}

	// En passant: the recorded pawn must stand beside us on the same rank.
	if ep.Valid() && ep.Color == them &&
		ep.Square.Rank() == from.Rank() && abs(ep.Square.File()-from.File()) == 1 {
		ml.Add(NewMove(from, ep.Target()))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
