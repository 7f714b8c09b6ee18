package game

import "github.com/hailam/chessrules/internal/board"

// LegalMoves returns every move the side to move can make without leaving
// its own king attacked. It is empty once the game is over.
func (g *Game) LegalMoves() []board.Move {
	if g.status == GameOver {
		return nil
	}
	return g.filterLegal(board.GenerateAllMoves(&g.board, g.turn, g.ep))
}

// MovesFrom returns the legal moves of the piece on sq. Pieces of the side
// not to move have none.
func (g *Game) MovesFrom(sq board.Square) []board.Move {
	if g.status == GameOver || !sq.IsValid() {
		return nil
	}
	p := g.board.PieceAt(sq)
	if p.IsEmpty() || p.Color != g.turn {
		return nil
	}
	return g.filterLegal(board.GenerateMoves(&g.board, sq, g.ep))
}

// IsLegal reports whether MakeMove would accept m.
func (g *Game) IsLegal(m board.Move) bool {
	for _, lm := range g.MovesFrom(m.From()) {
		if lm == m {
			return true
		}
	}
	return false
}

// HasLegalMoves returns true if the side to move can move at all.
func (g *Game) HasLegalMoves() bool {
	return len(g.LegalMoves()) > 0
}

// IsCapture reports whether m would take a piece, en passant included.
func (g *Game) IsCapture(m board.Move) bool {
	return m.IsCapture(&g.board, g.ep)
}

// filterLegal keeps the candidates that leave the mover's king safe.
func (g *Game) filterLegal(ml *board.MoveList) []board.Move {
	var legal []board.Move
	for _, m := range ml.Slice() {
		u := g.apply(m)
		safe := !board.IsKingAttacked(&g.board, g.turn)
		g.unapply(u)
		if safe {
			legal = append(legal, m)
		}
	}
	return legal
}
