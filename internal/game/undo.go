package game

import "github.com/hailam/chessrules/internal/board"

// undoInfo stores what apply changed so unapply can put it back.
type undoInfo struct {
	move       board.Move
	moved      board.Piece
	captured   board.Piece
	capturedOn board.Square
	enPassant  bool
}

// apply moves the piece for m, removing an en passant victim if the move
// lands on the recorded target. Turn, status and the record are untouched.
func (g *Game) apply(m board.Move) undoInfo {
	from, to := m.From(), m.To()
	moved := g.board.PieceAt(from)

	u := undoInfo{
		move:       m,
		moved:      moved,
		capturedOn: to,
	}

	if moved.Type == board.Pawn && g.ep.Captures(moved.Color, to) {
		u.enPassant = true
		u.capturedOn = g.ep.Square
		u.captured = g.board.RemovePiece(g.ep.Square)
		g.board.MovePiece(from, to)
		return u
	}

	u.captured = g.board.MovePiece(from, to)
	return u
}

// unapply restores the squares touched by apply.
func (g *Game) unapply(u undoInfo) {
	g.board.SetPiece(u.move.From(), u.moved)
	g.board.RemovePiece(u.move.To())
	if !u.captured.IsEmpty() {
		g.board.SetPiece(u.capturedOn, u.captured)
	}
}
