// Package game owns a single chess game: the board, whose turn it is, the
// check status and the en passant record, and the protocol for making moves.
package game

import (
	"fmt"

	"github.com/hailam/chessrules/internal/board"
)

// Status is the state of the game.
type Status int

const (
	InProgress Status = iota
	Check             // side to move is in check
	GameOver          // terminal
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Check:
		return "Check"
	case GameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome describes an accepted move.
type Outcome struct {
	Move       board.Move
	Piece      board.Piece     // the piece that moved, before any promotion
	Captured   board.Piece     // NoPiece if nothing was taken
	CapturedOn board.Square    // differs from Move.To() for en passant
	EnPassant  bool            // the capture was en passant
	Promoted   board.PieceType // NoPieceType unless the pawn promoted
	Status     Status          // status after the move, from the new side to move's view
}

// IsCapture returns true if the move took a piece.
func (o Outcome) IsCapture() bool {
	return !o.Captured.IsEmpty()
}

// Game is the turn and check state machine. It is not safe for concurrent
// use; every call completes before the next may start.
type Game struct {
	board    board.Board
	turn     board.Color
	status   Status
	ep       board.EnPassant
	promoter PromotionHandler
}

// New creates a game at the starting position with White to move.
func New() *Game {
	return &Game{
		board:    *board.NewBoard(),
		turn:     board.White,
		status:   InProgress,
		ep:       board.NoEnPassant,
		promoter: AutoQueen,
	}
}

// NewFromPlacement creates a game from a piece placement string with turn
// to move. The status starts as Check if turn's king is already attacked.
func NewFromPlacement(placement string, turn board.Color) (*Game, error) {
	if turn != board.White && turn != board.Black {
		return nil, fmt.Errorf("invalid side to move: %s", turn)
	}
	b, err := board.ParsePlacement(placement)
	if err != nil {
		return nil, err
	}

	g := &Game{
		board:    *b,
		turn:     turn,
		ep:       board.NoEnPassant,
		promoter: AutoQueen,
	}
	g.status = g.checkStatus()
	return g, nil
}

// SetPromotionHandler sets who chooses promotion pieces. nil restores AutoQueen.
func (g *Game) SetPromotionHandler(h PromotionHandler) {
	if h == nil {
		h = AutoQueen
	}
	g.promoter = h
}

// Board returns a copy of the current board.
func (g *Game) Board() board.Board {
	return g.board
}

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq board.Square) board.Piece {
	return g.board.PieceAt(sq)
}

// Turn returns the side to move.
func (g *Game) Turn() board.Color {
	return g.turn
}

// Status returns the game status.
func (g *Game) Status() Status {
	return g.status
}

// EnPassant returns the live en passant record, if any.
func (g *Game) EnPassant() board.EnPassant {
	return g.ep
}

// Clone returns an independent copy of the game sharing the promotion handler.
func (g *Game) Clone() *Game {
	ng := *g
	return &ng
}

// End marks the game as finished. Further moves are rejected.
func (g *Game) End() {
	g.status = GameOver
}

// Play parses two squares ("e2e4", "e2 e4" or "e2-e4") and makes the move.
func (g *Game) Play(s string) (Outcome, error) {
	m, err := board.ParseMove(s)
	if err != nil {
		return Outcome{}, err
	}
	return g.MakeMove(m.From(), m.To())
}

// MakeMove validates and applies the move from -> to for the side to move.
// A nil error means the move was accepted; the Outcome carries the new status.
// Rejected moves leave the game untouched.
func (g *Game) MakeMove(from, to board.Square) (Outcome, error) {
	if g.status == GameOver {
		return Outcome{}, ErrGameOver
	}
	if !from.IsValid() || !to.IsValid() {
		return Outcome{}, fmt.Errorf("%w: %s", board.ErrInvalidSquare, board.NewMove(from, to))
	}

	piece := g.board.PieceAt(from)
	if piece.IsEmpty() {
		return Outcome{}, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if piece.Color != g.turn {
		return Outcome{}, fmt.Errorf("%w: %s piece on %s, %s to move", ErrWrongTurn, piece.Color, from, g.turn)
	}

	m := board.NewMove(from, to)
	if !board.GenerateMoves(&g.board, from, g.ep).Contains(m) {
		return Outcome{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	undo := g.apply(m)
	if board.IsKingAttacked(&g.board, g.turn) {
		g.unapply(undo)
		if g.status == Check {
			return Outcome{}, fmt.Errorf("%w: %s does not resolve check", ErrKingInCheck, m)
		}
		return Outcome{}, fmt.Errorf("%w: %s", ErrKingInCheck, m)
	}

	out := Outcome{
		Move:       m,
		Piece:      piece,
		Captured:   undo.captured,
		CapturedOn: undo.capturedOn,
		EnPassant:  undo.enPassant,
	}

	if piece.Type == board.Pawn {
		if to.RelativeRank(g.turn) == 7 {
			out.Promoted = g.promote(to)
		}
		if abs(int(to)-int(from)) == 16 {
			g.ep = board.EnPassant{Square: to, Color: g.turn}
		}
	}

	g.changeTurn()
	g.status = g.checkStatus()
	out.Status = g.status
	return out, nil
}

// promote asks the handler for a piece and places it on sq.
// Answers that are not a queen, rook, bishop or knight become a queen.
func (g *Game) promote(sq board.Square) board.PieceType {
	pt := g.promoter.Promote(sq, g.turn)
	if !promotable(pt) {
		pt = board.Queen
	}
	g.board.SetPiece(sq, board.NewPiece(pt, g.turn))
	return pt
}

// changeTurn hands the move to the other side. A record left by the side
// that is not moving now has had its one reply and goes stale.
func (g *Game) changeTurn() {
	if g.ep.Valid() && g.ep.Color != g.turn {
		g.ep = board.NoEnPassant
	}
	g.turn = g.turn.Other()
}

// checkStatus returns Check if the side to move is attacked, else InProgress.
func (g *Game) checkStatus() Status {
	if board.IsKingAttacked(&g.board, g.turn) {
		return Check
	}
	return InProgress
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
