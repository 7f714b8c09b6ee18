package game

import (
	"fmt"

	"github.com/hailam/chessrules/internal/board"
)

// Snapshot is the persistent form of a game: enough to resume it exactly.
type Snapshot struct {
	Placement string `json:"placement"`
	Turn      string `json:"turn"`       // "w" or "b"
	Status    string `json:"status"`     // Status.String()
	EnPassant string `json:"en_passant"` // square of the double-stepped pawn, or "-"
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Placement: g.board.Placement(),
		Turn:      "w",
		Status:    g.status.String(),
		EnPassant: "-",
	}
	if g.turn == board.Black {
		s.Turn = "b"
	}
	if g.ep.Valid() {
		s.EnPassant = g.ep.Square.String()
	}
	return s
}

// Restore rebuilds a game from a snapshot. The promotion handler is AutoQueen.
func Restore(s Snapshot) (*Game, error) {
	var turn board.Color
	switch s.Turn {
	case "w":
		turn = board.White
	case "b":
		turn = board.Black
	default:
		return nil, fmt.Errorf("invalid side to move: %q", s.Turn)
	}

	g, err := NewFromPlacement(s.Placement, turn)
	if err != nil {
		return nil, err
	}

	if s.EnPassant != "" && s.EnPassant != "-" {
		sq, err := board.ParseSquare(s.EnPassant)
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %w", err)
		}
		p := g.board.PieceAt(sq)
		if p.Type != board.Pawn || p.Color != turn.Other() {
			return nil, fmt.Errorf("en passant square %s does not hold a %s pawn", sq, turn.Other())
		}
		if sq.RelativeRank(p.Color) != 3 {
			return nil, fmt.Errorf("en passant pawn on %s has not just advanced two squares", sq)
		}
		g.ep = board.EnPassant{Square: sq, Color: p.Color}
	}

	if s.Status == GameOver.String() {
		g.status = GameOver
	}
	return g, nil
}
