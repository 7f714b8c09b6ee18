package game

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/hailam/chessrules/internal/board"
)

func movesToStrings(moves []board.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// oracleMoves returns dragontoothmg's legal moves for fen with promotion
// suffixes dropped, since a promotion is a single move here.
func oracleMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	seen := make(map[string]bool)
	var out []string
	for _, m := range b.GenerateLegalMoves() {
		s := m.String()[:4]
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// Positions without castling rights, where the two move sets must agree.
func TestLegalMovesMatchOracle(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		fen  string
	}{
		{
			name: "Start",
			snap: Snapshot{Placement: board.StartPlacement, Turn: "w"},
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		},
		{
			name: "Kiwipete",
			snap: Snapshot{Placement: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R", Turn: "w"},
			fen:  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		},
		{
			name: "KiwipeteBlack",
			snap: Snapshot{Placement: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R", Turn: "b"},
			fen:  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1",
		},
		{
			name: "RookEndgame",
			snap: Snapshot{Placement: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8", Turn: "w"},
			fen:  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		},
		{
			name: "InCheck",
			snap: Snapshot{Placement: "8/5k2/8/8/5R2/8/8/K7", Turn: "b"},
			fen:  "8/5k2/8/8/5R2/8/8/K7 b - - 0 1",
		},
		{
			name: "Promotions",
			snap: Snapshot{Placement: "1n2k3/P7/8/8/8/8/6p1/4K2R", Turn: "w"},
			fen:  "1n2k3/P7/8/8/8/8/6p1/4K2R w - - 0 1",
		},
		{
			name: "EnPassant",
			snap: Snapshot{Placement: "4k3/8/8/3pP3/8/8/8/4K3", Turn: "w", EnPassant: "d5"},
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Restore(tc.snap)
			if err != nil {
				t.Fatalf("Restore: %v", err)
			}
			got := movesToStrings(g.LegalMoves())
			if diff := cmp.Diff(oracleMoves(tc.fen), got); diff != "" {
				t.Errorf("legal moves mismatch (-oracle +got):\n%s", diff)
			}
		})
	}
}
