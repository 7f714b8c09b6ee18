package board

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// targets lists the destination squares of ml, sorted.
func targets(ml *MoveList) []string {
	out := make([]string, 0, ml.Len())
	for _, m := range ml.Slice() {
		out = append(out, m.To().String())
	}
	sort.Strings(out)
	return out
}

func mustPlacement(t *testing.T, s string) *Board {
	t.Helper()
	b, err := ParsePlacement(s)
	if err != nil {
		t.Fatalf("ParsePlacement(%q): %v", s, err)
	}
	return b
}

func TestStartPositionCandidates(t *testing.T) {
	b := NewBoard()
	if n := GenerateAllMoves(b, White, NoEnPassant).Len(); n != 20 {
		t.Errorf("White has %d candidates, want 20", n)
	}
	if n := GenerateAllMoves(b, Black, NoEnPassant).Len(); n != 20 {
		t.Errorf("Black has %d candidates, want 20", n)
	}
	if n := GenerateMoves(b, E4, NoEnPassant).Len(); n != 0 {
		t.Errorf("empty square produced %d candidates", n)
	}
}

func TestSlidingMoves(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		from      Square
		want      []string
	}{
		{
			name:      "RookOpenBoard",
			placement: "8/8/8/8/3R4/8/8/8",
			from:      D4,
			want:      []string{"a4", "b4", "c4", "d1", "d2", "d3", "d5", "d6", "d7", "d8", "e4", "f4", "g4", "h4"},
		},
		{
			name:      "BishopOpenBoard",
			placement: "8/8/8/8/3B4/8/8/8",
			from:      D4,
			want:      []string{"a1", "a7", "b2", "b6", "c3", "c5", "e3", "e5", "f2", "f6", "g1", "g7", "h8"},
		},
		{
			name:      "RookBlockedAndCapturing",
			placement: "8/8/8/8/8/P7/8/R1p5",
			from:      A1,
			want:      []string{"a2", "b1", "c1"},
		},
		{
			name:      "BishopCornerCaptures",
			placement: "8/8/8/8/8/8/1n6/B7",
			from:      A1,
			want:      []string{"b2"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustPlacement(t, tc.placement)
			if diff := cmp.Diff(tc.want, targets(SlidingMoves(b, tc.from))); diff != "" {
				t.Errorf("targets mismatch (-want +got):\n%s", diff)
			}
		})
	}

	b := mustPlacement(t, "8/8/8/8/3Q4/8/8/8")
	if n := SlidingMoves(b, D4).Len(); n != 27 {
		t.Errorf("queen on d4 has %d moves, want 27", n)
	}
}

func TestKnightMoves(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		from      Square
		want      []string
	}{
		{"Center", "8/8/8/8/3N4/8/8/8", D4, []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"}},
		{"Corner", "8/8/8/8/8/8/8/N7", A1, []string{"b3", "c2"}},
		// Deltas that would wrap onto the a/b files are rejected.
		{"HFile", "8/8/8/8/7N/8/8/8", H4, []string{"f3", "f5", "g2", "g6"}},
		{"AFile", "8/8/8/8/N7/8/8/8", A4, []string{"b2", "b6", "c3", "c5"}},
		{"FriendlyBlocked", "8/8/8/8/8/1P6/2p5/N7", A1, []string{"c2"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustPlacement(t, tc.placement)
			if diff := cmp.Diff(tc.want, targets(KnightMoves(b, tc.from))); diff != "" {
				t.Errorf("targets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKingMoves(t *testing.T) {
	b := mustPlacement(t, "8/8/8/8/8/8/Pp6/K7")
	if diff := cmp.Diff([]string{"b1", "b2"}, targets(KingMoves(b, A1))); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}

	b = mustPlacement(t, "8/8/8/8/4K3/8/8/8")
	if n := KingMoves(b, E4).Len(); n != 8 {
		t.Errorf("king on e4 has %d moves, want 8", n)
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		from      Square
		ep        EnPassant
		want      []string
	}{
		{"WhiteHomeRank", "8/8/8/8/8/8/4P3/8", E2, NoEnPassant, []string{"e3", "e4"}},
		{"WhiteBlocked", "8/8/8/8/8/4n3/4P3/8", E2, NoEnPassant, []string{}},
		{"WhiteDoubleBlocked", "8/8/8/8/4n3/8/4P3/8", E2, NoEnPassant, []string{"e3"}},
		{"WhiteAdvanced", "8/8/8/8/8/4P3/8/8", E3, NoEnPassant, []string{"e4"}},
		{"WhiteCaptures", "8/8/8/8/8/1r1b4/2P5/8", C2, NoEnPassant, []string{"b3", "c3", "c4", "d3"}},
		{"OwnPieceNotCaptured", "8/8/8/8/8/1R6/2P5/8", C2, NoEnPassant, []string{"c3", "c4"}},
		{"EmptyDiagonalNotAMove", "8/8/8/8/8/8/2P5/8", C2, NoEnPassant, []string{"c3", "c4"}},
		// h2 plus nine lands on a4; the edge table stops the wrap.
		{"NoWrapCapture", "8/8/8/8/r7/8/7P/8", H2, NoEnPassant, []string{"h3", "h4"}},
		{"BlackHomeRank", "8/4p3/8/8/8/8/8/8", E7, NoEnPassant, []string{"e5", "e6"}},
		{"BlackCaptures", "8/8/8/8/4p3/3P1N2/8/8", E4, NoEnPassant, []string{"d3", "e3", "f3"}},
		{"BlackNoDoubleFromSecondRank", "8/8/8/8/8/8/3p4/8", D2, NoEnPassant, []string{"d1"}},
		{"WhiteNoDoubleFromSeventhRank", "8/3P4/8/8/8/8/8/8", D7, NoEnPassant, []string{"d8"}},
		{
			"WhiteEnPassant", "8/8/8/3pP3/8/8/8/8", E5,
			EnPassant{Square: D5, Color: Black}, []string{"d6", "e6"},
		},
		{
			"EnPassantNeedsAdjacency", "8/8/8/p3P3/8/8/8/8", E5,
			EnPassant{Square: A5, Color: Black}, []string{"e6"},
		},
		{
			"EnPassantNeedsOpponentRecord", "8/8/8/3PP3/8/8/8/8", E5,
			EnPassant{Square: D5, Color: White}, []string{"e6"},
		},
		{
			"BlackEnPassant", "8/8/8/8/Pp6/8/8/8", B4,
			EnPassant{Square: A4, Color: White}, []string{"a3", "b3"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustPlacement(t, tc.placement)
			if diff := cmp.Diff(tc.want, targets(PawnMoves(b, tc.from, tc.ep))); diff != "" {
				t.Errorf("targets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnPassantRecord(t *testing.T) {
	ep := EnPassant{Square: A4, Color: White}
	if ep.Target() != A3 {
		t.Errorf("Target() = %s, want a3", ep.Target())
	}
	if !ep.Captures(Black, A3) || ep.Captures(White, A3) || ep.Captures(Black, B3) {
		t.Error("Captures only matches the opponent landing on the target")
	}
	if NoEnPassant.Valid() || (EnPassant{}).Valid() {
		t.Error("empty records must not be valid")
	}
	if ep.String() != "a3" || NoEnPassant.String() != "-" {
		t.Errorf("String() = %q / %q", ep.String(), NoEnPassant.String())
	}
}

func TestMoveIsCapture(t *testing.T) {
	b := mustPlacement(t, "8/8/8/3pP3/8/8/8/8")
	ep := EnPassant{Square: D5, Color: Black}
	if !NewMove(E5, D6).IsCapture(b, ep) {
		t.Error("en passant should count as a capture")
	}
	if NewMove(E5, E6).IsCapture(b, ep) {
		t.Error("push is not a capture")
	}
}

func TestCrowdedBoardCandidates(t *testing.T) {
	b := mustPlacement(t, "1QBQQQQ1/Q5Q1/R6Q/1Q5Q/Q3Q2Q/2Q4Q/Q6Q/k1QQQQQK")

	ml := GenerateAllMoves(b, White, NoEnPassant)
	if ml.Len() <= 256 {
		t.Errorf("expected more than 256 candidates, got %d", ml.Len())
	}
	if !ml.Contains(NewMove(H1, G2)) {
		t.Error("king move h1g2 missing from a crowded list")
	}
}
