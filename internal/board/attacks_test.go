package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		sq        Square
		by        Color
		want      bool
	}{
		{"PawnDiagonalEmpty", "8/8/8/8/4P3/8/8/8", D5, White, true},
		{"PawnDiagonalOtherSide", "8/8/8/8/4P3/8/8/8", F5, White, true},
		{"PawnPushIsNoAttack", "8/8/8/8/4P3/8/8/8", E5, White, false},
		{"BlackPawn", "8/8/8/4p3/8/8/8/8", D4, Black, true},
		{"RookOpenFile", "8/8/8/8/8/8/8/R7", A8, White, true},
		{"RookBlocked", "8/8/8/8/P7/8/8/R7", A5, White, false},
		{"RookUpToBlocker", "8/8/8/8/p7/8/8/R7", A4, White, true},
		{"BishopDiagonal", "8/8/8/8/8/8/8/2B5", H6, White, true},
		{"KnightJump", "8/8/8/8/8/8/8/1N6", C3, White, true},
		{"KnightNoWrap", "8/8/8/8/7N/8/8/8", A3, White, false},
		{"KingAdjacent", "8/8/8/8/8/8/8/4k3", D2, Black, true},
		{"WrongColor", "8/8/8/8/8/8/8/R7", A8, Black, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustPlacement(t, tc.placement)
			if got := IsSquareAttacked(b, tc.sq, tc.by); got != tc.want {
				t.Errorf("IsSquareAttacked(%s, %s) = %v, want %v", tc.sq, tc.by, got, tc.want)
			}
		})
	}
}

func TestIsKingAttacked(t *testing.T) {
	b := mustPlacement(t, "4k3/8/8/8/8/8/8/4R1K1")
	if !IsKingAttacked(b, Black) {
		t.Error("rook on e1 should check the king on e8")
	}
	if IsKingAttacked(b, White) {
		t.Error("white king is not attacked")
	}
	if diff := cmp.Diff([]Square{E1}, Checkers(b, E8, White)); diff != "" {
		t.Errorf("Checkers mismatch (-want +got):\n%s", diff)
	}

	// Blocking the file removes the check.
	b.SetPiece(E4, NewPiece(Pawn, Black))
	if IsKingAttacked(b, Black) {
		t.Error("blocked rook should not give check")
	}

	empty := &Board{}
	if IsKingAttacked(empty, White) {
		t.Error("a side without a king is never in check")
	}
}
