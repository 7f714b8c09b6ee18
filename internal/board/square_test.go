package board

import (
	"errors"
	"strings"
	"testing"
)

func TestSquareRoundTrip(t *testing.T) {
	for file := 'a'; file <= 'h'; file++ {
		for rank := '1'; rank <= '8'; rank++ {
			s := string([]rune{file, rank})
			sq, err := ParseSquare(s)
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", s, err)
			}
			if got := sq.String(); got != s {
				t.Errorf("ParseSquare(%q).String() = %q", s, got)
			}
			upper, err := ParseSquare(strings.ToUpper(s))
			if err != nil || upper != sq {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v", strings.ToUpper(s), upper, err, sq)
			}
		}
	}
}

func TestSquareIndexing(t *testing.T) {
	tests := []struct {
		sq         Square
		file, rank int
		name       string
	}{
		{A1, 0, 0, "a1"},
		{H1, 7, 0, "h1"},
		{E4, 4, 3, "e4"},
		{A8, 0, 7, "a8"},
		{H8, 7, 7, "h8"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.sq.File() != tc.file || tc.sq.Rank() != tc.rank {
				t.Errorf("%s: file/rank = %d/%d, want %d/%d", tc.name, tc.sq.File(), tc.sq.Rank(), tc.file, tc.rank)
			}
			if NewSquare(tc.file, tc.rank) != tc.sq {
				t.Errorf("NewSquare(%d, %d) = %d, want %d", tc.file, tc.rank, NewSquare(tc.file, tc.rank), tc.sq)
			}
		})
	}

	if A7.RelativeRank(Black) != 1 || A7.RelativeRank(White) != 6 {
		t.Error("RelativeRank mirrors ranks for Black")
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q", NoSquare.String())
	}
}

func TestParseSquareErrors(t *testing.T) {
	for _, s := range []string{"", "e", "e44", "i1", "a0", "a9", "11", "ee", " e4"} {
		if _, err := ParseSquare(s); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", s, err)
		}
	}
}

func TestParseMove(t *testing.T) {
	for _, s := range []string{"e2e4", "e2-e4", "e2 e4", "E2E4"} {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if m.From() != E2 || m.To() != E4 || m.String() != "e2e4" {
			t.Errorf("ParseMove(%q) = %s", s, m)
		}
	}
	for _, s := range []string{"", "e2", "e2e9", "e2e4e5"} {
		if _, err := ParseMove(s); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidSquare", s, err)
		}
	}
}

func TestPieceInvariant(t *testing.T) {
	tests := []struct {
		p    Piece
		want bool
	}{
		{NoPiece, true},
		{NewPiece(Pawn, White), true},
		{NewPiece(King, Black), true},
		{Piece{Type: Rook}, false},
		{Piece{Color: White}, false},
		{Piece{Type: King + 1, Color: White}, false},
	}
	for _, tc := range tests {
		if got := tc.p.Valid(); got != tc.want {
			t.Errorf("%#v.Valid() = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestInvariantPanics(t *testing.T) {
	expectPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}

	b := &Board{}
	expectPanic("PieceAt off board", func() { b.PieceAt(NoSquare) })
	expectPanic("SetPiece off board", func() { b.SetPiece(Square(70), NewPiece(Pawn, White)) })
	expectPanic("kind without color", func() { b.SetPiece(E4, Piece{Type: Pawn}) })
	expectPanic("color without kind", func() { b.SetPiece(E4, Piece{Color: Black}) })
}
