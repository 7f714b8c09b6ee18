package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartPlacement is the piece placement of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ErrInvalidPlacement is returned for a malformed piece placement string.
var ErrInvalidPlacement = errors.New("invalid placement")

// ParsePlacement parses the piece placement field of a FEN string: eight
// '/'-separated ranks from rank 8 down, digits for runs of empty squares.
// Trailing FEN fields, if present, are ignored.
func ParsePlacement(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPlacement)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidPlacement, len(ranks))
	}

	b := &Board{}
	for i, rankStr := range ranks {
		rank := 7 - i // placement starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidPlacement, rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece, ok := PieceFromChar(c)
			if !ok {
				return nil, fmt.Errorf("%w: invalid piece character %q", ErrInvalidPlacement, c)
			}
			b.SetPiece(NewSquare(file, rank), piece)
			file++
		}

		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d squares", ErrInvalidPlacement, rank+1, file)
		}
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlacement, err)
	}
	return b, nil
}

// Placement returns the piece placement field for the board.
func (b *Board) Placement() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
