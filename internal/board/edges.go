package board

// Direction indexes the eight compass directions used by sliding pieces and
// the king. The order matches DirectionOffsets and the edge distance table.
type Direction int

const (
	North Direction = iota
	South
	West
	East
	NorthWest
	SouthEast
	NorthEast
	SouthWest
)

// DirectionOffsets holds the square delta of one step in each Direction.
var DirectionOffsets = [8]int{8, -8, -1, 1, 7, -7, 9, -9}

// KnightOffsets holds the square deltas of the eight knight jumps.
var KnightOffsets = [8]int{-15, -17, -6, -10, 10, 6, 17, 15}

// edgeDistance[sq][dir] is the number of steps from sq to the board edge.
var edgeDistance [64][8]int

func init() {
	initEdgeDistance()
}

func initEdgeDistance() {
	for sq := A1; sq <= H8; sq++ {
		file, rank := sq.File(), sq.Rank()

		north := 7 - rank
		south := rank
		west := file
		east := 7 - file

		edgeDistance[sq] = [8]int{
			north,
			south,
			west,
			east,
			min(north, west),
			min(south, east),
			min(north, east),
			min(south, west),
		}
	}
}

// EdgeDistance returns how many steps sq can travel in dir before leaving the board.
func EdgeDistance(sq Square, dir Direction) int {
	mustValid(sq)
	return edgeDistance[sq][dir]
}

// Step returns the square n steps from sq in dir, or NoSquare if that
// crosses the edge.
func Step(sq Square, dir Direction, n int) Square {
	if n > EdgeDistance(sq, dir) {
		return NoSquare
	}
	return Square(int(sq) + DirectionOffsets[dir]*n)
}
