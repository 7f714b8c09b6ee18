package game

import "errors"

var (
	ErrNoPiece     = errors.New("no piece on source square")
	ErrWrongTurn   = errors.New("not this side's turn")
	ErrIllegalMove = errors.New("illegal move")
	ErrKingInCheck = errors.New("move leaves own king in check")
	ErrGameOver    = errors.New("game is over")
)
