// Package engine plays the automated side: a capture when one is available,
// otherwise any legal move, picked uniformly at random. There is no search
// or evaluation.
package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/game"
)

// ErrNoMoves is returned when the side to move has no legal move left.
var ErrNoMoves = errors.New("no legal moves")

// MoveInfo describes a move the engine chose.
type MoveInfo struct {
	Move       board.Move
	Candidates int  // legal moves considered
	Captures   int  // of which captures
	Capture    bool // the chosen move is a capture
}

// Engine is the automated opponent.
type Engine struct {
	rng *rand.Rand

	// Callbacks
	OnMove func(MoveInfo)
}

// NewEngine creates an engine. A zero seed seeds from the clock.
func NewEngine(seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// SelectMove picks a move for the side to move without playing it.
func (e *Engine) SelectMove(g *game.Game) (MoveInfo, error) {
	legal := g.LegalMoves()
	if len(legal) == 0 {
		return MoveInfo{Move: board.NoMove}, ErrNoMoves
	}

	var captures []board.Move
	for _, m := range legal {
		if g.IsCapture(m) {
			captures = append(captures, m)
		}
	}

	info := MoveInfo{
		Candidates: len(legal),
		Captures:   len(captures),
	}
	if len(captures) > 0 {
		info.Move = captures[e.rng.Intn(len(captures))]
		info.Capture = true
	} else {
		info.Move = legal[e.rng.Intn(len(legal))]
	}
	return info, nil
}

// Play selects and makes a move for the side to move. When nothing is
// playable the game is ended and ErrNoMoves returned.
func (e *Engine) Play(g *game.Game) (game.Outcome, error) {
	if g.Status() == game.GameOver {
		return game.Outcome{}, game.ErrGameOver
	}

	info, err := e.SelectMove(g)
	if err != nil {
		g.End()
		return game.Outcome{}, err
	}

	out, err := g.MakeMove(info.Move.From(), info.Move.To())
	if err != nil {
		return game.Outcome{}, err
	}

	if e.OnMove != nil {
		e.OnMove(info)
	}
	return out, nil
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Promotions count once, whatever piece is chosen.
func Perft(g *game.Game, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := g.Clone()
		if _, err := child.MakeMove(m.From(), m.To()); err != nil {
			continue
		}
		nodes += Perft(child, depth-1)
	}
	return nodes
}
