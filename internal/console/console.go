// Package console implements a line-based command protocol for playing a
// game against the engine over a reader and writer (normally stdin/stdout).
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/engine"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hailam/chessrules/internal/render"
	"github.com/hailam/chessrules/internal/storage"
)

// Console runs the command loop.
type Console struct {
	game   *game.Game
	engine *engine.Engine
	store  *storage.Storage // nil disables save/load/stats
	prefs  *storage.Preferences

	in  *bufio.Scanner
	out io.Writer

	// Per-game bookkeeping for statistics
	started     time.Time
	plies       int
	checksGiven int
	recorded    bool

	quit bool
}

// New creates a console. store may be nil.
func New(eng *engine.Engine, store *storage.Storage, prefs *storage.Preferences, in io.Reader, out io.Writer) *Console {
	if prefs == nil {
		prefs = storage.DefaultPreferences()
	}
	c := &Console{
		engine: eng,
		store:  store,
		prefs:  prefs,
		in:     bufio.NewScanner(in),
		out:    out,
	}
	c.newGame(game.New())
	return c
}

// Game returns the game being played.
func (c *Console) Game() *game.Game {
	return c.game
}

// Run reads commands until "quit" or end of input.
func (c *Console) Run() {
	b := c.game.Board()
	c.println(b.String())
	c.maybeEngineMove()

	for !c.quit && c.in.Scan() {
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		c.Execute(line)
	}

	c.recordResult(false)
}

// Execute handles a single command line.
func (c *Console) Execute(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "new":
		c.handleNew(args)
	case "move", "m":
		c.handleMove(strings.Join(args, " "))
	case "moves":
		c.handleMoves(args)
	case "d", "board":
		b := c.game.Board()
		c.println(b.String())
	case "status":
		c.printStatus()
	case "go":
		c.handleGo()
	case "auto":
		c.handleAuto(args)
	case "save":
		c.handleSave(args)
	case "load":
		c.handleLoad(args)
	case "games":
		c.handleGames()
	case "delete":
		c.handleDelete(args)
	case "stats":
		c.handleStats()
	case "snapshot":
		c.handleSnapshot(args)
	case "help":
		c.printHelp()
	case "quit", "exit":
		c.quit = true
	default:
		// A bare move like "e2e4" or "e2 e4"
		if _, err := board.ParseMove(line); err == nil {
			c.handleMove(line)
			return
		}
		if len(parts) == 2 {
			if _, err := board.ParseMove(parts[0] + parts[1]); err == nil {
				c.handleMove(parts[0] + parts[1])
				return
			}
		}
		c.printf("error: unknown command %q\n", parts[0])
	}
}

// Promote implements game.PromotionHandler by asking on the console.
// The engine's pawns, and the human's when no answer comes, get the
// preferred promotion piece.
func (c *Console) Promote(sq board.Square, color board.Color) board.PieceType {
	if c.prefs.OpponentEnabled && color != c.humanColor() {
		return game.ParsePromotionChoice(c.prefs.Promotion)
	}
	c.printf("promote %s pawn on %s: q (queen), r (rook), b (bishop), n (knight)?\n", color, sq)
	if !c.in.Scan() {
		return game.ParsePromotionChoice(c.prefs.Promotion)
	}
	return game.ParsePromotionChoice(c.in.Text())
}

func (c *Console) newGame(g *game.Game) {
	c.recordResult(false)
	c.game = g
	c.game.SetPromotionHandler(c)
	c.started = time.Now()
	c.plies = 0
	c.checksGiven = 0
	c.recorded = false
}

func (c *Console) humanColor() board.Color {
	if c.prefs.HumanColor == storage.ColorBlack {
		return board.Black
	}
	return board.White
}

// handleNew starts a game: "new" for the start position, or
// "new <placement> [w|b]".
func (c *Console) handleNew(args []string) {
	if len(args) == 0 {
		c.newGame(game.New())
		c.println("ok new game")
		c.maybeEngineMove()
		return
	}

	turn := board.White
	if len(args) > 1 && strings.EqualFold(args[1], "b") {
		turn = board.Black
	}
	g, err := game.NewFromPlacement(args[0], turn)
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.newGame(g)
	c.printf("ok new game, %s to move, %s\n", turn, g.Status())
	c.maybeEngineMove()
}

func (c *Console) handleMove(text string) {
	if c.prefs.OpponentEnabled && c.game.Turn() != c.humanColor() && c.game.Status() != game.GameOver {
		c.printf("error: %v: waiting for the engine\n", game.ErrWrongTurn)
		return
	}

	out, err := c.game.Play(text)
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.plies++
	c.reportMove("ok", out)
	if out.Status == game.Check {
		c.checksGiven++
	}
	c.maybeEngineMove()
}

func (c *Console) handleGo() {
	c.playEngine()
}

// maybeEngineMove lets the engine reply when it is its turn.
func (c *Console) maybeEngineMove() {
	if !c.prefs.OpponentEnabled || c.game.Status() == game.GameOver {
		return
	}
	if c.game.Turn() == c.humanColor() {
		return
	}
	c.playEngine()
}

func (c *Console) playEngine() {
	side := c.game.Turn()
	out, err := c.engine.Play(c.game)
	switch {
	case errors.Is(err, engine.ErrNoMoves):
		c.printf("game over: %s has no moves\n", side)
		c.recordResult(true)
	case err != nil:
		c.printf("error: %v\n", err)
	default:
		c.plies++
		c.reportMove("engine", out)
	}
}

func (c *Console) reportMove(prefix string, out game.Outcome) {
	var notes []string
	if out.IsCapture() {
		notes = append(notes, "captures "+out.Captured.Type.String())
	}
	if out.EnPassant {
		notes = append(notes, "en passant")
	}
	if out.Promoted != board.NoPieceType {
		notes = append(notes, "promotes to "+out.Promoted.String())
	}
	if out.Status == game.Check {
		notes = append(notes, "check")
	}

	line := fmt.Sprintf("%s %s", prefix, out.Move)
	if len(notes) > 0 {
		line += " (" + strings.Join(notes, ", ") + ")"
	}
	c.println(line)
	b := c.game.Board()
	c.println(b.String())
	c.printStatus()
}

func (c *Console) handleMoves(args []string) {
	var moves []board.Move
	if len(args) > 0 {
		sq, err := board.ParseSquare(args[0])
		if err != nil {
			c.printf("error: %v\n", err)
			return
		}
		moves = c.game.MovesFrom(sq)
	} else {
		moves = c.game.LegalMoves()
	}

	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	c.printf("moves %d: %s\n", len(moves), strings.Join(strs, " "))
}

func (c *Console) handleAuto(args []string) {
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "on":
			c.prefs.OpponentEnabled = true
		case "off":
			c.prefs.OpponentEnabled = false
		default:
			c.printf("error: auto takes on or off\n")
			return
		}
	}
	c.printf("auto %v\n", c.prefs.OpponentEnabled)
	c.maybeEngineMove()
}

func (c *Console) handleSave(args []string) {
	if !c.requireStore() {
		return
	}
	if len(args) != 1 {
		c.println("error: usage: save <name>")
		return
	}
	if err := c.store.SaveGame(args[0], c.game.Snapshot()); err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.printf("ok saved %s\n", args[0])
}

func (c *Console) handleLoad(args []string) {
	if !c.requireStore() {
		return
	}
	if len(args) != 1 {
		c.println("error: usage: load <name>")
		return
	}
	snap, err := c.store.LoadGame(args[0])
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	g, err := game.Restore(snap)
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.newGame(g)
	c.printf("ok loaded %s\n", args[0])
	b := c.game.Board()
	c.println(b.String())
	c.printStatus()
}

func (c *Console) handleGames() {
	if !c.requireStore() {
		return
	}
	names, err := c.store.ListGames()
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.printf("games %d: %s\n", len(names), strings.Join(names, " "))
}

func (c *Console) handleDelete(args []string) {
	if !c.requireStore() {
		return
	}
	if len(args) != 1 {
		c.println("error: usage: delete <name>")
		return
	}
	if err := c.store.DeleteGame(args[0]); err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.printf("ok deleted %s\n", args[0])
}

func (c *Console) handleStats() {
	if !c.requireStore() {
		return
	}
	stats, err := c.store.LoadStats()
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.printf("played %d won %d lost %d abandoned %d checks %d winrate %.1f%%\n",
		stats.GamesPlayed, stats.Wins, stats.Losses, stats.Abandoned, stats.ChecksGiven, stats.GetWinRate())
}

func (c *Console) handleSnapshot(args []string) {
	if len(args) != 1 {
		c.println("error: usage: snapshot <file.png>")
		return
	}
	f, err := os.Create(args[0])
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}
	defer f.Close()

	b := c.game.Board()
	if err := render.WritePNG(f, &b, render.DefaultOptions()); err != nil {
		c.printf("error: %v\n", err)
		return
	}
	c.printf("ok wrote %s\n", args[0])
}

func (c *Console) requireStore() bool {
	if c.store == nil {
		c.println("error: no database open")
		return false
	}
	return true
}

// recordResult stores the game in the statistics once. finished is true
// when the engine's side ran out of moves, which counts as a win.
func (c *Console) recordResult(finished bool) {
	if c.store == nil || c.recorded || c.game == nil {
		return
	}
	if !finished && c.plies == 0 {
		return
	}
	c.recorded = true

	result := storage.GameResult{
		Finished:    finished,
		Won:         finished && c.game.Turn() != c.humanColor(),
		HumanColor:  c.prefs.HumanColor,
		ChecksGiven: c.checksGiven,
		Duration:    time.Since(c.started),
	}
	if err := c.store.RecordGame(result); err != nil {
		log.Printf("info string failed to record game: %v", err)
	}
}

func (c *Console) printStatus() {
	c.printf("turn %s status %s en-passant %s\n", c.game.Turn(), c.game.Status(), c.game.EnPassant())
}

func (c *Console) printHelp() {
	c.println(`commands:
  e2e4 | move e2 e4        make a move
  moves [square]           list legal moves
  d | board                print the board
  status                   side to move, status, en passant target
  go                       let the engine move now
  auto on|off              engine replies automatically
  new [placement] [w|b]    start a new game
  save|load|delete <name>  saved games
  games                    list saved games
  stats                    game statistics
  snapshot <file.png>      write the board as PNG
  quit`)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
