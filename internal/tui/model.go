// Package tui is the terminal front end: a lipgloss board, a text input for
// moves and a scrolling log. The engine answers the human's moves.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/engine"
	"github.com/hailam/chessrules/internal/game"
)

// engineTurnMsg asks Update to let the engine move.
type engineTurnMsg struct{}

// promotionChoice carries the piece typed after a move ("e7e8 n") to the
// promotion handler. It lives behind a pointer so copies of Model share it.
type promotionChoice struct {
	next board.PieceType
}

func (pc *promotionChoice) Promote(board.Square, board.Color) board.PieceType {
	pt := pc.next
	pc.next = board.Queen
	return pt
}

type Model struct {
	game   *game.Game
	engine *engine.Engine
	human  board.Color
	promo  *promotionChoice

	input    textinput.Model
	logLines []string
	marked   map[board.Square]bool

	width  int
	height int
}

func NewModel(eng *engine.Engine, human board.Color) Model {
	ti := textinput.New()
	ti.Placeholder = "e2e4, moves e2, new, quit"
	ti.Prompt = "> "
	ti.CharLimit = 80
	ti.Width = 40
	ti.Focus()

	m := Model{
		engine:   eng,
		human:    human,
		promo:    &promotionChoice{next: board.Queen},
		input:    ti,
		logLines: []string{"ready"},
	}
	m.reset(game.New())
	return m
}

func (m *Model) reset(g *game.Game) {
	m.game = g
	m.game.SetPromotionHandler(m.promo)
	m.marked = nil
}

// Game returns the game being played.
func (m Model) Game() *game.Game { return m.game }

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.engineCmd())
}

// engineCmd schedules an engine move when it is the engine's turn.
func (m Model) engineCmd() tea.Cmd {
	if m.game.Status() == game.GameOver || m.game.Turn() == m.human {
		return nil
	}
	return func() tea.Msg { return engineTurnMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(60, max(20, m.width-6))
		return m, nil

	case engineTurnMsg:
		m.playEngine()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			return m, m.execCommand(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) execCommand(line string) tea.Cmd {
	m.appendLog("> " + line)
	parts := strings.Fields(line)

	switch strings.ToLower(parts[0]) {
	case "quit", "q":
		return tea.Quit
	case "new":
		m.reset(game.New())
		m.appendLog("new game")
		return m.engineCmd()
	case "moves":
		m.showMoves(parts[1:])
		return nil
	}

	return m.humanMove(parts)
}

// humanMove accepts "e2e4", "e2 e4" and an optional promotion letter
// ("e7e8q", "e7 e8 n").
func (m *Model) humanMove(parts []string) tea.Cmd {
	text := strings.ReplaceAll(strings.Join(parts, ""), "-", "")
	choice := board.Queen
	if len(text) == 5 {
		choice = game.ParsePromotionChoice(text[4:])
		text = text[:4]
	}

	if m.game.Turn() != m.human && m.game.Status() != game.GameOver {
		m.appendLog("wait for the engine")
		return nil
	}

	// The choice applies to this move only, accepted or not.
	m.promo.next = choice
	out, err := m.game.Play(text)
	m.promo.next = board.Queen
	if err != nil {
		m.appendLog(fmt.Sprintf("rejected: %v", err))
		return nil
	}
	m.logOutcome("you", out)
	return m.engineCmd()
}

func (m *Model) playEngine() {
	side := m.game.Turn()
	out, err := m.engine.Play(m.game)
	switch {
	case errors.Is(err, engine.ErrNoMoves):
		m.appendLog(fmt.Sprintf("game over: %s has no moves", side))
	case err != nil:
		m.appendLog(fmt.Sprintf("engine: %v", err))
	default:
		m.logOutcome("engine", out)
	}
}

func (m *Model) showMoves(args []string) {
	var moves []board.Move
	if len(args) > 0 {
		sq, err := board.ParseSquare(args[0])
		if err != nil {
			m.appendLog(err.Error())
			return
		}
		moves = m.game.MovesFrom(sq)
	} else {
		moves = m.game.LegalMoves()
	}

	m.marked = make(map[board.Square]bool, len(moves))
	strs := make([]string, len(moves))
	for i, mv := range moves {
		strs[i] = mv.String()
		m.marked[mv.To()] = true
	}
	m.appendLog(fmt.Sprintf("%d moves: %s", len(moves), strings.Join(strs, " ")))
}

func (m *Model) logOutcome(who string, out game.Outcome) {
	line := fmt.Sprintf("%s: %s", who, out.Move)
	if out.IsCapture() {
		line += " x" + out.Captured.Type.String()
	}
	if out.Promoted != board.NoPieceType {
		line += " =" + out.Promoted.String()
	}
	if out.Status == game.Check {
		line += " +check"
	}
	m.appendLog(line)
	m.marked = map[board.Square]bool{out.Move.From(): true, out.Move.To(): true}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	header := titleStyle.Render(fmt.Sprintf("chessrules  you:%s  turn:%s  status:%s",
		m.human, m.game.Turn(), m.game.Status()))

	b := m.game.Board()
	boardBox := boxStyle.Render(RenderBoard(&b, m.human == board.Black, m.marked))

	const logHeight = 10
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(20, m.width-34)).Height(logHeight).Render(logBody)

	inputBox := boxStyle.Width(max(20, m.width-2)).Render(m.input.View())

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, boardBox, logBox) + "\n" + inputBox + "\n"
}
