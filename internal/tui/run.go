package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/engine"
)

// Run starts the terminal UI with the human playing human.
func Run(eng *engine.Engine, human board.Color) error {
	p := tea.NewProgram(NewModel(eng, human), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
