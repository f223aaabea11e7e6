package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"arise/internal/session"
)

func RunBoard(sess *session.Session, out io.Writer) error {
	m := newBoardModel(sess)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
