// Package bubbletea provides a Bubble Tea pager that previews generated
// Markdown documents in the terminal.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the pager full screen with mouse wheel scrolling and blocks
// until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}
