package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdwriter"
)

// Styles maps a Theme to lipgloss styles for the pager chrome.
type Styles struct {
	Title  lipgloss.Style
	Status lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t mdwriter.Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Status: lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
