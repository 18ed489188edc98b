package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/mdwriter"
	"github.com/fwojciec/mdwriter/goldmark"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

// statusHeight is the number of rows below the viewport.
const statusHeight = 1

// Model is the Bubble Tea model for the document pager.
type Model struct {
	// Viewport is the scrollable document area. Exported for test access.
	Viewport viewport.Model

	title  string
	source string
	theme  mdwriter.Theme
	styles Styles
	raw    bool
	mouse  bool
	ready  bool
}

// New creates a pager for the Markdown source. The title is shown in the
// status line.
func New(title, source string, theme mdwriter.Theme) Model {
	return Model{
		title:  title,
		source: source,
		theme:  theme,
		styles: NewStyles(theme),
		mouse:  true,
	}
}

// Raw reports whether the pager shows the Markdown source instead of the
// preview.
func (m Model) Raw() bool { return m.raw }

// MouseEnabled reports whether the pager captures the mouse for wheel
// scrolling. Releasing it lets the terminal select text.
func (m Model) MouseEnabled() bool { return m.mouse }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.raw = !m.raw
			if m.ready {
				m.Viewport.SetContent(m.renderContent())
				m.Viewport.GotoTop()
			}
			return m, nil
		case "m":
			m.mouse = !m.mouse
			if m.mouse {
				return m, tea.EnableMouseCellMotion
			}
			return m, tea.DisableMouse
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	vpHeight := max(msg.Height-statusHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	// Previews wrap to the window, so a resize needs a fresh render.
	m.Viewport.SetContent(m.renderContent())
	return m
}

func (m Model) renderContent() string {
	if m.raw {
		return m.source
	}
	return goldmark.Render(m.source, m.Viewport.Width, m.theme)
}

// statusLine shows the title, the view mode and the scroll position,
// truncating the title to fit the window.
func (m Model) statusLine() string {
	mode := "preview"
	toggle := "markdown"
	if m.raw {
		mode, toggle = "markdown", "preview"
	}
	mouse := "select"
	if !m.mouse {
		mouse = "scroll"
	}
	right := fmt.Sprintf(" %s %3.0f%%  q quit  r %s  m %s", mode, m.Viewport.ScrollPercent()*100, toggle, mouse)
	title := ""
	if avail := m.Viewport.Width - runewidth.StringWidth(right); avail > 0 {
		title = runewidth.Truncate(m.title, avail, "…")
	}
	return m.styles.Title.Render(title) + m.styles.Status.Render(right)
}
