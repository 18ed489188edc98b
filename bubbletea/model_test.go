package bubbletea_test

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/mdwriter"
	bt "github.com/fwojciec/mdwriter/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = "# Hello\n\nSome **body** text.\n\n   * one\n   * two\n"

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, title, source string, width, height int) bt.Model {
	t.Helper()
	m := bt.New(title, source, mdwriter.PlainTheme())
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew(t *testing.T) {
	t.Parallel()

	m := bt.New("doc.md", sampleSource, mdwriter.DefaultTheme())
	assert.Equal(t, "Initializing...", m.View())
	assert.False(t, m.Raw())
	assert.Nil(t, m.Init())
}

func TestModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("window size initializes viewport", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, "doc.md", sampleSource, 80, 24)
		assert.Equal(t, 80, m.Viewport.Width)
		assert.Equal(t, 23, m.Viewport.Height)

		view := stripANSI(m.View())
		assert.Contains(t, view, "Hello")
		assert.Contains(t, view, "• one")
		assert.NotContains(t, view, "**body**")
	})

	t.Run("resize updates viewport dimensions", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, "doc.md", sampleSource, 80, 24)
		m = updateModel(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
		assert.Equal(t, 100, m.Viewport.Width)
		assert.Equal(t, 39, m.Viewport.Height)
	})

	t.Run("tiny window keeps one row", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, "doc.md", sampleSource, 20, 1)
		assert.Equal(t, 1, m.Viewport.Height)
	})

	t.Run("r toggles raw markdown", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, "doc.md", sampleSource, 80, 24)
		m = updateModel(t, m, runeKey('r'))
		assert.True(t, m.Raw())
		assert.Contains(t, stripANSI(m.View()), "Some **body** text.")

		m = updateModel(t, m, runeKey('r'))
		assert.False(t, m.Raw())
		assert.NotContains(t, stripANSI(m.View()), "**body**")
	})

	t.Run("quit keys", func(t *testing.T) {
		t.Parallel()
		for _, key := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
			m := initModel(t, "doc.md", sampleSource, 80, 24)
			_, cmd := m.Update(key)
			require.NotNil(t, cmd, "key %s", key)
			assert.IsType(t, tea.QuitMsg{}, cmd(), "key %s", key)
		}
	})
}

func TestModel_Mouse(t *testing.T) {
	t.Parallel()

	t.Run("enabled by default", func(t *testing.T) {
		t.Parallel()
		m := bt.New("doc.md", sampleSource, mdwriter.PlainTheme())
		assert.True(t, m.MouseEnabled())
	})

	t.Run("wheel scrolls the document", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("paragraph\n\n", 50)
		m := initModel(t, "doc.md", long, 40, 10)
		require.Equal(t, 0, m.Viewport.YOffset)

		m = updateModel(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
		assert.Positive(t, m.Viewport.YOffset)
	})

	t.Run("m toggles capture with matching commands", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, "doc.md", sampleSource, 80, 24)

		updated, cmd := m.Update(runeKey('m'))
		m = updated.(bt.Model)
		assert.False(t, m.MouseEnabled())
		require.NotNil(t, cmd)
		disable := fmt.Sprintf("%T", cmd())
		assert.Contains(t, stripANSI(bt.StatusLine(m)), "m scroll")

		updated, cmd = m.Update(runeKey('m'))
		m = updated.(bt.Model)
		assert.True(t, m.MouseEnabled())
		require.NotNil(t, cmd)
		assert.NotEqual(t, disable, fmt.Sprintf("%T", cmd()))
		assert.Contains(t, stripANSI(bt.StatusLine(m)), "m select")
	})
}

func TestStatusLine(t *testing.T) {
	t.Parallel()

	t.Run("shows title and mode", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, "doc.md", sampleSource, 80, 24)
		line := stripANSI(bt.StatusLine(m))
		assert.True(t, strings.HasPrefix(line, "doc.md preview"))
		assert.Contains(t, line, "r markdown")
	})

	t.Run("long title is truncated to the window", func(t *testing.T) {
		t.Parallel()
		title := strings.Repeat("very-long-name/", 10) + "doc.md"
		m := initModel(t, title, sampleSource, 50, 24)
		line := stripANSI(bt.StatusLine(m))
		assert.Contains(t, line, "…")
		assert.LessOrEqual(t, runewidth.StringWidth(line), 50)
	})
}

func TestModel_Teatest(t *testing.T) {
	t.Parallel()

	m := bt.New("doc.md", sampleSource, mdwriter.PlainTheme())
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Hello")) && bytes.Contains(out, []byte("doc.md"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	final, ok := fm.(bt.Model)
	require.True(t, ok)
	assert.False(t, final.Raw())
}
