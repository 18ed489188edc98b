// Package goldmark previews generated Markdown as ANSI-styled terminal
// output, using goldmark for parsing, lipgloss for styling and reflow for
// wrapping.
package goldmark

import "github.com/fwojciec/mdwriter"

const defaultWidth = 80

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs, headings, quotes and list items are word-wrapped to width.
// Code blocks and tables are rendered without reflow.
func Render(source string, width int, theme mdwriter.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}

// Preview renders e to Markdown and returns its terminal preview. It fails
// only when e cannot be rendered.
func Preview(e mdwriter.Element, width int, theme mdwriter.Theme) (string, error) {
	source, err := e.Markdown()
	if err != nil {
		return "", err
	}
	return Render(source, width, theme), nil
}
