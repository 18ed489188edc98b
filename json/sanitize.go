package json

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sanitize strips ANSI escape sequences and control characters from text
// read out of a document file. Tabs and newlines survive, CRLF and lone CR
// become LF.
func sanitize(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\r':
			b.WriteByte('\n')
		case r == '\t' || r == '\n' || (r > 0x1F && r != 0x7F):
			b.WriteRune(r)
		}
	}
	return b.String()
}
