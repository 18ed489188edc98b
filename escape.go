package mdwriter

import "strings"

// Characters escaped in literal text. Covers inline emphasis, code spans,
// links, headings, list markers, block quotes and table pipes.
const textSpecial = "\\`*_{}[]()#+-.!>|"

// Characters escaped in link destinations.
const urlSpecial = "\\().-<>"

// Whitespace ends a bare link destination, so it is percent-encoded.
var urlSpace = strings.NewReplacer(" ", "%20", "\t", "%09", "\n", "%0A", "\r", "%0D")

// EscapeText backslash-escapes every Markdown-significant character in s so
// that it renders as literal text.
func EscapeText(s string) string {
	return escape(s, textSpecial)
}

// EscapeURL backslash-escapes the characters that could end a link
// destination early or be read as markup, and percent-encodes whitespace.
//
//	EscapeURL("https://rust-lang.org") == `https://rust\-lang\.org`
func EscapeURL(s string) string {
	return escape(urlSpace.Replace(s), urlSpecial)
}

func escape(s, special string) string {
	i := strings.IndexAny(s, special)
	if i < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i >= 0 {
		b.WriteString(s[:i])
		b.WriteByte('\\')
		b.WriteByte(s[i])
		s = s[i+1:]
		i = strings.IndexAny(s, special)
	}
	b.WriteString(s)
	return b.String()
}
