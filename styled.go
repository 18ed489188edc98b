package mdwriter

import (
	"slices"
	"strings"
)

type decoration uint8

const (
	decorationBold decoration = iota + 1
	decorationItalic
	decorationCode
)

// Styled is text with zero or more decorations applied. Values are
// immutable: every decorator returns a new Styled and leaves the receiver
// untouched.
//
// Rendering applies decorations in a fixed order regardless of how the calls
// were chained: escaping of the literal, then bold/italic/code in chain
// order, then the link, then the heading prefix, then the quote prefix.
// A second Heading or LinkTo replaces the first.
type Styled struct {
	literal string
	nested  *Styled
	parts   []Styled

	inline []decoration
	url    string
	linked bool

	heading   int
	paragraph bool
	quote     bool
}

// Text returns an undecorated Styled holding the literal s.
func Text(s string) Styled {
	return Styled{literal: s}
}

// Wrap returns a Styled whose content is the full rendering of t, so that
// further decorations apply around it.
func Wrap(t Styled) Styled {
	return Styled{nested: &t}
}

func (Styled) isElement() {}
func (Styled) listItem()  {}
func (Styled) tableCell() {}

// Bold wraps the text in **.
func (s Styled) Bold() Styled {
	return s.with(decorationBold)
}

// Italic wraps the text in *.
func (s Styled) Italic() Styled {
	return s.with(decorationItalic)
}

// Code renders the text as an inline code span. The literal is emitted
// without escaping.
func (s Styled) Code() Styled {
	return s.with(decorationCode)
}

// LinkTo turns the text into a link to url.
func (s Styled) LinkTo(url string) Styled {
	s.url = url
	s.linked = true
	return s
}

// Heading turns the text into a heading of the given level. Levels outside
// 1-6 are clamped.
func (s Styled) Heading(level int) Styled {
	s.heading = min(max(level, 1), 6)
	return s
}

// Paragraph marks the text as a block-level paragraph.
func (s Styled) Paragraph() Styled {
	s.paragraph = true
	return s
}

// Quote marks the text as a block quote.
func (s Styled) Quote() Styled {
	s.quote = true
	return s
}

// Append returns s with parts concatenated after its content, with no
// separator. Inline decorations already applied to s stay on s alone, while
// block decorations (heading, paragraph, quote) cover the whole result.
func (s Styled) Append(parts ...Styled) Styled {
	if len(s.inline) == 0 && !s.linked {
		s.parts = append(slices.Clip(s.parts), parts...)
		return s
	}
	inner := s
	inner.heading, inner.paragraph, inner.quote = 0, false, false
	return Styled{
		nested:    &inner,
		parts:     slices.Clone(parts),
		heading:   s.heading,
		paragraph: s.paragraph,
		quote:     s.quote,
	}
}

// IsBlock reports whether s is a heading, paragraph or quote.
func (s Styled) IsBlock() bool {
	return s.heading > 0 || s.paragraph || s.quote
}

// String renders s as Markdown.
func (s Styled) String() string {
	return s.render(true)
}

// Markdown renders s. It never fails.
func (s Styled) Markdown() (string, error) {
	return s.String(), nil
}

func (s Styled) with(d decoration) Styled {
	s.inline = append(slices.Clip(s.inline), d)
	return s
}

func (s Styled) render(escaped bool) string {
	out := s.renderInline(escaped)
	if s.heading > 0 {
		out = strings.Repeat("#", s.heading) + " " + out
	}
	if s.quote {
		out = prefixLines(out, ">")
	}
	return out
}

// renderInline renders content, inline decorations and link, leaving out
// the block-level prefixes. Everything inside a code span, nested values
// and appended parts included, is emitted without escaping.
func (s Styled) renderInline(escaped bool) string {
	escaped = escaped && !slices.Contains(s.inline, decorationCode)

	var b strings.Builder
	switch {
	case s.nested != nil:
		b.WriteString(s.nested.render(escaped))
	case escaped:
		b.WriteString(EscapeText(s.literal))
	default:
		b.WriteString(s.literal)
	}
	for _, p := range s.parts {
		b.WriteString(p.render(escaped))
	}
	out := b.String()

	for _, d := range s.inline {
		switch d {
		case decorationBold:
			out = "**" + out + "**"
		case decorationItalic:
			out = "*" + out + "*"
		case decorationCode:
			out = codeSpan(out)
		}
	}
	if s.linked {
		out = "[" + out + "](" + EscapeURL(s.url) + ")"
	}
	return out
}

// codeSpan fences s with one more backtick than its longest backtick run.
// Content touching a backtick, or wrapped in spaces, is padded so that the
// span's own space stripping leaves it intact. Empty content becomes a
// single-space span.
func codeSpan(s string) string {
	if s == "" {
		return "` `"
	}
	fence := strings.Repeat("`", longestRun(s, '`')+1)
	pad := strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") ||
		(len(s) > 1 && s[0] == ' ' && s[len(s)-1] == ' ' && strings.TrimSpace(s) != "")
	if pad {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}

func longestRun(s string, c byte) int {
	longest, current := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			current = 0
			continue
		}
		current++
		longest = max(longest, current)
	}
	return longest
}

func prefixLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
