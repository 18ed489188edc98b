package mdwriter

import "strings"

// Element is a sealed interface for values the Writer can serialize.
// The unexported marker method prevents external implementations.
type Element interface {
	isElement()
	// Markdown renders the element. Only tables can fail.
	Markdown() (string, error)
}

// Item is a sealed interface for list items: Styled, Plain or a nested List.
type Item interface {
	listItem()
}

// Cell is a sealed interface for table cells: Styled or Plain.
type Cell interface {
	tableCell()
}

// Plain is literal text. It is escaped on output and carries no decoration.
type Plain string

func (Plain) isElement() {}
func (Plain) listItem()  {}
func (Plain) tableCell() {}

// Markdown returns the escaped text.
func (p Plain) Markdown() (string, error) {
	return EscapeText(string(p)), nil
}

// Document is an ordered sequence of elements written as one unit.
type Document []Element

func (Document) isElement() {}

// Markdown renders every element separated by one blank line, exactly as a
// Writer would emit them one at a time. Elements rendering to nothing are
// skipped.
func (d Document) Markdown() (string, error) {
	var b strings.Builder
	for _, e := range d {
		s, err := e.Markdown()
		if err != nil {
			return "", err
		}
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(terminate(s))
	}
	return b.String(), nil
}

// terminate ensures s ends with a newline.
func terminate(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
