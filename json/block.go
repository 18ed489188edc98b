package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/mdwriter"
)

// blockDTO is the JSON representation of a top-level element with a type
// discriminator.
type blockDTO struct {
	Type          string      `json:"type"`
	Level         int         `json:"level,omitempty"`
	Spans         []spanDTO   `json:"spans,omitempty"`
	Ordered       bool        `json:"ordered,omitempty"`
	Title         []spanDTO   `json:"title,omitempty"`
	Items         []itemDTO   `json:"items,omitempty"`
	HeaderEnabled *bool       `json:"header_enabled,omitempty"`
	Header        []cellDTO   `json:"header,omitempty"`
	Rows          [][]cellDTO `json:"rows,omitempty"`
}

// spanDTO is a run of text with inline decorations. Nested spans are
// appended after Text.
type spanDTO struct {
	Text   string    `json:"text"`
	Bold   bool      `json:"bold,omitempty"`
	Italic bool      `json:"italic,omitempty"`
	Code   bool      `json:"code,omitempty"`
	Link   *string   `json:"link,omitempty"`
	Spans  []spanDTO `json:"spans,omitempty"`
}

// cellDTO is either a bare string (plain text) or a span object.
type cellDTO struct {
	plain *string
	span  *spanDTO
}

func (c *cellDTO) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.plain = &s
		return nil
	}
	var s spanDTO
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	c.span = &s
	return nil
}

// itemDTO is a list item: a bare string, a span object, or an object whose
// "list" field holds a nested list.
type itemDTO struct {
	cellDTO
	list *blockDTO
}

func (it *itemDTO) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return it.cellDTO.UnmarshalJSON(data)
	}
	var aux struct {
		spanDTO
		List *blockDTO `json:"list"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.List != nil {
		it.list = aux.List
		return nil
	}
	it.span = &aux.spanDTO
	return nil
}

func unmarshalBlock(b blockDTO) (mdwriter.Element, error) {
	switch b.Type {
	case "heading":
		if b.Level < 1 || b.Level > 6 {
			return nil, fmt.Errorf("heading level must be in [1, 6], got %d: %w", b.Level, ErrInvalidDocument)
		}
		return unmarshalSpans(b.Spans).Heading(b.Level), nil
	case "paragraph":
		return unmarshalSpans(b.Spans).Paragraph(), nil
	case "quote":
		return unmarshalSpans(b.Spans).Quote(), nil
	case "list":
		return unmarshalList(b)
	case "table":
		return unmarshalTable(b)
	default:
		return nil, fmt.Errorf("unknown block type: %q: %w", b.Type, ErrInvalidDocument)
	}
}

func unmarshalList(b blockDTO) (mdwriter.List, error) {
	if b.Type != "" && b.Type != "list" {
		return mdwriter.List{}, fmt.Errorf("nested block type must be list, got %q: %w", b.Type, ErrInvalidDocument)
	}
	l := mdwriter.NewList(b.Ordered)
	if len(b.Title) > 0 {
		l = l.Title(unmarshalSpans(b.Title))
	}
	for i, it := range b.Items {
		switch {
		case it.list != nil:
			nested, err := unmarshalList(*it.list)
			if err != nil {
				return mdwriter.List{}, fmt.Errorf("item %d: %w", i, err)
			}
			l = l.Item(nested)
		case it.plain != nil:
			l = l.Item(mdwriter.Plain(sanitize(*it.plain)))
		case it.span != nil:
			l = l.Item(unmarshalSpan(*it.span))
		}
	}
	return l, nil
}

func unmarshalTable(b blockDTO) (mdwriter.Table, error) {
	headerEnabled := b.HeaderEnabled == nil || *b.HeaderEnabled
	t := mdwriter.NewTable(headerEnabled).Header(unmarshalCells(b.Header)...)
	for _, row := range b.Rows {
		t = t.Row(unmarshalCells(row)...)
	}
	if err := t.Validate(); err != nil {
		return mdwriter.Table{}, err
	}
	return t, nil
}

func unmarshalCells(dtos []cellDTO) []mdwriter.Cell {
	cells := make([]mdwriter.Cell, len(dtos))
	for i, c := range dtos {
		if c.plain != nil {
			cells[i] = mdwriter.Plain(sanitize(*c.plain))
			continue
		}
		if c.span != nil {
			cells[i] = unmarshalSpan(*c.span)
			continue
		}
		cells[i] = mdwriter.Plain("")
	}
	return cells
}

// unmarshalSpans joins spans into one value with no separator.
func unmarshalSpans(dtos []spanDTO) mdwriter.Styled {
	if len(dtos) == 0 {
		return mdwriter.Text("")
	}
	parts := make([]mdwriter.Styled, len(dtos)-1)
	for i, d := range dtos[1:] {
		parts[i] = unmarshalSpan(d)
	}
	first := unmarshalSpan(dtos[0])
	if len(parts) == 0 {
		return first
	}
	return first.Append(parts...)
}

func unmarshalSpan(d spanDTO) mdwriter.Styled {
	s := mdwriter.Text(sanitize(d.Text))
	if len(d.Spans) > 0 {
		s = s.Append(unmarshalSpans(d.Spans))
	}
	if d.Code {
		s = s.Code()
	}
	if d.Italic {
		s = s.Italic()
	}
	if d.Bold {
		s = s.Bold()
	}
	if d.Link != nil {
		s = s.LinkTo(sanitize(*d.Link))
	}
	return s
}
