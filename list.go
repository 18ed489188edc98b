package mdwriter

import (
	"slices"
	"strings"
)

// indentUnit is the indentation added per nesting level.
const indentUnit = "   "

// List is a bulleted or numbered list whose items are text or nested lists.
type List struct {
	ordered bool
	title   *Styled
	items   []Item
}

// NewList returns an empty list. Ordered lists number every item "1." and
// leave the numbering to the Markdown renderer.
func NewList(ordered bool) List {
	return List{ordered: ordered}
}

func (List) isElement() {}
func (List) listItem()  {}

// Title sets the line rendered above the items. Block decorations on the
// title are ignored.
func (l List) Title(t Styled) List {
	l.title = &t
	return l
}

// Item appends one item.
func (l List) Item(item Item) List {
	l.items = append(slices.Clip(l.items), item)
	return l
}

// Items appends items in order.
func (l List) Items(items ...Item) List {
	l.items = append(slices.Clip(l.items), items...)
	return l
}

// Ordered reports whether the list is numbered.
func (l List) Ordered() bool { return l.ordered }

// Len returns the number of items.
func (l List) Len() int { return len(l.items) }

// Markdown renders the list at depth zero.
func (l List) Markdown() (string, error) {
	return l.Render(0), nil
}

// Render renders the list with its title indented depth levels and its
// items one level further. The result ends with a single newline.
func (l List) Render(depth int) string {
	var lines []string
	if l.title != nil {
		lines = append(lines, indent(depth)+l.title.renderInline(true))
	}
	lines = append(lines, l.itemLines(depth)...)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (l List) marker() string {
	if l.ordered {
		return "1. "
	}
	return "* "
}

// itemLines renders the items of a list whose title sits at depth.
func (l List) itemLines(depth int) []string {
	prefix := indent(depth+1) + l.marker()
	hang := strings.Repeat(" ", len(prefix))

	var lines []string
	for _, it := range l.items {
		switch it := it.(type) {
		case List:
			head := ""
			if it.title != nil {
				head = it.title.renderInline(true)
			}
			lines = append(lines, hangLines(prefix, hang, head)...)
			lines = append(lines, it.itemLines(depth+1)...)
		case Styled:
			lines = append(lines, hangLines(prefix, hang, it.String())...)
		case Plain:
			lines = append(lines, hangLines(prefix, hang, EscapeText(string(it)))...)
		}
	}
	return lines
}

// hangLines puts first after prefix and aligns any continuation lines
// under it.
func hangLines(prefix, hang, text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == 0 {
			if line == "" {
				lines[i] = strings.TrimRight(prefix, " ")
			} else {
				lines[i] = prefix + line
			}
			continue
		}
		if line == "" {
			continue
		}
		lines[i] = hang + line
	}
	return lines
}

func indent(depth int) string {
	return strings.Repeat(indentUnit, max(depth, 0))
}
