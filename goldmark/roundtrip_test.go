package goldmark_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/mdwriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yuin "github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func toHTML(t *testing.T, md string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, yuin.New(yuin.WithExtensions(extension.Table)).Convert([]byte(md), &buf))
	return buf.String()
}

// Escaped text must parse back to the same literal text, with no markup.
func TestRoundTrip_EscapedText(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"*not emphasis*",
		"_nor this_",
		"# not a heading",
		"1. not a list",
		"- not a bullet",
		"+ nor this",
		"[not](a link)",
		"`not code`",
		"> not a quote",
		"a | b",
		`back\slash`,
		"!bang {braces}",
	}
	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			t.Parallel()
			md := mdwriter.Text(s).Paragraph().String()
			assert.Equal(t, "<p>"+htmlEscaper.Replace(s)+"</p>\n", toHTML(t, md))
		})
	}
}

func TestRoundTrip_Decorations(t *testing.T) {
	t.Parallel()

	t.Run("bold link", func(t *testing.T) {
		t.Parallel()
		md := mdwriter.Text("Rust").Bold().LinkTo("https://rust-lang.org").String()
		assert.Equal(t, `<p><a href="https://rust-lang.org"><strong>Rust</strong></a></p>`+"\n", toHTML(t, md))
	})

	t.Run("italic heading", func(t *testing.T) {
		t.Parallel()
		md := mdwriter.Text("Subheading").Italic().Heading(2).String()
		assert.Equal(t, "<h2><em>Subheading</em></h2>\n", toHTML(t, md))
	})

	t.Run("code span with backtick", func(t *testing.T) {
		t.Parallel()
		md := mdwriter.Text("a`b").Code().String()
		assert.Equal(t, "<p><code>a`b</code></p>\n", toHTML(t, md))
	})

	t.Run("code covers appended parts", func(t *testing.T) {
		t.Parallel()
		md := mdwriter.Text("a.b").Append(mdwriter.Text("c*")).Code().String()
		assert.Equal(t, "<p><code>a.bc*</code></p>\n", toHTML(t, md))
	})

	t.Run("empty code", func(t *testing.T) {
		t.Parallel()
		md := mdwriter.Text("").Code().String()
		assert.Equal(t, "<p><code> </code></p>\n", toHTML(t, md))
	})

	t.Run("link with spaces", func(t *testing.T) {
		t.Parallel()
		md := mdwriter.Text("a b").LinkTo("http://x.com/a b").String()
		assert.Equal(t, `<p><a href="http://x.com/a%20b">a b</a></p>`+"\n", toHTML(t, md))
	})

	t.Run("quote", func(t *testing.T) {
		t.Parallel()
		md := mdwriter.Text("quoted").Quote().String()
		assert.Equal(t, "<blockquote>\n<p>quoted</p>\n</blockquote>\n", toHTML(t, md))
	})
}

func TestRoundTrip_List(t *testing.T) {
	t.Parallel()

	nested := mdwriter.NewList(true).Title(mdwriter.Text("nested")).Item(mdwriter.Plain("b"))
	md := mdwriter.NewList(false).Items(mdwriter.Plain("a"), nested).Render(0)
	html := toHTML(t, md)

	assert.Equal(t, 1, strings.Count(html, "<ul>"))
	assert.Equal(t, 1, strings.Count(html, "<ol>"))
	assert.Contains(t, html, "<li>a</li>")
	assert.Contains(t, html, "<li>b</li>")
	assert.Less(t, strings.Index(html, "<ul>"), strings.Index(html, "<ol>"))
}

func TestRoundTrip_Table(t *testing.T) {
	t.Parallel()

	tbl := mdwriter.NewTable(true).
		Header(mdwriter.Plain("H1"), mdwriter.Plain("H2")).
		Row(mdwriter.Plain("a|b"), mdwriter.Text("c").Bold())
	md, err := tbl.Render()
	require.NoError(t, err)
	html := toHTML(t, md)

	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<th>H1</th>")
	assert.Contains(t, html, "<td>a|b</td>")
	assert.Contains(t, html, "<td><strong>c</strong></td>")
}

func TestRoundTrip_TableCodeCell(t *testing.T) {
	t.Parallel()

	tbl := mdwriter.NewTable(true).
		Header(mdwriter.Plain("H1"), mdwriter.Plain("H2")).
		Row(mdwriter.Text("a|b").Code(), mdwriter.Plain("c"))
	md, err := tbl.Render()
	require.NoError(t, err)
	html := toHTML(t, md)

	assert.Equal(t, 2, strings.Count(html, "<td>"))
	assert.Contains(t, html, "<td><code>a|b</code></td>")
	assert.Contains(t, html, "<td>c</td>")
}
