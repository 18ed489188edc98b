package mdwriter_test

import (
	"testing"

	"github.com/fwojciec/mdwriter"
	"github.com/stretchr/testify/assert"
)

func TestEscapeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no special characters", "hello world", "hello world"},
		{"emphasis", "*not* _emphasis_", `\*not\* \_emphasis\_`},
		{"backslash", `a\b`, `a\\b`},
		{"heading marker", "# title", `\# title`},
		{"link syntax", "[a](b)", `\[a\]\(b\)`},
		{"code span", "`x`", "\\`x\\`"},
		{"quote marker", "> quoted", `\> quoted`},
		{"list markers", "1. - +", `1\. \- \+`},
		{"table pipe", "a|b", `a\|b`},
		{"unicode untouched", "zażółć gęślą", "zażółć gęślą"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mdwriter.EscapeText(tt.in))
		})
	}
}

func TestEscapeText_EveryCharacterOnce(t *testing.T) {
	t.Parallel()

	for _, c := range "\\`*_{}[]()#+-.!>|" {
		assert.Equal(t, `\`+string(c), mdwriter.EscapeText(string(c)), "character %q", c)
		assert.Equal(t, `\`+string(c)+`\`+string(c), mdwriter.EscapeText(string(c)+string(c)), "character %q", c)
	}
}

func TestEscapeURL(t *testing.T) {
	t.Parallel()

	t.Run("documented example", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, `https://rust\-lang\.org`, mdwriter.EscapeURL("https://rust-lang.org"))
	})

	t.Run("parentheses", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, `a\(b\)`, mdwriter.EscapeURL("a(b)"))
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", mdwriter.EscapeURL(""))
	})

	t.Run("whitespace is percent-encoded", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a%20b%09c%0Ad", mdwriter.EscapeURL("a b\tc\nd"))
	})

	t.Run("plain path untouched", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://example/path?q=1", mdwriter.EscapeURL("https://example/path?q=1"))
	})
}
