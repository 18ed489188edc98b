package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/mdwriter"
	bt "github.com/fwojciec/mdwriter/bubbletea"
	mdfs "github.com/fwojciec/mdwriter/fs"
	"github.com/fwojciec/mdwriter/goldmark"
	mdjson "github.com/fwojciec/mdwriter/json"
	"golang.org/x/term"
)

func expandInputs(patterns []string) ([]string, error) {
	return mdfs.Expand(patterns...)
}

func outputPath(in, outDir string) string {
	return mdfs.OutputPath(in, outDir)
}

// generate loads the document at in and writes its Markdown to dest,
// or to stdout when dest is "-". A failed write leaves dest untouched.
func generate(in, dest string, stdout io.Writer) error {
	doc, err := mdjson.Load(in)
	if err != nil {
		return err
	}
	if dest == "-" {
		return mdwriter.NewWriter(stdout).Write(doc)
	}

	f, err := mdfs.Create(dest)
	if err != nil {
		return err
	}
	w := mdwriter.NewWriter(f)
	for _, e := range doc {
		if err := w.Write(e); err != nil {
			_ = f.Abort()
			return fmt.Errorf("write %s: %w", dest, err)
		}
	}
	return f.Close()
}

// preview shows the document in the pager when stdout is a terminal and
// prints the ANSI preview otherwise.
func preview(ctx context.Context, in string, width int, stdout io.Writer) error {
	doc, err := mdjson.Load(in)
	if err != nil {
		return err
	}
	source, err := doc.Markdown()
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	theme := mdwriter.DefaultTheme()
	if isTerminal(stdout) {
		return bt.Run(ctx, bt.New(in, source, theme))
	}
	if width == 0 {
		width = terminalWidth(defaultWidth)
	}
	_, err = fmt.Fprintln(stdout, goldmark.Render(source, width, theme))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
