// Package mdwriter builds Markdown documents in memory and writes them to
// an io.Writer.
//
// Text is decorated by chaining methods on a Styled value; lists and tables
// are assembled with builder methods that return new values. A Writer
// renders each element and separates consecutive elements with one blank
// line.
//
//	var buf bytes.Buffer
//	w := mdwriter.NewWriter(&buf)
//	_ = w.Write(mdwriter.Text("Title").Heading(1))
//	_ = w.Write(mdwriter.Text("Links: ").Paragraph().Append(
//		mdwriter.Text("Rust").Bold().LinkTo("https://rust-lang.org"),
//	))
//	_ = w.Write(mdwriter.NewList(false).Items(
//		mdwriter.Plain("one"),
//		mdwriter.Text("two").Italic(),
//	))
//
// Literal text is escaped with EscapeText and link targets with EscapeURL, so
// caller strings never turn into markup.
package mdwriter
