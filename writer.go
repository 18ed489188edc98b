package mdwriter

import "io"

// Writer serializes elements to a sink, separating consecutive elements
// with exactly one blank line. A Writer is not safe for concurrent use.
type Writer struct {
	w       io.Writer
	started bool
}

// NewWriter returns a Writer that owns w until Release is called.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write renders e in memory and writes it to the sink in a single call,
// preceded by a blank line unless it is the first element written and
// followed by a newline if it does not end with one.
//
// Render errors are returned before any bytes reach the sink. Sink errors
// are returned unchanged; the sink may then hold a partial element.
func (w *Writer) Write(e Element) error {
	if w.w == nil {
		return ErrReleased
	}
	s, err := e.Markdown()
	if err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	s = terminate(s)
	if w.started {
		s = "\n" + s
	}
	n, err := io.WriteString(w.w, s)
	if err != nil {
		return err
	}
	if n < len(s) {
		return io.ErrShortWrite
	}
	w.started = true
	return nil
}

// WriteAll writes elements in order, stopping at the first error.
func (w *Writer) WriteAll(elements ...Element) error {
	for _, e := range elements {
		if err := w.Write(e); err != nil {
			return err
		}
	}
	return nil
}

// Release detaches and returns the sink. Later writes fail with
// ErrReleased and a second Release returns nil.
func (w *Writer) Release() io.Writer {
	sink := w.w
	w.w = nil
	return sink
}
