// Package mock provides test doubles for mdwriter collaborators using function fields.
package mock

import "io"

// Interface compliance check.
var _ io.Writer = (*Sink)(nil)

// Sink is a test double for a Writer's byte sink.
// WriteFn panics when nil to catch missing setup. Calls records every
// buffer passed to Write.
type Sink struct {
	WriteFn func(p []byte) (int, error)
	Calls   [][]byte
}

// Write records p and delegates to WriteFn.
func (s *Sink) Write(p []byte) (int, error) {
	s.Calls = append(s.Calls, append([]byte(nil), p...))
	return s.WriteFn(p)
}

// FailingSink returns a Sink whose writes always fail with err.
func FailingSink(err error) *Sink {
	return &Sink{WriteFn: func([]byte) (int, error) { return 0, err }}
}
