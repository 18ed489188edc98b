package mdwriter

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrColumnMismatch indicates a table row whose cell count differs from
	// the table's column count.
	ErrColumnMismatch = errors.New("column mismatch")

	// ErrReleased indicates a write on a Writer whose sink was released.
	ErrReleased = errors.New("writer released")
)
