package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors for the adjacency-list format.
var (
	// ErrBadToken is returned for a token that is not a decimal integer.
	ErrBadToken = errors.New("loader: token is not an integer")

	// ErrLabelRange is returned for a vertex label below 1.
	ErrLabelRange = errors.New("loader: vertex label out of range")

	// ErrDuplicateVertex is returned when two lines declare the same label.
	ErrDuplicateVertex = errors.New("loader: vertex declared twice")

	// ErrSelfAdjacency is returned when a vertex lists itself as a neighbor.
	ErrSelfAdjacency = errors.New("loader: vertex lists itself")

	// ErrMissingVertex is returned when some label in 1..n has no line.
	ErrMissingVertex = errors.New("loader: vertex has no line")

	// ErrNeighborRange is returned for a neighbor label outside 1..n.
	ErrNeighborRange = errors.New("loader: neighbor label out of range")

	// ErrEmptyInput is returned when the input declares no vertex.
	ErrEmptyInput = errors.New("loader: no vertices in input")
)

// ParseError locates a format problem. Line is 1-based; it is 0 when the
// problem is only detectable after the whole input was read and has no
// single source line (a missing vertex).
type ParseError struct {
	Line  int
	Token string
	Err   error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v: %q", e.Err, e.Token)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Token)
}

// Unwrap exposes the sentinel.
func (e *ParseError) Unwrap() error { return e.Err }
