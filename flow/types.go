package flow

import "errors"

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSourceIsSink is returned when source and sink are the same label.
	ErrSourceIsSink = errors.New("flow: source equals sink")
)

// capMap holds residual capacities keyed by label: capMap[u][v] is what can
// still be pushed from u to v.
type capMap map[int]map[int]int
