// Package loader reads and writes the adjacency-list text format used by the
// mincut command.
//
// Format
//
//	One line per vertex. The first integer is the vertex's 1-based label; the
//	rest are 1-based labels of its neighbors. Tokens are separated by any run
//	of whitespace; blank lines are ignored. Labels must cover 1..n exactly.
//
//	1 2 3
//	2 1 3
//	3 1 2
//
// Parse converts to the zero-based neighbor array accepted by
// builder.FromNeighbors and trial.Run; Write does the reverse.
//
// Errors
//
//	Parsing fails on the first problem with a *ParseError carrying the line
//	number and offending token. Branch with errors.Is against ErrBadToken,
//	ErrLabelRange, ErrDuplicateVertex, ErrSelfAdjacency, ErrMissingVertex,
//	ErrNeighborRange or ErrEmptyInput.
package loader
