// Package core defines the contraction Graph, its vertex/edge handles,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNegativeLabel   - vertex label is below zero.
//	ErrDuplicateLabel  - a live vertex already carries the label.
//	ErrVertexNotFound  - handle does not reference a live vertex.
//	ErrEdgeNotFound    - handle does not reference a live edge.
//	ErrLoopNotAllowed  - both ends of a new edge are the same vertex.
//	ErrSparseLabels    - labels are not the dense range 0..V-1.
//	ErrInvariant       - internal bookkeeping is inconsistent.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeLabel indicates that AddVertex received a label below zero.
	ErrNegativeLabel = errors.New("core: negative vertex label")

	// ErrDuplicateLabel indicates that a live vertex already carries the label.
	ErrDuplicateLabel = errors.New("core: duplicate vertex label")

	// ErrVertexNotFound indicates an operation referenced a retired or unknown vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a removed or unknown edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrSparseLabels indicates the live labels are not exactly 0..V-1.
	ErrSparseLabels = errors.New("core: labels are not dense")

	// ErrInvariant indicates broken internal bookkeeping.
	ErrInvariant = errors.New("core: invariant violated")
)

// VertexID is a stable handle into the vertex arena. Handles are never reused
// within one Graph: a retired vertex keeps its slot but is no longer live.
type VertexID int

// EdgeID is a stable handle into the edge arena.
type EdgeID int

// NoVertex is returned where no vertex applies.
const NoVertex VertexID = -1

// InvariantError reports a request that is impossible under correct
// contraction bookkeeping, such as asking for the far end of an edge from a
// vertex that is not on it. Opposite and ReplaceEnd panic with it; it unwraps
// to ErrInvariant.
type InvariantError struct {
	Op     string
	Edge   EdgeID
	Vertex VertexID
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("core: %s: vertex %d is not an end of edge %d", e.Op, e.Vertex, e.Edge)
}

// Unwrap lets errors.Is(err, ErrInvariant) match.
func (e *InvariantError) Unwrap() error { return ErrInvariant }

// vertex is one arena slot.
type vertex struct {
	label    int      // stable identity used for output
	members  []int    // original labels fused into this vertex
	incident []EdgeID // live edges touching this vertex, unordered
	live     bool
}

// edge is one arena slot. slots[k] is the index of this edge inside
// ends[k]'s incident slice; pos is its index in Graph.live or -1.
type edge struct {
	ends  [2]VertexID
	slots [2]int
	pos   int
}

// Adjacency is one row of an adjacency dump: a vertex label followed by the
// labels at the far end of each incident edge (parallel edges repeat).
type Adjacency struct {
	Label     int
	Neighbors []int
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for the given number of vertices and edges.
// Contraction allocates one extra vertex per step, so callers planning to
// contract may pass 2*V.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.vertices = make([]vertex, 0, vertices)
			g.byLabel = make(map[int]VertexID, vertices)
		}
		if edges > 0 {
			g.edges = make([]edge, 0, edges)
			g.live = make([]EdgeID, 0, edges)
		}
	}
}

// Graph is the mutable undirected multigraph contracted by Karger's algorithm.
//
// vertices and edges are arenas; byLabel and live index the live subset.
type Graph struct {
	vertices []vertex
	edges    []edge

	byLabel map[int]VertexID // live label → handle
	live    []EdgeID         // live edges, order irrelevant
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(V+E) with WithCapacity.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.byLabel == nil {
		g.byLabel = make(map[int]VertexID)
	}

	return g
}
