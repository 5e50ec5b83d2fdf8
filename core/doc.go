// Package core provides the mutable multigraph used by edge contraction.
//
// The Graph G = (V,E) is undirected and unweighted. It is tuned for one job:
// pick a uniformly random live edge, fuse its two endpoints into a new
// super-vertex, redirect everything that touched them and drop the edges that
// would turn into self-loops.
//
// Storage:
//
//   - Vertices live in an arena indexed by VertexID. Contraction never mutates
//     an endpoint in place; it retires both handles and allocates a new one
//     carrying the label of the first endpoint.
//   - Edges live in an arena indexed by EdgeID. Their ends are rewritten in
//     place when an endpoint is contracted away.
//   - The live edge list is an order-irrelevant []EdgeID. Each edge remembers
//     its position, so removal is a constant-time swap with the last element
//     and EdgeAt(rng.Intn(EdgeCount())) is a uniform draw.
//   - Every vertex keeps its incident edges in a slice; each edge remembers its
//     slot in both endpoints' slices, so detaching is also a swap-remove.
//   - Live vertices are keyed by label for O(1) retirement.
//
// Parallel edges are distinct Edge records and are never merged. Self-loops
// are rejected by AddEdge and removed by Contract as soon as they would appear.
//
// Invariants (see Validate):
//
//	I1  every live edge has both ends live
//	I2  each live vertex's incident list is exactly the live edges touching it
//	I3  no live edge is a self-loop
//	I4  labels are unique among live vertices
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(label int) (VertexID, error)   // O(1) amortized
//	VertexByLabel(label int) (VertexID, bool) // O(1)
//	Vertices() []VertexID                     // O(V·log V), sorted by label
//
//	// Edge lifecycle
//	AddEdge(a, b VertexID) (EdgeID, error)    // O(1) amortized
//	EdgeTo(v, w VertexID) (EdgeID, bool)      // O(deg(v))
//	RemoveEdge(e EdgeID) error                // O(1)
//	EdgeAt(i int) EdgeID                      // O(1)
//
//	// Contraction
//	Contract(e EdgeID) (VertexID, error)      // O(deg(a)+deg(b))
//
//	// Views
//	AdjacencyList() []Adjacency               // O(V·log V + E)
//	NeighborArray() ([][]int, error)          // O(V + E)
//	Clone() *Graph                            // O(V + E)
//	Validate() error                          // O(V + E)
//
// Errors:
//
//	ErrNegativeLabel   - label below zero
//	ErrDuplicateLabel  - label already held by a live vertex
//	ErrVertexNotFound  - handle does not name a live vertex
//	ErrEdgeNotFound    - handle does not name a live edge
//	ErrLoopNotAllowed  - AddEdge(v, v)
//	ErrSparseLabels    - NeighborArray on labels that are not 0..V-1
//	ErrInvariant       - Validate found a broken invariant; also the target of
//	                     *InvariantError, which Opposite and ReplaceEnd panic with.
//
// A Graph is not safe for concurrent use. Give every goroutine its own graph
// (Clone or rebuild) and share only immutable inputs.
package core
