// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/EdgeTo/EdgeAt/Edges/EdgeCount,
//       Ends/Opposite/ReplaceEnd, plus attach/detach on incident slices.
// Determinism:
//   - The live edge list order is a pure function of the operation history:
//     AddEdge appends, RemoveEdge moves the last live edge into the hole.
// Complexity:
//   - Every mutation here is O(1); EdgeTo is O(deg(v)).

package core

import (
	"fmt"
	"slices"
)

// AddEdge creates a new undirected edge between two live vertices.
// Parallel edges are always allowed and stay distinct.
//
// Steps:
//  1. Validate both handles (ErrVertexNotFound).
//  2. Reject a == b (ErrLoopNotAllowed).
//  3. Append the edge record, push it on the live list, attach it to both ends.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b VertexID) (EdgeID, error) {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrVertexNotFound)
	}
	if a == b {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}

	e := EdgeID(len(g.edges))
	g.edges = append(g.edges, edge{ends: [2]VertexID{a, b}, pos: len(g.live)})
	g.live = append(g.live, e)
	g.attach(e, 0)
	g.attach(e, 1)

	return e, nil
}

// RemoveEdge deletes a live edge from the live list and from both endpoints'
// incident lists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(e EdgeID) error {
	if !g.HasEdge(e) {
		return fmt.Errorf("RemoveEdge(%d): %w", e, ErrEdgeNotFound)
	}

	// swap-remove from the live list
	rec := &g.edges[e]
	last := len(g.live) - 1
	moved := g.live[last]
	g.live[rec.pos] = moved
	g.edges[moved].pos = rec.pos
	g.live = g.live[:last]
	rec.pos = -1

	g.detach(e, 0)
	g.detach(e, 1)

	return nil
}

// HasEdge reports whether e is a live edge of g.
// Complexity: O(1).
func (g *Graph) HasEdge(e EdgeID) bool {
	return e >= 0 && int(e) < len(g.edges) && g.edges[e].pos >= 0
}

// EdgeTo returns some live edge joining v and w, looking only at v's own
// incident list. No global edge index exists.
// Complexity: O(deg(v)).
func (g *Graph) EdgeTo(v, w VertexID) (EdgeID, bool) {
	if !g.HasVertex(v) {
		return -1, false
	}
	for _, e := range g.vertices[v].incident {
		ends := g.edges[e].ends
		if (ends[0] == v && ends[1] == w) || (ends[0] == w && ends[1] == v) {
			return e, true
		}
	}

	return -1, false
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.live)
}

// EdgeAt returns the i-th live edge, 0 ≤ i < EdgeCount(). The order is
// arbitrary but stable between mutations, which is all a uniform draw needs.
// Complexity: O(1).
func (g *Graph) EdgeAt(i int) EdgeID {
	return g.live[i]
}

// Edges returns a copy of the live edge list.
// Complexity: O(E).
func (g *Graph) Edges() []EdgeID {
	return slices.Clone(g.live)
}

// Ends returns both ends of e in storage order.
func (g *Graph) Ends(e EdgeID) (VertexID, VertexID) {
	ends := g.edges[e].ends
	return ends[0], ends[1]
}

// Opposite returns the end of e that is not v.
// It panics with *InvariantError if v is not an end of e: correct contraction
// bookkeeping never asks that question.
// Complexity: O(1).
func (g *Graph) Opposite(e EdgeID, v VertexID) VertexID {
	ends := g.edges[e].ends
	switch v {
	case ends[0]:
		return ends[1]
	case ends[1]:
		return ends[0]
	}
	panic(&InvariantError{Op: "Opposite", Edge: e, Vertex: v})
}

// ReplaceEnd rewrites the end of e that is old to point at nu, moving e from
// old's incident list to nu's. It panics with *InvariantError if old is not an
// end of e.
// Complexity: O(1).
func (g *Graph) ReplaceEnd(e EdgeID, old, nu VertexID) {
	k := g.endIndex(e, old)
	if k < 0 {
		panic(&InvariantError{Op: "ReplaceEnd", Edge: e, Vertex: old})
	}
	g.detach(e, k)
	g.edges[e].ends[k] = nu
	g.attach(e, k)
}

// endIndex returns 0 or 1 for the slot of v in e's ends, or -1.
func (g *Graph) endIndex(e EdgeID, v VertexID) int {
	ends := g.edges[e].ends
	switch v {
	case ends[0]:
		return 0
	case ends[1]:
		return 1
	}
	return -1
}

// attach appends e to the incident list of its k-th end and records the slot.
func (g *Graph) attach(e EdgeID, k int) {
	rec := &g.edges[e]
	v := &g.vertices[rec.ends[k]]
	rec.slots[k] = len(v.incident)
	v.incident = append(v.incident, e)
}

// detach swap-removes e from the incident list of its k-th end. The edge that
// fills the hole gets its slot for that vertex updated; since no live edge is
// a self-loop, exactly one of its ends is that vertex.
func (g *Graph) detach(e EdgeID, k int) {
	rec := &g.edges[e]
	owner := rec.ends[k]
	v := &g.vertices[owner]

	i := rec.slots[k]
	last := len(v.incident) - 1
	moved := v.incident[last]
	v.incident[i] = moved
	v.incident = v.incident[:last]
	if moved != e {
		m := &g.edges[moved]
		if m.ends[0] == owner {
			m.slots[0] = i
		} else {
			m.slots[1] = i
		}
	}
	rec.slots[k] = -1
}
