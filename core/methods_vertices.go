// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/VertexByLabel/Vertices/VertexCount,
//       Label/Members/Degree/Incident, plus the private arena helpers.
// Determinism:
//   - Vertices() returns handles sorted by label asc.
//   - Incident() returns the live incident order, which is a deterministic
//     function of the operation history.

package core

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// AddVertex creates a live vertex with the given label.
//
// Steps:
//  1. Reject negative labels (ErrNegativeLabel).
//  2. Reject labels already held by a live vertex (ErrDuplicateLabel).
//  3. Append an arena slot whose member set is {label}.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(label int) (VertexID, error) {
	if label < 0 {
		return NoVertex, fmt.Errorf("AddVertex(%d): %w", label, ErrNegativeLabel)
	}
	if _, ok := g.byLabel[label]; ok {
		return NoVertex, fmt.Errorf("AddVertex(%d): %w", label, ErrDuplicateLabel)
	}

	v := g.newVertex(label, []int{label})
	g.byLabel[label] = v

	return v, nil
}

// VertexByLabel returns the live vertex carrying label.
// Complexity: O(1).
func (g *Graph) VertexByLabel(label int) (VertexID, bool) {
	v, ok := g.byLabel[label]
	return v, ok
}

// HasVertex reports whether v is a live vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.vertices) && g.vertices[v].live
}

// VertexCount returns the number of live vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.byLabel)
}

// Vertices returns the live vertex handles sorted by label.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []VertexID {
	labels := maps.Keys(g.byLabel)
	slices.Sort(labels)

	out := make([]VertexID, len(labels))
	for i, l := range labels {
		out[i] = g.byLabel[l]
	}

	return out
}

// Label returns the label of v. Retired vertices keep their last label.
func (g *Graph) Label(v VertexID) int {
	return g.vertices[v].label
}

// Members returns the sorted original labels fused into v.
// Complexity: O(k·log k) for k members.
func (g *Graph) Members(v VertexID) []int {
	out := slices.Clone(g.vertices[v].members)
	slices.Sort(out)
	return out
}

// Degree returns the number of live edges incident to v, counting parallel
// edges separately.
// Complexity: O(1).
func (g *Graph) Degree(v VertexID) int {
	return len(g.vertices[v].incident)
}

// Incident returns a copy of v's incident edge list.
// Complexity: O(deg(v)).
func (g *Graph) Incident(v VertexID) []EdgeID {
	return slices.Clone(g.vertices[v].incident)
}

// newVertex appends a live arena slot. It does not touch byLabel.
func (g *Graph) newVertex(label int, members []int) VertexID {
	g.vertices = append(g.vertices, vertex{label: label, members: members, live: true})
	return VertexID(len(g.vertices) - 1)
}

// retire marks v dead and releases its slices. The caller owns byLabel.
func (g *Graph) retire(v VertexID) {
	rec := &g.vertices[v]
	rec.live = false
	rec.incident = nil
	rec.members = nil
}
