// File: methods_contract.go
// Role: The contraction step: fuse the two ends of one edge into a new vertex.
// Determinism:
//   - Incident lists are drained from the back, so for a fixed history the
//     resulting live edge order (and therefore the next random draw) is fixed.

package core

import "fmt"

// Contract fuses the two ends of the live edge e and returns the new vertex.
//
// Steps:
//  1. Remove e from the live list and from both endpoints' incident lists.
//  2. Allocate a merged vertex carrying the label of e's first end; its
//     members are the union of both endpoints' members.
//  3. For each original endpoint, drain its incident list. An edge whose far
//     end is the other original endpoint would become a self-loop and is
//     removed from the graph; every other edge has its end rewritten to the
//     merged vertex in place.
//  4. Retire both endpoints and register the merged vertex under the label.
//
// Complexity: O(deg(a) + deg(b)) plus O(min(|members|)) for the member union.
func (g *Graph) Contract(e EdgeID) (VertexID, error) {
	if !g.HasEdge(e) {
		return NoVertex, fmt.Errorf("Contract(%d): %w", e, ErrEdgeNotFound)
	}
	a, b := g.Ends(e)
	if err := g.RemoveEdge(e); err != nil {
		return NoVertex, fmt.Errorf("Contract(%d): %w", e, err)
	}

	label := g.vertices[a].label
	m := g.newVertex(label, fuseMembers(g.vertices[a].members, g.vertices[b].members))

	g.redirect(a, b, m)
	g.redirect(b, a, m)

	delete(g.byLabel, g.vertices[b].label)
	g.retire(a)
	g.retire(b)
	g.byLabel[label] = m

	return m, nil
}

// redirect moves every edge incident to from onto m, removing edges whose
// far end is other.
func (g *Graph) redirect(from, other, m VertexID) {
	for {
		incident := g.vertices[from].incident
		if len(incident) == 0 {
			return
		}
		f := incident[len(incident)-1]
		if g.Opposite(f, from) == other {
			// self-loop after the merge; RemoveEdge cannot fail on a live edge
			_ = g.RemoveEdge(f)
			continue
		}
		g.ReplaceEnd(f, from, m)
	}
}

// fuseMembers appends the shorter list onto the longer one. Both inputs
// belong to vertices about to be retired, so aliasing is harmless.
func fuseMembers(x, y []int) []int {
	if len(x) < len(y) {
		x, y = y, x
	}
	return append(x, y...)
}
