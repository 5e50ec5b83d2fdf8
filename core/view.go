// File: view.go
// Role: Non-mutating views: adjacency dump, dense neighbor array, Validate.
// Determinism:
//   - Rows are sorted by label; neighbors follow incident order.

package core

import "fmt"

// AdjacencyList returns one row per live vertex, sorted by label. Each row
// lists the label at the far end of every incident edge, so parallel edges
// show up repeatedly.
// Complexity: O(V·log V + E).
func (g *Graph) AdjacencyList() []Adjacency {
	vs := g.Vertices()
	out := make([]Adjacency, 0, len(vs))
	for _, v := range vs {
		rec := g.vertices[v]
		row := Adjacency{Label: rec.label, Neighbors: make([]int, 0, len(rec.incident))}
		for _, e := range rec.incident {
			row.Neighbors = append(row.Neighbors, g.vertices[g.Opposite(e, v)].label)
		}
		out = append(out, row)
	}

	return out
}

// NeighborArray returns the graph as an array-of-neighbor-lists indexed by
// label. It requires the live labels to be exactly 0..V-1, which holds for
// any graph that has not been contracted.
// Complexity: O(V + E).
func (g *Graph) NeighborArray() ([][]int, error) {
	n := g.VertexCount()
	out := make([][]int, n)
	for label, v := range g.byLabel {
		if label >= n {
			return nil, fmt.Errorf("NeighborArray: label %d with %d vertices: %w", label, n, ErrSparseLabels)
		}
		row := make([]int, 0, len(g.vertices[v].incident))
		for _, e := range g.vertices[v].incident {
			row = append(row, g.vertices[g.Opposite(e, v)].label)
		}
		out[label] = row
	}

	return out, nil
}

// Validate checks invariants I1–I4 (see package doc) and returns an error
// wrapping ErrInvariant on the first violation.
// Complexity: O(V + E) over arena sizes.
func (g *Graph) Validate() error {
	// I4: byLabel maps each label to a live vertex carrying it
	liveCount := 0
	for i := range g.vertices {
		if g.vertices[i].live {
			liveCount++
		}
	}
	if liveCount != len(g.byLabel) {
		return fmt.Errorf("Validate: %d live vertices, %d labels: %w", liveCount, len(g.byLabel), ErrInvariant)
	}
	for label, v := range g.byLabel {
		if !g.HasVertex(v) || g.vertices[v].label != label {
			return fmt.Errorf("Validate: label %d maps to vertex %d: %w", label, v, ErrInvariant)
		}
	}

	// I1, I3 and the live list bookkeeping
	for i, e := range g.live {
		rec := g.edges[e]
		if rec.pos != i {
			return fmt.Errorf("Validate: edge %d at %d records pos %d: %w", e, i, rec.pos, ErrInvariant)
		}
		if rec.ends[0] == rec.ends[1] {
			return fmt.Errorf("Validate: edge %d is a self-loop on %d: %w", e, rec.ends[0], ErrInvariant)
		}
		for k, v := range rec.ends {
			if !g.HasVertex(v) {
				return fmt.Errorf("Validate: edge %d end %d is not live: %w", e, v, ErrInvariant)
			}
			inc := g.vertices[v].incident
			if rec.slots[k] < 0 || rec.slots[k] >= len(inc) || inc[rec.slots[k]] != e {
				return fmt.Errorf("Validate: edge %d missing from incident list of %d: %w", e, v, ErrInvariant)
			}
		}
	}

	// I2: incident lists hold live edges only, each once
	total := 0
	for i := range g.vertices {
		rec := g.vertices[i]
		if !rec.live {
			continue
		}
		for _, e := range rec.incident {
			if !g.HasEdge(e) || g.endIndex(e, VertexID(i)) < 0 {
				return fmt.Errorf("Validate: vertex %d lists foreign edge %d: %w", i, e, ErrInvariant)
			}
		}
		total += len(rec.incident)
	}
	if total != 2*len(g.live) {
		return fmt.Errorf("Validate: %d incidences for %d edges: %w", total, len(g.live), ErrInvariant)
	}

	return nil
}
