// File: methods_clone.go
// Role: Deep copy of a graph, including retired arena slots.
// Determinism:
//   - Handles, live order and incident order are preserved exactly, so a clone
//     contracted with the same RNG stream behaves like the original.

package core

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of g. Mutating the clone never affects g.
// Complexity: O(V + E) over arena sizes.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		vertices: make([]vertex, len(g.vertices)),
		edges:    slices.Clone(g.edges),
		byLabel:  maps.Clone(g.byLabel),
		live:     slices.Clone(g.live),
	}
	for i, v := range g.vertices {
		c.vertices[i] = vertex{
			label:    v.label,
			members:  slices.Clone(v.members),
			incident: slices.Clone(v.incident),
			live:     v.live,
		}
	}
	if c.byLabel == nil {
		c.byLabel = make(map[int]VertexID)
	}

	return c
}
