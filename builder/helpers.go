// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// addLabeled inserts vertices labelled offset..offset+n-1 into g and returns
// their handles in label order.
// Complexity: O(n).
func addLabeled(g *core.Graph, method string, offset, n int) ([]core.VertexID, error) {
	vs := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		v, err := g.AddVertex(offset + i)
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%d): %w", method, offset+i, err)
		}
		vs[i] = v
	}

	return vs, nil
}

// link adds one edge u-v, wrapping any core error with method context.
// Complexity: O(1) amortized.
func link(g *core.Graph, method string, u, v core.VertexID) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, g.Label(u), g.Label(v), err)
	}

	return nil
}

// addClique connects every unordered pair of vs in lexicographic order.
// Complexity: O(len(vs)²).
func addClique(g *core.Graph, method string, vs []core.VertexID) error {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if err := link(g, method, vs[i], vs[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
