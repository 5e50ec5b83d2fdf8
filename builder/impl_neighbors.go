// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_neighbors.go - implementation of FromNeighbors(nb) constructor.
//
// Contract:
//   • Vertex set is exactly {0..len(nb)-1}, added in ascending order.
//   • Row i is scanned in order; for each neighbor j:
//       – j == i            → ErrSelfAdjacency
//       – j ∉ [0,len(nb))   → ErrNeighborRange
//       – otherwise an edge i-j is created unless j already has one to i.
//   • The existence check looks only at j's own incident list; no global edge
//     index is kept. Row i listing j and row j listing i yield one edge.
//
// Complexity:
//   • Time: O(V + Σ_i Σ_{j∈nb[i]} deg(j)).
//   • Space: O(V) for the handle slice.
//
// Determinism:
//   • Edge emission order follows (row asc, column asc).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// FromNeighbors returns a Constructor that builds the graph described by an
// array-of-neighbor-lists with 0-based indices.
func FromNeighbors(nb [][]int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		vs, err := addLabeled(g, MethodFromNeighbors, 0, len(nb))
		if err != nil {
			return err
		}

		for i, row := range nb {
			for col, j := range row {
				if j == i {
					return fmt.Errorf("%s: row %d col %d: %w", MethodFromNeighbors, i, col, ErrSelfAdjacency)
				}
				if j < 0 || j >= len(nb) {
					return fmt.Errorf("%s: row %d col %d: neighbor %d with %d vertices: %w",
						MethodFromNeighbors, i, col, j, len(nb), ErrNeighborRange)
				}
				// the reverse direction (or an earlier copy) is already present
				if _, ok := g.EdgeTo(vs[j], vs[i]); ok {
					continue
				}
				if err = link(g, MethodFromNeighbors, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
