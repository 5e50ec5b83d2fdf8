// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_parallel.go - implementation of Parallel(k) constructor.
//
// Contract:
//   • k ≥ 1 (else ErrTooFewVertices).
//   • Two vertices 0 and 1 joined by k distinct parallel edges.
//   • Minimum cut = k; contraction performs zero steps on it.
//
// FromNeighbors cannot express this graph (it folds repeated adjacencies),
// so Parallel goes straight to core.AddEdge.

package builder

import "github.com/katalvlaran/mincut/core"

// Parallel returns a Constructor that builds a two-vertex multigraph with k edges.
// Complexity: O(k).
func Parallel(k int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodParallel, "k", k, MinParallelEdges); err != nil {
			return err
		}
		vs, err := addLabeled(g, MethodParallel, 0, 2)
		if err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			if err = link(g, MethodParallel, vs[0], vs[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
