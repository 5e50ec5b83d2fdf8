// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, exactly once in lexicographic order.
//   • Minimum cut λ(K_n) = n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.

package builder

import "github.com/katalvlaran/mincut/core"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		vs, err := addLabeled(g, MethodComplete, 0, n)
		if err != nil {
			return err
		}

		return addClique(g, MethodComplete, vs)
	}
}
