// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side 0..n1-1, right side n1..n1+n2-1.
//   • Emits every left-right pair, left-major.
//   • Minimum cut λ(K_{n1,n2}) = min(n1, n2).

package builder

import "github.com/katalvlaran/mincut/core"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, 1); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, 1); err != nil {
			return err
		}
		vs, err := addLabeled(g, MethodCompleteBipartite, 0, n1+n2)
		if err != nil {
			return err
		}

		left, right := vs[:n1], vs[n1:]
		for _, u := range left {
			for _, v := range right {
				if err = link(g, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
