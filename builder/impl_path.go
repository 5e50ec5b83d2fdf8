// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertices 0..n-1; edges i-(i+1) for i=0..n-2.
//   • Minimum cut λ(P_n) = 1.

package builder

import "github.com/katalvlaran/mincut/core"

// Path returns a Constructor that builds a simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		vs, err := addLabeled(g, MethodPath, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, MethodPath, vs[i], vs[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
