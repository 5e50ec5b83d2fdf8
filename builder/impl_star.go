// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Center is vertex 0; leaves 1..n-1 each get one spoke.
//   • Minimum cut λ(S_n) = 1.

package builder

import "github.com/katalvlaran/mincut/core"

// Star returns a Constructor that builds a star with center 0 and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		vs, err := addLabeled(g, MethodStar, 0, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = link(g, MethodStar, vs[0], vs[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
