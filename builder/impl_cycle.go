// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices 0..n-1; edges i-(i+1)%n for i=0..n-1.
//   • Minimum cut λ(C_n) = 2.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/mincut/core"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		vs, err := addLabeled(g, MethodCycle, 0, n)
		if err != nil {
			return err
		}

		// close the ring with n-1 → 0
		for i := 0; i < n; i++ {
			if err = link(g, MethodCycle, vs[i], vs[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
