// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim is the cycle over 0..n-2; hub is vertex n-1 with a spoke to every rim vertex.
//   • Emission order: rim edges first, then spokes in rim order.
//   • Minimum cut λ(W_n) = 3.

package builder

import "github.com/katalvlaran/mincut/core"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		vs, err := addLabeled(g, MethodWheel, 0, n)
		if err != nil {
			return err
		}

		rim, hub := n-1, vs[n-1]
		for i := 0; i < rim; i++ {
			if err = link(g, MethodWheel, vs[i], vs[(i+1)%rim]); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err = link(g, MethodWheel, hub, vs[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
