// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_barbell.go - implementation of Barbell(k, bridges) constructor.
//
// Contract:
//   • k ≥ 2 and 1 ≤ bridges ≤ k-1 (else ErrTooFewVertices).
//   • Two cliques K_k: left 0..k-1, right k..2k-1.
//   • Bridge i joins i and k+i for i=0..bridges-1.
//   • Minimum cut λ = bridges, realized uniquely by {left, right} when
//     bridges < k-1. Every clique-internal cut costs at least k-1.
//
// Complexity:
//   • Time: O(k²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Barbell returns a Constructor that builds two k-cliques joined by bridges edges.
func Barbell(k, bridges int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodBarbell, "k", k, MinBarbellClique); err != nil {
			return err
		}
		if bridges < 1 || bridges > k-1 {
			return fmt.Errorf("%s: bridges=%d not in [1,%d]: %w", MethodBarbell, bridges, k-1, ErrTooFewVertices)
		}
		vs, err := addLabeled(g, MethodBarbell, 0, 2*k)
		if err != nil {
			return err
		}

		left, right := vs[:k], vs[k:]
		if err = addClique(g, MethodBarbell, left); err != nil {
			return err
		}
		if err = addClique(g, MethodBarbell, right); err != nil {
			return err
		}
		for i := 0; i < bridges; i++ {
			if err = link(g, MethodBarbell, left[i], right[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
