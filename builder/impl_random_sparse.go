// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).
//   - Deterministic outcomes for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		vs, err := addLabeled(g, MethodRandomSparse, 0, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == MaxProbability:
					keep = true
				case p == MinProbability:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = link(g, MethodRandomSparse, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
