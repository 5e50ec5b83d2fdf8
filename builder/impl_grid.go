// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) has label r*cols + c (row-major).
//   • 4-neighborhood; for each (r,c) emit Right then Bottom if present.
//   • Minimum cut: 2 when rows, cols ≥ 2 (a corner has degree 2);
//     1 for a 1×n strip with n ≥ 2; 0 edges for 1×1.
//
// Complexity:
//   • Time: O(rows·cols).

package builder

import "github.com/katalvlaran/mincut/core"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		vs, err := addLabeled(g, MethodGrid, 0, rows*cols)
		if err != nil {
			return err
		}

		at := func(r, c int) core.VertexID { return vs[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = link(g, MethodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(g, MethodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
