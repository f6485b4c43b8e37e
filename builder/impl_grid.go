// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) has index r*cols + c and ID cfg.idFn(index).
//   • Emits, per vertex in row-major order, the edge to the right then the
//     edge below (when inside the grid).
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that builds a rows×cols 4-connected lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.idFn(r*cols + c)
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, cfg.idFn(r*cols+c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, cfg.idFn((r+1)*cols+c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
