// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// helpers.go - shared vertex/edge emission with method-tagged errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// addVertices inserts vertices 0..n-1 via cfg.idFn in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts u→v with a cost drawn from cfg.weightFn.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
