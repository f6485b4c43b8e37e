// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/lvpath.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// CostModel selects how much a single move costs.
type CostModel int

const (
	// Unit charges 1 per move.
	Unit CostModel = iota
	// Terrain charges the value of the destination cell; negative values cost 0.
	Terrain
)

// Cell is a grid coordinate. It is the node type fed to dijkstra and yen.
type Cell struct {
	X, Y int
}

// String renders the cell as "x,y", the vertex ID used by ToCoreGraph.
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// GridOptions contains tunable parameters for grid traversal.
type GridOptions struct {
	// PassableThreshold specifies the minimum cell value that can be entered.
	// Cells below it are walls.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Cost chooses unit or terrain move costs.
	Cost CostModel
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassableThreshold=1 (values ≥1 are open), Conn=Conn4, Cost=Unit.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn4,
		Cost:              Unit,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built,
// so its NeighborFunc may be shared by concurrent searches.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	Cost              CostModel
	PassableThreshold int
	neighborOffsets   [][2]int
}
