package gridgraph

import (
	"strings"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		Conn:              opts.Conn,
		Cost:              opts.Cost,
		PassableThreshold: opts.PassableThreshold,
		neighborOffsets:   offsets,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether c is inside the grid and not a wall.
// Complexity: O(1).
func (gg *GridGraph) Passable(c Cell) bool {
	return gg.InBounds(c.X, c.Y) && gg.CellValues[c.Y][c.X] >= gg.PassableThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// moveCost is the price of entering c.
func (gg *GridGraph) moveCost(c Cell) dijkstra.Cost {
	if gg.Cost == Terrain {
		v := gg.CellValues[c.Y][c.X]
		if v < 0 {
			return 0
		}

		return dijkstra.Cost(v)
	}

	return 1
}

// Neighbors lists the passable cells reachable from c in one move, in
// offset order (clockwise from north). A wall or out-of-bounds c has none.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Neighbors(c Cell) []dijkstra.Edge[Cell] {
	if !gg.Passable(c) {
		return nil
	}
	out := make([]dijkstra.Edge[Cell], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !gg.Passable(n) {
			continue
		}
		out = append(out, dijkstra.Edge[Cell]{To: n, Cost: gg.moveCost(n)})
	}

	return out
}

// NeighborFunc returns gg.Neighbors as a dijkstra.NeighborFunc.
// The grid is immutable, so the function is safe for concurrent use.
func (gg *GridGraph) NeighborFunc() dijkstra.NeighborFunc[Cell] {
	return gg.Neighbors
}

// ToCoreGraph converts the GridGraph into a directed *core.Graph.
// Each passable cell becomes a vertex with ID "x,y"; every move allowed by
// Neighbors becomes an edge with the same cost. Directed edges keep Terrain
// costs asymmetric.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y}
			if !gg.Passable(c) {
				continue
			}
			_ = g.AddVertex(c.String())
			for _, e := range gg.Neighbors(c) {
				_ = g.AddEdge(c.String(), e.To.String(), e.Cost)
			}
		}
	}

	return g
}

// Render draws the grid as text: '#' for walls, '.' for open cells and
// '*' for the cells of path. Rows are separated by '\n'.
// Complexity: O(W×H + len(path)).
func (gg *GridGraph) Render(path []Cell) string {
	onPath := make(map[Cell]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}
	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y}
			switch _, hit := onPath[c]; {
			case hit:
				sb.WriteByte('*')
			case !gg.Passable(c):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}
