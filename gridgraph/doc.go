// Package gridgraph treats a 2D grid of cells as a graph for the searches
// of packages dijkstra and yen.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable PassableThreshold.
//     Cells below it are walls.
//   - Neighbors / NeighborFunc yield the moves out of a Cell, with unit or
//     terrain cost, under Conn4 or Conn8 connectivity.
//   - ConnectedComponents and Connected answer reachability without a search.
//   - ParseRunes reads a text map with S and E markers; Render draws a path on it.
//   - ToCoreGraph converts to a *core.Graph with "x,y" vertex IDs.
//
// Why:
//
//   - Game maps and mazes: shortest and alternative routes between two cells.
//   - Terrain planning: routes priced by the cost of the cells they cross.
//
// Complexity:
//
//   - Neighbors:           O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.PassableThreshold: minimum value that can be entered.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.Cost: Unit (1 per move) or Terrain (value of the destination cell).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMarkerMissing: a text map lacks exactly one S and one E.
//   - ErrOutOfBounds: a cell outside the grid was passed to Connected.
package gridgraph
