package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// according to gg.Conn connectivity. Components are listed in row-major
// order of their first cell; cells within a component in BFS order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	labels, order, n := gg.label()
	comps := make([][]Cell, n)
	for _, idx := range order {
		comps[labels[idx]] = append(comps[labels[idx]], gg.Coordinate(idx))
	}

	return comps
}

// Connected reports whether b can be reached from a. A wall is connected
// to nothing. Moves are symmetric, so this is plain component membership.
// Returns ErrOutOfBounds if either cell lies outside the grid.
func (gg *GridGraph) Connected(a, b Cell) (bool, error) {
	if !gg.InBounds(a.X, a.Y) || !gg.InBounds(b.X, b.Y) {
		return false, ErrOutOfBounds
	}
	if !gg.Passable(a) || !gg.Passable(b) {
		return false, nil
	}
	labels, _, _ := gg.label()

	return labels[gg.index(a.X, a.Y)] == labels[gg.index(b.X, b.Y)], nil
}

// label assigns a component number to every passable cell (-1 for walls).
// It also returns the discovery order of the flood and the number of components.
func (gg *GridGraph) label() (labels, order []int, n int) {
	labels = make([]int, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}
	order = make([]int, 0, len(labels))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if labels[i0] >= 0 || !gg.Passable(Cell{X: x, Y: y}) {
				continue
			}
			// BFS to flood the component
			start := len(order)
			order = append(order, i0)
			labels[i0] = n
			for qi := start; qi < len(order); qi++ {
				for _, e := range gg.Neighbors(gg.Coordinate(order[qi])) {
					vi := gg.index(e.To.X, e.To.Y)
					if labels[vi] < 0 {
						labels[vi] = n
						order = append(order, vi)
					}
				}
			}
			n++
		}
	}

	return labels, order, n
}
