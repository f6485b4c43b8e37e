package gridgraph

import (
	"fmt"
	"strings"
)

// ParseRunes turns a text map into grid values plus its start and end cells.
//
// Each line is a row. '#' is a wall (0), a digit '1'..'9' is an open cell
// with that terrain value, 'S' and 'E' mark the start and end (value 1), and
// any other rune is an open cell with value 1. Trailing blank lines and a
// trailing '\r' on each line are ignored.
//
// Returns ErrEmptyGrid, ErrNonRectangular (rows counted in runes), or
// ErrMarkerMissing when S or E is absent or repeated.
func ParseRunes(text string) (values [][]int, start, end Cell, err error) {
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimRight(lines[len(lines)-1], "\r") == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, Cell{}, Cell{}, ErrEmptyGrid
	}

	var starts, ends int
	width := -1
	values = make([][]int, 0, len(lines))
	for y, line := range lines {
		runes := []rune(strings.TrimRight(line, "\r"))
		if width < 0 {
			width = len(runes)
		} else if len(runes) != width {
			return nil, Cell{}, Cell{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(runes), width)
		}
		row := make([]int, len(runes))
		for x, r := range runes {
			switch {
			case r == '#':
				row[x] = 0
			case r >= '1' && r <= '9':
				row[x] = int(r - '0')
			case r == 'S':
				row[x] = 1
				start = Cell{X: x, Y: y}
				starts++
			case r == 'E':
				row[x] = 1
				end = Cell{X: x, Y: y}
				ends++
			default:
				row[x] = 1
			}
		}
		values = append(values, row)
	}
	if width == 0 {
		return nil, Cell{}, Cell{}, ErrEmptyGrid
	}
	if starts != 1 || ends != 1 {
		return nil, Cell{}, Cell{}, fmt.Errorf("%w: found %d S and %d E", ErrMarkerMissing, starts, ends)
	}

	return values, start, end, nil
}
