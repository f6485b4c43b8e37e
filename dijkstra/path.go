package dijkstra

import (
	"fmt"
	"strings"
)

// Path is an ordered, non-empty sequence of steps starting at (start, 0).
// Distances never decrease along a Path and each consecutive pair of steps
// corresponds to exactly one edge traversal.
type Path[T comparable] []Step[T]

// Cost returns the cumulative distance of the last step, or 0 for an empty Path.
func (p Path[T]) Cost() Cost {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1].Dist
}

// Len returns the number of steps (nodes) in the path.
func (p Path[T]) Len() int { return len(p) }

// Start returns the first node of the path.
// It panics on an empty Path, which no search ever returns.
func (p Path[T]) Start() T { return p[0].Node }

// End returns the last node of the path.
// It panics on an empty Path, which no search ever returns.
func (p Path[T]) End() T { return p[len(p)-1].Node }

// Nodes returns the node sequence of the path without distances.
func (p Path[T]) Nodes() []T {
	nodes := make([]T, len(p))
	for i, s := range p {
		nodes[i] = s.Node
	}

	return nodes
}

// Clone returns an independent copy of p.
func (p Path[T]) Clone() Path[T] {
	out := make(Path[T], len(p))
	copy(out, p)

	return out
}

// SameNodes reports whether p and q visit exactly the same node sequence,
// ignoring distances.
func (p Path[T]) SameNodes(q Path[T]) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Node != q[i].Node {
			return false
		}
	}

	return true
}

// Loopless reports whether no node occurs more than once in p.
func (p Path[T]) Loopless() bool {
	seen := make(map[T]struct{}, len(p))
	for _, s := range p {
		if _, dup := seen[s.Node]; dup {
			return false
		}
		seen[s.Node] = struct{}{}
	}

	return true
}

// extend returns a copy of p with one more step appended.
// The copy never aliases p, so sibling extensions stay independent.
func (p Path[T]) extend(s Step[T]) Path[T] {
	out := make(Path[T], len(p), len(p)+1)
	copy(out, p)

	return append(out, s)
}

// String renders the path as "A → B → C (cost 3)".
func (p Path[T]) String() string {
	var sb strings.Builder
	for i, s := range p {
		if i > 0 {
			sb.WriteString(" → ")
		}
		fmt.Fprintf(&sb, "%v", s.Node)
	}
	fmt.Fprintf(&sb, " (cost %d)", p.Cost())

	return sb.String()
}
