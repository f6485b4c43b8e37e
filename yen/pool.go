package yen

import (
	"container/heap"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// pathSet is a trie of node sequences.
//
// It answers two questions in O(len(path)): was this exact node sequence
// seen before, and which nodes follow a given prefix among the stored
// sequences. The second one is how Yen finds the edges to exclude at a spur
// node without rescanning every accepted path.
type pathSet[T comparable] struct {
	root trieNode[T]
	size int
}

type trieNode[T comparable] struct {
	children map[T]*trieNode[T]
	terminal bool
}

// add stores the node sequence of p. It returns false if it was already present.
func (s *pathSet[T]) add(p dijkstra.Path[T]) bool {
	n := &s.root
	for _, st := range p {
		if n.children == nil {
			n.children = make(map[T]*trieNode[T])
		}
		child, ok := n.children[st.Node]
		if !ok {
			child = &trieNode[T]{}
			n.children[st.Node] = child
		}
		n = child
	}
	if n.terminal {
		return false
	}
	n.terminal = true
	s.size++

	return true
}

// contains reports whether the node sequence of p was added.
func (s *pathSet[T]) contains(p dijkstra.Path[T]) bool {
	n := s.walk(p)

	return n != nil && n.terminal
}

// successors returns the nodes that directly follow prefix in any stored
// sequence. The result is nil when no stored sequence starts with prefix.
// Safe for concurrent readers while nobody calls add.
func (s *pathSet[T]) successors(prefix dijkstra.Path[T]) map[T]*trieNode[T] {
	n := s.walk(prefix)
	if n == nil {
		return nil
	}

	return n.children
}

// walk follows prefix down the trie and returns the node reached, or nil.
func (s *pathSet[T]) walk(prefix dijkstra.Path[T]) *trieNode[T] {
	n := &s.root
	for _, st := range prefix {
		child, ok := n.children[st.Node]
		if !ok {
			return nil
		}
		n = child
	}

	return n
}

// candidatePool is the cross-iteration min-heap of not-yet-accepted paths,
// ordered by cost then by offer order, plus the set of every sequence ever
// offered so a path is never queued twice.
type candidatePool[T comparable] struct {
	pq   candidatePQ[T]
	seen pathSet[T]
	seq  uint64
}

// offer queues p unless its node sequence was seen before.
// It returns whether p was queued.
func (c *candidatePool[T]) offer(p dijkstra.Path[T]) bool {
	if !c.seen.add(p) {
		return false
	}
	heap.Push(&c.pq, candidate[T]{path: p, seq: c.seq})
	c.seq++

	return true
}

// pop removes and returns the cheapest queued path.
func (c *candidatePool[T]) pop() (dijkstra.Path[T], bool) {
	if c.pq.Len() == 0 {
		return nil, false
	}

	return heap.Pop(&c.pq).(candidate[T]).path, true
}

// Len returns the number of queued paths.
func (c *candidatePool[T]) Len() int { return c.pq.Len() }

type candidate[T comparable] struct {
	path dijkstra.Path[T]
	seq  uint64
}

// candidatePQ implements heap.Interface over candidates.
type candidatePQ[T comparable] []candidate[T]

func (pq candidatePQ[T]) Len() int { return len(pq) }

func (pq candidatePQ[T]) Less(i, j int) bool {
	ci, cj := pq[i].path.Cost(), pq[j].path.Cost()
	if ci != cj {
		return ci < cj
	}

	return pq[i].seq < pq[j].seq
}

func (pq candidatePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ[T]) Push(x any) { *pq = append(*pq, x.(candidate[T])) }

func (pq *candidatePQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
