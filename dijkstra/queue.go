package dijkstra

// stepItem is a heap entry: a step plus its push sequence number.
type stepItem[T comparable] struct {
	step Step[T]
	seq  uint64
}

// stepPQ is a min-heap of stepItem ordered by distance, then push order.
// Stale entries are left in place and skipped on pop.
type stepPQ[T comparable] []stepItem[T]

// Len returns the number of items in the heap.
func (pq stepPQ[T]) Len() int { return len(pq) }

// Less orders by distance ascending; equal distances pop first-pushed first.
func (pq stepPQ[T]) Less(i, j int) bool {
	if pq[i].step.Dist != pq[j].step.Dist {
		return pq[i].step.Dist < pq[j].step.Dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq stepPQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a stepItem[T].
func (pq *stepPQ[T]) Push(x any) { *pq = append(*pq, x.(stepItem[T])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *stepPQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
