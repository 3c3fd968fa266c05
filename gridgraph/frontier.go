package gridgraph

// frontierItem is a heap entry for a scouted cell at a given distance.
// Entries go stale when the cell is explored or its distance improves; stale
// entries are skipped on pop (lazy decrease-key).
type frontierItem struct {
	id   int
	dist float64
}

// frontierPQ is a min-heap ordered by (dist, id). The id tie-break makes the
// popped cell identical to the first minimum found by a scan in id order.
type frontierPQ []frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a frontierItem.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop is called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
