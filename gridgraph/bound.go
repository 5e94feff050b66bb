package gridgraph

import (
	"container/heap"
)

// LowerBound returns the cheapest cost of moving from `from` to `to` when
// every 4-connected step is allowed, i.e. with no run-length rules at all.
// The start cell is free and each entered cell costs Cost(cell).
// Any run-length constrained search between the same endpoints costs at
// least this much. ok is false when `to` cannot be reached or either
// endpoint is not traversable.
//
// Behavior:
//  1. Plain Dijkstra over cell indices with a lazy min-heap.
//  2. Stop as soon as `to` is popped.
//
// Complexity: O(W·H · log(W·H)).
// Memory:     O(W·H) for distances and heap entries.
func (g *Grid) LowerBound(from, to Coordinate) (cost int64, ok bool) {
	if !g.IsTraversable(from) || !g.IsTraversable(to) {
		return 0, false
	}

	dist := make(map[Coordinate]int64, g.Cells())
	dist[from] = 0
	pq := cellPQ{{at: from, dist: 0}}

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(cellItem)
		if it.at == to {
			return it.dist, true
		}
		if it.dist > dist[it.at] {
			continue // stale
		}
		for _, d := range Directions {
			next := it.at.Add(d)
			if !g.IsTraversable(next) {
				continue
			}
			nd := it.dist + int64(g.Cost(next))
			if best, seen := dist[next]; seen && nd >= best {
				continue
			}
			dist[next] = nd
			heap.Push(&pq, cellItem{at: next, dist: nd})
		}
	}

	return 0, false
}

type cellItem struct {
	at   Coordinate
	dist int64
}

// cellPQ is a min-heap of cellItem ordered by dist.
type cellPQ []cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
