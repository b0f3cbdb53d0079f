package gamemap

import (
	"container/heap"
	"math"
)

const (
	orthogonalCost = 1.0
	diagonalCost   = 1.45
)

// Exit is a reachable neighbour of a tile and the cost of stepping onto it.
type Exit struct {
	Index int
	Cost  float64
}

// Neighbors lists the in-bounds, unblocked tiles around idx: the four
// cardinal steps first, then the diagonals. A diagonal step is offered even
// when both orthogonal tiles beside it are walls.
func (m *Map) Neighbors(idx int) []Exit {
	p := m.PointOf(idx)
	exits := make([]Exit, 0, 8)
	try := func(dx, dy int, cost float64) {
		x, y := p.X+dx, p.Y+dy
		if m.IsWalkable(x, y) {
			exits = append(exits, Exit{Index: m.Index(x, y), Cost: cost})
		}
	}
	try(-1, 0, orthogonalCost)
	try(1, 0, orthogonalCost)
	try(0, -1, orthogonalCost)
	try(0, 1, orthogonalCost)
	try(-1, -1, diagonalCost)
	try(1, -1, diagonalCost)
	try(-1, 1, diagonalCost)
	try(1, 1, diagonalCost)
	return exits
}

// Distance is the Euclidean distance between two tile indices.
func (m *Map) Distance(a, b int) float64 {
	return Distance(m.PointOf(a), m.PointOf(b))
}

// Distance is the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ShortestPath runs A* from start to goal over Neighbors using the Euclidean
// heuristic. Steps includes both endpoints, so Steps[1] is the first move.
// The goal itself must be unblocked to be reachable.
func (m *Map) ShortestPath(start, goal int) ([]int, bool) {
	n := len(m.Tiles)
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return nil, false
	}
	if start == goal {
		return []int{start}, true
	}

	g := make(map[int]float64, 64)
	parent := make(map[int]int, 64)
	closed := make(map[int]bool, 64)
	open := &nodeHeap{}
	g[start] = 0
	heap.Push(open, node{idx: start, f: m.Distance(start, goal)})

	for open.Len() > 0 {
		cur := heap.Pop(open).(node)
		if closed[cur.idx] {
			continue
		}
		if cur.idx == goal {
			return unwind(parent, start, goal), true
		}
		closed[cur.idx] = true
		for _, e := range m.Neighbors(cur.idx) {
			if closed[e.Index] {
				continue
			}
			cost := g[cur.idx] + e.Cost
			if old, seen := g[e.Index]; seen && cost >= old {
				continue
			}
			g[e.Index] = cost
			parent[e.Index] = cur.idx
			heap.Push(open, node{idx: e.Index, f: cost + m.Distance(e.Index, goal)})
		}
	}
	return nil, false
}

func unwind(parent map[int]int, start, goal int) []int {
	steps := []int{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		steps = append(steps, cur)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

type node struct {
	idx int
	f   float64
}

// nodeHeap orders by estimated total cost, then by index so equal-cost
// searches always expand in the same order.
type nodeHeap []node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].idx < h[j].idx
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}
