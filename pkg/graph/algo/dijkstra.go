package algo

import (
	"container/heap"
	"math"

	errs "github.com/heliosviz/graphkit/pkg/errors"
	"github.com/heliosviz/graphkit/pkg/graph"
)

// Path is a weighted shortest path.
type Path struct {
	Nodes []string `json:"nodes"`
	Cost  float64  `json:"cost"`
}

// Len returns the number of edges on the path.
func (p *Path) Len() int {
	if p == nil || len(p.Nodes) == 0 {
		return 0
	}
	return len(p.Nodes) - 1
}

// ShortestPath returns a minimum-weight path from src to dst over the
// undirected edges of g using Dijkstra's algorithm with a binary heap.
//
// ShortestPath returns (nil, nil) when dst is unreachable from src. It returns
// a NODE_NOT_FOUND error when either endpoint is not a node of g and an
// INVALID_PARAMETER error when any edge weight is negative or NaN.
//
// Among equal tentative distances the node with the lower position is settled
// first and a predecessor is replaced only by a strictly shorter distance, so
// the returned path is deterministic even when several optimal paths exist.
func ShortestPath(g *graph.Graph, src, dst string) (*Path, error) {
	if err := validateWeights(g); err != nil {
		return nil, err
	}
	ix := graph.NewIndex(g)
	s, ok := ix.Lookup(src)
	if !ok {
		return nil, errs.NodeNotFound(src)
	}
	t, ok := ix.Lookup(dst)
	if !ok {
		return nil, errs.NodeNotFound(dst)
	}

	n := ix.Len()
	dist := make([]float64, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range n {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[s] = 0

	pq := &distHeap{{node: s, dist: 0}}
	for pq.Len() > 0 {
		it := heap.Pop(pq).(distItem)
		if done[it.node] {
			continue
		}
		done[it.node] = true
		if it.node == t {
			break
		}
		for _, a := range ix.Adj[it.node] {
			if done[a.To] {
				continue
			}
			if nd := it.dist + a.Weight; nd < dist[a.To] {
				dist[a.To] = nd
				prev[a.To] = it.node
				heap.Push(pq, distItem{node: a.To, dist: nd})
			}
		}
	}

	if math.IsInf(dist[t], 1) {
		return nil, nil
	}
	var rev []int
	for v := t; v != -1; v = prev[v] {
		rev = append(rev, v)
	}
	nodes := make([]string, len(rev))
	for i, v := range rev {
		nodes[len(rev)-1-i] = ix.IDs[v]
	}
	return &Path{Nodes: nodes, Cost: dist[t]}, nil
}

func validateWeights(g *graph.Graph) error {
	for _, e := range g.Edges {
		if err := errs.ValidateWeight(e.Weight); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidParameter, err, "edge %s->%s", e.Source, e.Target)
		}
	}
	return nil
}

type distItem struct {
	node int
	dist float64
}

// distHeap is a min-heap on (dist, node).
type distHeap []distItem

func (h distHeap) Len() int { return len(h) }
func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].node < h[j].node
}
func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x any)   { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() any {
	old := *h
	it := old[len(old)-1]
	*h = old[:len(old)-1]
	return it
}
