package algo

import "github.com/heliosviz/graphkit/pkg/graph"

// Tree is an unweighted breadth-first search tree rooted at Source.
// Parent[v] is the position v was discovered from (-1 for the root and for
// unreachable nodes); Dist[v] is the hop count (-1 when unreachable).
type Tree struct {
	Source int
	Parent []int
	Dist   []int
	Order  []int // Positions in discovery order, Source first
}

// BFS explores ix undirected from position src. Arcs are followed in edge
// order and the first discovery of a node fixes its parent, so the tree is
// deterministic for a given snapshot.
func BFS(ix *graph.Index, src int) Tree {
	n := ix.Len()
	t := Tree{
		Source: src,
		Parent: make([]int, n),
		Dist:   make([]int, n),
		Order:  make([]int, 0, n),
	}
	for i := range n {
		t.Parent[i] = -1
		t.Dist[i] = -1
	}
	t.Dist[src] = 0
	t.Order = append(t.Order, src)

	for head := 0; head < len(t.Order); head++ {
		v := t.Order[head]
		for _, a := range ix.Adj[v] {
			if t.Dist[a.To] >= 0 {
				continue
			}
			t.Dist[a.To] = t.Dist[v] + 1
			t.Parent[a.To] = v
			t.Order = append(t.Order, a.To)
		}
	}
	return t
}

// Reachable reports whether dst was reached from the root.
func (t Tree) Reachable(dst int) bool { return t.Dist[dst] >= 0 }

// PathTo returns the positions from the root to dst inclusive, or nil when
// dst is unreachable. The path to the root itself is a single position.
func (t Tree) PathTo(dst int) []int {
	if !t.Reachable(dst) {
		return nil
	}
	path := make([]int, t.Dist[dst]+1)
	for i, v := len(path)-1, dst; i >= 0; i, v = i-1, t.Parent[v] {
		path[i] = v
	}
	return path
}
