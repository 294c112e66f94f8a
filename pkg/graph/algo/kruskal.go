package algo

import (
	"cmp"
	"slices"

	"github.com/heliosviz/graphkit/pkg/graph"
)

// Forest is a minimum spanning forest: one spanning tree per connected
// component. Edges are listed in selection order.
type Forest struct {
	Edges  []graph.Edge `json:"edges"`
	Weight float64      `json:"weight"`
}

// MinimumSpanningForest computes a minimum spanning forest of g with
// Kruskal's algorithm. Edges are sorted by weight with a stable sort, so equal
// weights keep their input order. Dangling edges and self-loops are never
// selected. An INVALID_PARAMETER error is returned when any weight is negative
// or NaN.
func MinimumSpanningForest(g *graph.Graph) (Forest, error) {
	if err := validateWeights(g); err != nil {
		return Forest{}, err
	}
	ix := graph.NewIndex(g)

	type candidate struct {
		s, t int
		e    graph.Edge
	}
	cands := make([]candidate, 0, ix.Edges)
	for _, e := range g.Edges {
		s, ok1 := ix.Lookup(e.Source)
		t, ok2 := ix.Lookup(e.Target)
		if !ok1 || !ok2 || s == t {
			continue
		}
		cands = append(cands, candidate{s: s, t: t, e: e})
	}
	slices.SortStableFunc(cands, func(a, b candidate) int {
		return cmp.Compare(a.e.Weight, b.e.Weight)
	})

	uf := newUnionFind(ix.Len())
	f := Forest{Edges: []graph.Edge{}}
	for _, c := range cands {
		if !uf.union(c.s, c.t) {
			continue
		}
		f.Edges = append(f.Edges, c.e)
		f.Weight += c.e.Weight
		if len(f.Edges) == ix.Len()-1 {
			break
		}
	}
	return f, nil
}

// unionFind is a disjoint-set forest with path compression and union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}
	return root
}

// union merges the sets of a and b and reports whether they were disjoint.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	return true
}
