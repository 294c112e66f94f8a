package analysis

import (
	"github.com/heliosviz/graphkit/pkg/graph"
	"github.com/heliosviz/graphkit/pkg/graph/algo"
)

// ShortestPath returns the unweighted shortest path from src to dst over the
// undirected edges of g, memoized by (src, dst). It returns false when dst is
// unreachable or either id is not a node of g. The path from a node to itself
// is that node alone.
func (a *Analyzer) ShortestPath(src, dst string, g *graph.Graph) ([]string, bool) {
	ix := a.bind(g)
	p, ok := a.path(ix, src, dst)
	if !ok || p == nil {
		return nil, false
	}
	return append([]string(nil), p...), true
}

// PathLength returns the hop count of the memoized shortest path.
func (a *Analyzer) PathLength(src, dst string, g *graph.Graph) (int, bool) {
	p, ok := a.ShortestPath(src, dst, g)
	if !ok {
		return 0, false
	}
	return len(p) - 1, true
}

// path returns the memoized path, computing and storing it on a miss. The
// second result is false only when an id is unknown.
func (a *Analyzer) path(ix *graph.Index, src, dst string) ([]string, bool) {
	s, ok := ix.Lookup(src)
	if !ok {
		return nil, false
	}
	d, ok := ix.Lookup(dst)
	if !ok {
		return nil, false
	}
	if p, ok := a.memo.lookup(src, dst); ok {
		return p, true
	}
	p := pathIDs(ix, algo.BFS(ix, s).PathTo(d))
	a.memo.Put(src, dst, p)
	return p, true
}
