package analysis

import (
	"cmp"
	"maps"
	"slices"

	errs "github.com/heliosviz/graphkit/pkg/errors"
	"github.com/heliosviz/graphkit/pkg/graph"
	"github.com/heliosviz/graphkit/pkg/graph/algo"
)

// CentralityMeasures are the structural importance scores of one node.
type CentralityMeasures struct {
	// Degree is the number of incident edges divided by the total edge count.
	Degree float64 `json:"degree"`
	// Betweenness is the fraction of unordered node pairs whose memoized
	// shortest path has the node as an interior vertex.
	Betweenness float64 `json:"betweenness"`
	// Closeness is the number of reachable nodes divided by the sum of hop
	// distances to them; 0 when nothing is reachable.
	Closeness float64 `json:"closeness"`
}

// CentralityMeasures returns a copy of the centrality cache.
func (a *Analyzer) CentralityMeasures() map[string]CentralityMeasures {
	return maps.Clone(a.centrality)
}

// NodeCentrality computes and caches the centrality of id in g. It returns a
// NODE_NOT_FOUND error when id is not a node of g.
//
// Betweenness needs the path of every unordered pair; paths already in the
// memo are reused. Use [Analyzer.AllCentrality] to score every node at once.
func (a *Analyzer) NodeCentrality(id string, g *graph.Graph) (CentralityMeasures, error) {
	ix := a.bind(g)
	v, ok := ix.Lookup(id)
	if !ok {
		return CentralityMeasures{}, errs.NodeNotFound(id)
	}
	if c, ok := a.centrality[id]; ok {
		return c, nil
	}

	if err := a.fillPairs(ix); err != nil {
		return CentralityMeasures{}, err
	}
	n := ix.Len()
	through := 0
	for i := range n {
		for j := i + 1; j < n; j++ {
			p, _ := a.memo.lookup(ix.IDs[i], ix.IDs[j])
			if hasInterior(p, id) {
				through++
			}
		}
	}

	var tree *algo.Tree
	reachable, distance := 0, 0
	for u := range n {
		if u == v {
			continue
		}
		p, ok := a.memo.lookup(id, ix.IDs[u])
		if !ok {
			if tree == nil {
				t := algo.BFS(ix, v)
				tree = &t
			}
			p = pathIDs(ix, tree.PathTo(u))
			a.memo.Put(id, ix.IDs[u], p)
		}
		if p == nil {
			continue
		}
		reachable++
		distance += len(p) - 1
	}

	c := CentralityMeasures{
		Degree:      degree(ix, v),
		Betweenness: betweenness(n, through),
		Closeness:   closeness(reachable, distance),
	}
	a.centrality[id] = c
	return c, nil
}

// AllCentrality computes and caches the centrality of every node from one BFS
// tree per source. Results equal those of NodeCentrality for each node.
func (a *Analyzer) AllCentrality(g *graph.Graph) (map[string]CentralityMeasures, error) {
	ix := a.bind(g)
	n := ix.Len()
	sources := make([]int, n)
	for i := range sources {
		sources[i] = i
	}
	trees, err := a.trees(ix, sources)
	if err != nil {
		return nil, err
	}

	through := make([]int, n)
	for i := range n {
		for j := i + 1; j < n; j++ {
			pos := trees[i].PathTo(j)
			a.memo.Put(ix.IDs[i], ix.IDs[j], pathIDs(ix, pos))
			for k := 1; k < len(pos)-1; k++ {
				through[pos[k]]++
			}
		}
	}

	out := make(map[string]CentralityMeasures, n)
	for v := range n {
		reachable, distance := 0, 0
		for _, u := range trees[v].Order[1:] {
			reachable++
			distance += trees[v].Dist[u]
		}
		c := CentralityMeasures{
			Degree:      degree(ix, v),
			Betweenness: betweenness(n, through[v]),
			Closeness:   closeness(reachable, distance),
		}
		a.centrality[ix.IDs[v]] = c
		out[ix.IDs[v]] = c
	}
	return out, nil
}

// RankedCentrality returns the nodes of scores ordered by the selected
// measure, highest first, ties broken by id.
func RankedCentrality(scores map[string]CentralityMeasures, by func(CentralityMeasures) float64) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(x, y string) int {
		if c := cmp.Compare(by(scores[y]), by(scores[x])); c != 0 {
			return c
		}
		return cmp.Compare(x, y)
	})
	return ids
}

func hasInterior(path []string, id string) bool {
	for k := 1; k < len(path)-1; k++ {
		if path[k] == id {
			return true
		}
	}
	return false
}

func degree(ix *graph.Index, v int) float64 {
	if ix.Edges == 0 {
		return 0
	}
	return float64(ix.Degree(v)) / float64(ix.Edges)
}

func betweenness(n, through int) float64 {
	pairs := n * (n - 1) / 2
	if pairs == 0 {
		return 0
	}
	return float64(through) / float64(pairs)
}

func closeness(reachable, distance int) float64 {
	if reachable == 0 {
		return 0
	}
	return float64(reachable) / float64(distance)
}
