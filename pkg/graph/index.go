package graph

// Arc is one adjacency entry: the neighbor position, the position of the
// originating edge in Graph.Edges, and that edge's weight.
type Arc struct {
	To     int
	Edge   int
	Weight float64
}

// Index interns node ids to dense positions and holds index-based adjacency.
//
// Adj is undirected and lists arcs in edge order; a self-loop appears once in
// its node's list so len(Adj[i]) is the number of edges incident to i. Out and
// In hold the same edges interpreted as Source -> Target.
//
// An Index is a read-only view built for a single call and is safe for
// concurrent reads.
type Index struct {
	IDs   []string       // Position -> id
	Pos   map[string]int // Id -> position
	Nodes []Node         // Position -> node (first occurrence)
	Adj   [][]Arc
	Out   [][]Arc
	In    [][]Arc

	Edges      int // Edges with both endpoints resolved
	Dangling   int // Edges skipped because an endpoint is unknown
	Duplicates int // Node entries skipped because their id was already seen
}

// NewIndex builds an Index for g.
func NewIndex(g *Graph) *Index {
	ix := &Index{
		IDs:   make([]string, 0, len(g.Nodes)),
		Pos:   make(map[string]int, len(g.Nodes)),
		Nodes: make([]Node, 0, len(g.Nodes)),
	}
	for _, n := range g.Nodes {
		if _, ok := ix.Pos[n.ID]; ok {
			ix.Duplicates++
			continue
		}
		ix.Pos[n.ID] = len(ix.IDs)
		ix.IDs = append(ix.IDs, n.ID)
		ix.Nodes = append(ix.Nodes, n)
	}

	n := len(ix.IDs)
	ix.Adj = make([][]Arc, n)
	ix.Out = make([][]Arc, n)
	ix.In = make([][]Arc, n)
	for i, e := range g.Edges {
		s, ok1 := ix.Pos[e.Source]
		t, ok2 := ix.Pos[e.Target]
		if !ok1 || !ok2 {
			ix.Dangling++
			continue
		}
		ix.Edges++
		ix.Out[s] = append(ix.Out[s], Arc{To: t, Edge: i, Weight: e.Weight})
		ix.In[t] = append(ix.In[t], Arc{To: s, Edge: i, Weight: e.Weight})
		ix.Adj[s] = append(ix.Adj[s], Arc{To: t, Edge: i, Weight: e.Weight})
		if s != t {
			ix.Adj[t] = append(ix.Adj[t], Arc{To: s, Edge: i, Weight: e.Weight})
		}
	}
	return ix
}

// Len returns the number of distinct nodes.
func (ix *Index) Len() int { return len(ix.IDs) }

// Lookup returns the position of id.
func (ix *Index) Lookup(id string) (int, bool) {
	i, ok := ix.Pos[id]
	return i, ok
}

// Degree returns the number of resolved edges incident to position i.
func (ix *Index) Degree(i int) int { return len(ix.Adj[i]) }

// Neighbors returns the distinct undirected neighbors of position i, excluding
// i itself, in first-seen order.
func (ix *Index) Neighbors(i int) []int {
	seen := make(map[int]struct{}, len(ix.Adj[i]))
	out := make([]int, 0, len(ix.Adj[i]))
	for _, a := range ix.Adj[i] {
		if a.To == i {
			continue
		}
		if _, ok := seen[a.To]; ok {
			continue
		}
		seen[a.To] = struct{}{}
		out = append(out, a.To)
	}
	return out
}

// Resolve maps positions back to ids.
func (ix *Index) Resolve(pos []int) []string {
	ids := make([]string, len(pos))
	for i, p := range pos {
		ids[i] = ix.IDs[p]
	}
	return ids
}
