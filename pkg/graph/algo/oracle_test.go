package algo

import (
	"math"
	"slices"
	"strings"
	"testing"

	sg "github.com/soniakeys/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/heliosviz/graphkit/pkg/graph"
)

// oracle converts g into soniakeys/graph types. Arc labels are edge positions
// so the weight function can look weights up in g.Edges.
func oracle(g *graph.Graph) (*graph.Index, sg.LabeledAdjacencyList, sg.WeightedEdgeList) {
	ix := graph.NewIndex(g)
	w := func(l sg.LI) float64 { return g.Edges[l].Weight }

	adj := make(sg.LabeledAdjacencyList, ix.Len())
	for v, arcs := range ix.Adj {
		for _, a := range arcs {
			adj[v] = append(adj[v], sg.Half{To: sg.NI(a.To), Label: sg.LI(a.Edge)})
		}
	}

	el := sg.WeightedEdgeList{Order: ix.Len(), WeightFunc: w}
	for i, e := range g.Edges {
		s, ok1 := ix.Lookup(e.Source)
		t, ok2 := ix.Lookup(e.Target)
		if !ok1 || !ok2 {
			continue
		}
		el.Edges = append(el.Edges, sg.LabeledEdge{Edge: sg.Edge{N1: sg.NI(s), N2: sg.NI(t)}, LI: sg.LI(i)})
	}
	return ix, adj, el
}

func TestShortestPathMatchesOracle(t *testing.T) {
	for seed := range uint64(30) {
		g := randomGraph(seed, 15, 30)
		ix, adj, _ := oracle(g)
		w := func(l sg.LI) float64 { return g.Edges[l].Weight }

		for s := range ix.Len() {
			tree := BFS(ix, s)
			for d := range ix.Len() {
				p, err := ShortestPath(g, ix.IDs[s], ix.IDs[d])
				if err != nil {
					t.Fatalf("seed %d: %v", seed, err)
				}
				if !tree.Reachable(d) {
					if p != nil {
						t.Errorf("seed %d: %s->%s unreachable but got %v", seed, ix.IDs[s], ix.IDs[d], p.Nodes)
					}
					continue
				}
				_, want := adj.DijkstraPath(sg.NI(s), sg.NI(d), w)
				if p == nil {
					t.Fatalf("seed %d: %s->%s reachable but got nil", seed, ix.IDs[s], ix.IDs[d])
				}
				if math.Abs(p.Cost-want) > 1e-9 {
					t.Errorf("seed %d: %s->%s cost %v, oracle %v", seed, ix.IDs[s], ix.IDs[d], p.Cost, want)
				}
				if got := pathWeight(g, p.Nodes); math.Abs(got-p.Cost) > 1e-9 {
					t.Errorf("seed %d: path %v sums to %v, reported %v", seed, p.Nodes, got, p.Cost)
				}
			}
		}
	}
}

// pathWeight sums the cheapest edge between each consecutive pair.
func pathWeight(g *graph.Graph, ids []string) float64 {
	total := 0.0
	for i := 1; i < len(ids); i++ {
		best := math.Inf(1)
		for _, e := range g.Edges {
			if (e.Source == ids[i-1] && e.Target == ids[i]) || (e.Source == ids[i] && e.Target == ids[i-1]) {
				best = min(best, e.Weight)
			}
		}
		total += best
	}
	return total
}

func TestMinimumSpanningForestMatchesOracle(t *testing.T) {
	for seed := range uint64(30) {
		g := randomGraph(seed, 20, 35)
		_, _, el := oracle(g)
		_, want := el.Kruskal()

		f, err := MinimumSpanningForest(g)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(f.Weight-want) > 1e-9 {
			t.Errorf("seed %d: weight %v, oracle %v", seed, f.Weight, want)
		}
	}
}

// directed converts g into a gonum directed graph with node ids equal to index
// positions. gonum graphs hold no self-loops, so the second result reports
// whether g had one.
func directed(g *graph.Graph) (*graph.Index, *simple.DirectedGraph, bool) {
	ix := graph.NewIndex(g)
	dg := simple.NewDirectedGraph()
	for v := range ix.Len() {
		dg.AddNode(simple.Node(v))
	}
	loop := false
	for v, arcs := range ix.Out {
		for _, a := range arcs {
			if a.To == v {
				loop = true
				continue
			}
			dg.SetEdge(simple.Edge{F: simple.Node(v), T: simple.Node(a.To)})
		}
	}
	return ix, dg, loop
}

// canonical sorts members and groups so partitions compare by content.
func canonical(groups [][]string) []string {
	out := make([]string, len(groups))
	for i, grp := range groups {
		grp = slices.Clone(grp)
		slices.Sort(grp)
		out[i] = strings.Join(grp, ",")
	}
	slices.Sort(out)
	return out
}

func TestStronglyConnectedComponentsMatchesOracle(t *testing.T) {
	for seed := range uint64(30) {
		g := randomGraph(seed, 15, 25)
		ix, dg, _ := directed(g)

		var want [][]string
		for _, comp := range topo.TarjanSCC(dg) {
			ids := make([]string, len(comp))
			for i, n := range comp {
				ids[i] = ix.IDs[n.ID()]
			}
			want = append(want, ids)
		}

		got := StronglyConnectedComponents(g)
		if !slices.Equal(canonical(got), canonical(want)) {
			t.Errorf("seed %d: components %v, oracle %v", seed, got, want)
		}
	}
}

func TestHasCycleMatchesOracle(t *testing.T) {
	for seed := range uint64(40) {
		g := randomGraph(seed, 12, 14)
		_, dg, loop := directed(g)
		_, err := topo.Sort(dg)
		want := loop || err != nil

		if got := HasCycle(g); got != want {
			t.Errorf("seed %d: HasCycle = %v, oracle %v", seed, got, want)
		}
		if _, ok := TopologicalSort(g); ok == want {
			t.Errorf("seed %d: TopologicalSort ok = %v with cycle %v", seed, ok, want)
		}
	}
}
