package cluster

import "github.com/heliosviz/graphkit/pkg/graph"

// MaxPasses caps the passes of community detection.
const MaxPasses = 100

// DetectCommunities groups nodes by a greedy local search. Every node starts
// in its own community. In each pass every node, in node order, evaluates
//
//	gain(C) = edges from the node into C / degree of the node - 0.5
//
// for every community C, self-loops excluded. The node moves to the community
// with the highest gain when that gain is positive and strictly greater than
// the gain of staying; ties go to the lowest community index. Every move
// increases the number of intra-community edges, so the search ends when a
// pass moves nothing (and after MaxPasses passes at most).
//
// Empty communities are dropped. Members are listed in node order. Duplicate
// node ids are clustered once and edges with an unknown endpoint are ignored.
func (c *Clusterer) DetectCommunities(nodes []graph.Node, edges []graph.Edge) [][]graph.Node {
	ix := graph.NewIndex(&graph.Graph{Nodes: nodes, Edges: edges})
	n := ix.Len()

	community := make([]int, n)
	for v := range community {
		community[v] = v
	}
	links := make([]int, n) // scratch: edges from v into each community

	passes := 0
	for moved := true; moved && passes < MaxPasses; passes++ {
		moved = false
		for v := range n {
			degree := 0
			for _, a := range ix.Adj[v] {
				if a.To != v {
					links[community[a.To]]++
					degree++
				}
			}
			if degree == 0 {
				continue
			}

			current := community[v]
			stay := gain(links[current], degree)
			best, bestGain := current, 0.0
			for _, a := range ix.Adj[v] {
				if a.To == v {
					continue
				}
				cand := community[a.To]
				g := gain(links[cand], degree)
				if g > bestGain || (g == bestGain && g > 0 && cand < best) {
					best, bestGain = cand, g
				}
			}
			for _, a := range ix.Adj[v] {
				links[community[a.To]] = 0
			}

			if best != current && bestGain > 0 && bestGain > stay {
				community[v] = best
				moved = true
			}
		}
	}

	slot := make(map[int]int)
	var out [][]graph.Node
	for v := range n {
		s, ok := slot[community[v]]
		if !ok {
			s = len(out)
			slot[community[v]] = s
			out = append(out, nil)
		}
		out[s] = append(out[s], ix.Nodes[v])
	}
	if out == nil {
		out = [][]graph.Node{}
	}
	return c.record(CommunityDetection, out, len(out), passes)
}

func gain(links, degree int) float64 {
	return float64(links)/float64(degree) - 0.5
}
