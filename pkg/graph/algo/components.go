package algo

import "github.com/heliosviz/graphkit/pkg/graph"

// ConnectedComponents partitions the nodes of g into undirected connected
// components. Every distinct node id appears in exactly one component.
// Components are ordered by their first node in node order; members appear in
// depth-first discovery order. Self-loops and parallel edges are harmless.
func ConnectedComponents(g *graph.Graph) [][]string {
	ix := graph.NewIndex(g)
	visited := make([]bool, ix.Len())
	var out [][]string
	var stack []int

	for s := range ix.Len() {
		if visited[s] {
			continue
		}
		var comp []int
		visited[s] = true
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			for _, a := range ix.Adj[v] {
				if !visited[a.To] {
					visited[a.To] = true
					stack = append(stack, a.To)
				}
			}
		}
		out = append(out, ix.Resolve(comp))
	}
	return out
}
