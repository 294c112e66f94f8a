package algo

import "github.com/heliosviz/graphkit/pkg/graph"

// TopologicalSort orders the nodes of g so that every edge Source -> Target
// has Source before Target, using Kahn's algorithm. The queue is seeded with
// zero in-degree nodes in node order. It returns (nil, false) when g has a
// directed cycle.
func TopologicalSort(g *graph.Graph) ([]string, bool) {
	ix := graph.NewIndex(g)
	n := ix.Len()
	inDegree := make([]int, n)
	for v := range n {
		inDegree[v] = len(ix.In[v])
	}

	queue := make([]int, 0, n)
	for v := range n {
		if inDegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, n)
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		order = append(order, v)
		for _, a := range ix.Out[v] {
			inDegree[a.To]--
			if inDegree[a.To] == 0 {
				queue = append(queue, a.To)
			}
		}
	}

	if len(order) < n {
		return nil, false
	}
	return ix.Resolve(order), true
}
