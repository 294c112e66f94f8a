package algo

import (
	"slices"

	"github.com/heliosviz/graphkit/pkg/graph"
)

// StronglyConnectedComponents partitions the nodes of g into strongly
// connected components of the directed graph Source -> Target using Tarjan's
// algorithm. Components are returned in the order Tarjan completes them
// (reverse topological order of the condensation); members of a component are
// listed in node order.
//
// The depth-first search runs on an explicit stack of (node, next arc) frames.
func StronglyConnectedComponents(g *graph.Graph) [][]string {
	ix := graph.NewIndex(g)
	n := ix.Len()
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}

	var (
		next   int
		stack  []int
		frames []frame
		out    [][]string
	)
	visit := func(v int) {
		index[v] = next
		low[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true
		frames = append(frames, frame{node: v})
	}

	for s := range n {
		if index[s] != -1 {
			continue
		}
		visit(s)
		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			v := top.node
			if top.next < len(ix.Out[v]) {
				w := ix.Out[v][top.next].To
				top.next++
				if index[w] == -1 {
					visit(w)
				} else if onStack[w] {
					low[v] = min(low[v], index[w])
				}
				continue
			}

			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				u := frames[len(frames)-1].node
				low[u] = min(low[u], low[v])
			}
			if low[v] != index[v] {
				continue
			}
			var comp []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			slices.Sort(comp)
			out = append(out, ix.Resolve(comp))
		}
	}
	return out
}
