package algo

import "github.com/heliosviz/graphkit/pkg/graph"

const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // finished
)

// frame is one level of an explicit depth-first stack: the node being
// expanded and the index of the next arc to follow.
type frame struct {
	node int
	next int
}

// HasCycle reports whether g contains a directed cycle (Source -> Target).
// A node reached again while still gray, that is on the current DFS path,
// closes a cycle. A self-loop is a cycle.
func HasCycle(g *graph.Graph) bool {
	ix := graph.NewIndex(g)
	color := make([]int, ix.Len())
	var stack []frame

	for s := range ix.Len() {
		if color[s] != white {
			continue
		}
		color[s] = gray
		stack = append(stack[:0], frame{node: s})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(ix.Out[top.node]) {
				color[top.node] = black
				stack = stack[:len(stack)-1]
				continue
			}
			to := ix.Out[top.node][top.next].To
			top.next++
			switch color[to] {
			case gray:
				return true
			case white:
				color[to] = gray
				stack = append(stack, frame{node: to})
			}
		}
	}
	return false
}
