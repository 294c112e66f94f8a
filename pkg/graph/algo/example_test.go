package algo_test

import (
	"fmt"

	"github.com/heliosviz/graphkit/pkg/graph"
	"github.com/heliosviz/graphkit/pkg/graph/algo"
)

func ExampleShortestPath() {
	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []graph.Edge{
			{Source: "A", Target: "B", Weight: 1},
			{Source: "B", Target: "C", Weight: 1},
			{Source: "A", Target: "C", Weight: 5},
		},
	}

	p, err := algo.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(p.Nodes, p.Cost)
	// Output: [A B C] 2
}

func ExampleTopologicalSort() {
	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "C"}, {ID: "B"}, {ID: "A"}},
		Edges: []graph.Edge{
			{Source: "A", Target: "B"},
			{Source: "B", Target: "C"},
		},
	}

	order, ok := algo.TopologicalSort(g)
	fmt.Println(order, ok)

	g.Edges = append(g.Edges, graph.Edge{Source: "C", Target: "A"})
	order, ok = algo.TopologicalSort(g)
	fmt.Println(order, ok)
	// Output:
	// [A B C] true
	// [] false
}

func ExampleConnectedComponents() {
	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		Edges: []graph.Edge{
			{Source: "A", Target: "B", Weight: 1},
			{Source: "C", Target: "D", Weight: 1},
		},
	}

	for _, c := range algo.ConnectedComponents(g) {
		fmt.Println(c)
	}
	// Output:
	// [A B]
	// [C D]
}
