package analysis_test

import (
	"fmt"

	"github.com/heliosviz/graphkit/pkg/analysis"
	"github.com/heliosviz/graphkit/pkg/graph"
)

func ExampleAnalyzer_NodeCentrality() {
	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "hub"}, {ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []graph.Edge{
			{Source: "hub", Target: "a", Weight: 1},
			{Source: "hub", Target: "b", Weight: 1},
			{Source: "hub", Target: "c", Weight: 1},
		},
	}

	a := analysis.New()
	c, err := a.NodeCentrality("hub", g)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("degree=%.2f betweenness=%.2f closeness=%.2f\n", c.Degree, c.Betweenness, c.Closeness)
	// Output: degree=1.00 betweenness=0.50 closeness=1.00
}

func ExampleAnalyzer_AnalyzeNetwork() {
	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []graph.Edge{
			{Source: "a", Target: "b", Weight: 1},
			{Source: "b", Target: "c", Weight: 1},
			{Source: "c", Target: "a", Weight: 1},
		},
	}

	m, err := analysis.New(analysis.WithWorkers(4)).AnalyzeNetwork(g)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("nodes=%d edges=%d density=%.2f clustering=%.2f apl=%.2f\n",
		m.NodeCount, m.EdgeCount, m.Density, m.ClusteringCoefficient, m.AveragePathLength)
	// Output: nodes=3 edges=3 density=1.00 clustering=1.00 apl=1.00
}
