package nodelink_test

import (
	"fmt"

	"github.com/heliosviz/graphkit/pkg/graph"
	"github.com/heliosviz/graphkit/pkg/render/nodelink"
)

func ExampleToDOT() {
	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}},
		Edges: []graph.Edge{{Source: "a", Target: "b", Weight: 1}},
	}

	fmt.Print(nodelink.ToDOT(g, nodelink.Options{Clusters: [][]string{{"a"}}}))
	// Output:
	// graph G {
	//   rankdir=TB;
	//   bgcolor="transparent";
	//   node [shape=circle, style=filled, fillcolor=white, fontsize=14];
	//
	//   "a" [label="a", fillcolor="#8dd3c7"];
	//   "b" [label="b"];
	//
	//   "a" -- "b";
	// }
}
