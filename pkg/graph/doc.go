// Package graph provides the node/edge model consumed by the analytics engine.
//
// A [Graph] is a plain snapshot: a slice of [Node] values carrying 2-D layout
// coordinates and a slice of [Edge] values carrying a weight. The engine never
// owns or mutates a Graph; every call recomputes from the snapshot it is given.
//
// # Interning
//
// String ids are convenient at the API boundary but slow as map keys in inner
// loops. [NewIndex] interns ids to dense integer positions once per call and
// builds index-based adjacency lists:
//
//	ix := graph.NewIndex(&g)
//	for _, a := range ix.Adj[ix.Pos["A"]] {
//	    fmt.Println(ix.IDs[a.To], a.Weight)
//	}
//
// Adj is undirected (both endpoints see the edge). Out and In hold the same
// edges interpreted as source -> target. Edges whose endpoints are not in the
// node set are skipped and counted in [Index.Dangling]; they never cause a
// panic. When a node id occurs more than once, the first occurrence wins.
//
// # File Formats
//
// Graphs are read and written as JSON, YAML or TOML, chosen by file extension:
//
//	{
//	  "nodes": [{"id": "A", "x": 0, "y": 0}, {"id": "B", "x": 1, "y": 0}],
//	  "edges": [{"source": "A", "target": "B", "weight": 1}]
//	}
//
// An edge without a weight decodes with weight 1.
//
//	g, err := graph.ReadFile("network.yaml")
//	err = graph.WriteFile(g, "network.toml")
//
// # Validation
//
// Engine functions accept any snapshot. [Graph.Validate] is an opt-in check
// that reports empty or duplicate ids, dangling endpoints and invalid weights
// as a single INVALID_GRAPH error; [Graph.Issues] returns the individual findings.
package graph
