// Package pkg provides the core libraries for Graphkit graph analytics.
//
// # Overview
//
// Graphkit analyzes node-link graphs whose nodes carry 2D positions: network
// metrics, centrality, shortest paths, layout quality, and clustering. The pkg
// directory is organized into three main areas:
//
//  1. Engine - [graph], [graph/algo], [analysis], [cluster]
//  2. Rendering - [render/nodelink], [render]
//  3. Infrastructure - [pipeline], [cache], [config], [observability], [errors]
//
// # Architecture
//
// The typical data flow through Graphkit:
//
//	JSON / YAML / TOML graph file
//	         ↓
//	    [graph] package (decode, validate, index)
//	         ↓
//	    [analysis] / [cluster] / [graph/algo] (metrics, partitions, paths)
//	         ↓
//	    [pipeline] package (cache, hooks, tracing, reports)
//	         ↓
//	    JSON report, or DOT/SVG/PNG/PDF via [render/nodelink]
//
// # Quick Start
//
// Analyze a graph file:
//
//	g, _ := graph.ReadFile("network.json")
//
//	a := analysis.New(analysis.WithWorkers(4))
//	m, _ := a.AnalyzeNetwork(g)
//	fmt.Printf("density %.3f, clustering %.3f\n", m.Density, m.ClusteringCoefficient)
//
//	c := cluster.New()
//	groups, _ := c.KMeans(g.Nodes, 3)
//	fmt.Println(cluster.IDs(groups), c.Silhouette())
//
// # Main Packages
//
// [graph] - The graph snapshot: nodes with positions and optional labels,
// weighted edges, file formats, content hashes, structural validation, and a
// dense integer [graph.Index] used by every algorithm.
//
// [graph/algo] - Breadth-first search, connected and strongly connected
// components, cycle detection, topological sort, Dijkstra shortest paths and
// Kruskal minimum spanning forests.
//
// [analysis] - The network analyzer: density, clustering coefficient, average
// path length, degree/betweenness/closeness centrality with a memoized path
// store, and layout metrics (edge crossings, node overlaps, layout quality).
//
// [cluster] - K-means and hierarchical clustering on positions, community
// detection on edges, silhouette and modularity scores.
//
// [render/nodelink] - Graphviz DOT generation and SVG/PDF/PNG rendering with
// cluster colors and path highlights.
//
// [pipeline] - The runner used by the CLI: loads graphs, produces cached
// reports, fires observability hooks and opens tracing spans.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/analysis/... # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/heliosviz/graphkit/pkg/graph
// [graph/algo]: https://pkg.go.dev/github.com/heliosviz/graphkit/pkg/graph/algo
// [analysis]: https://pkg.go.dev/github.com/heliosviz/graphkit/pkg/analysis
// [cluster]: https://pkg.go.dev/github.com/heliosviz/graphkit/pkg/cluster
// [render]: https://pkg.go.dev/github.com/heliosviz/graphkit/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/heliosviz/graphkit/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/heliosviz/graphkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/heliosviz/graphkit/pkg/cache
// [config]: https://pkg.go.dev/github.com/heliosviz/graphkit/pkg/config
// [observability]: https://pkg.go.dev/github.com/heliosviz/graphkit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/heliosviz/graphkit/pkg/errors
package pkg
