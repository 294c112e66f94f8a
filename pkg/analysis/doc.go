// Package analysis computes network-level metrics, per-node centrality and
// layout-quality metrics over a [graph.Graph] snapshot.
//
// # Sessions
//
// An [Analyzer] is an analysis session. It owns three pieces of state:
//
//   - a metrics map filled by [Analyzer.AnalyzeNetwork]
//   - a centrality cache filled by [Analyzer.NodeCentrality] and [Analyzer.AllCentrality]
//   - a [PathMemo] holding unweighted shortest paths keyed by (source, target)
//
// AnalyzeNetwork resets all three. The memo is also bound to the topology
// hash of the last snapshot it served; passing a snapshot with different
// node ids or edges invalidates the memo and the centrality cache before any
// lookup, so cached paths never leak across topologies.
//
// # Distances
//
// All analyzer metrics use hop counts from an unweighted breadth-first search
// ([algo.BFS]) over the undirected edge set. Weighted routing lives in
// [algo.ShortestPath].
//
// # Parallelism
//
// All-pairs work (average path length, betweenness) runs one BFS per source.
// With [WithWorkers] greater than one these searches run on an errgroup; each
// worker writes its tree into an index-addressed slot and the reduction runs
// sequentially in node order, so results are identical for any worker count.
// The public API stays synchronous.
//
// An Analyzer is not safe for concurrent use. Use one Analyzer per goroutine
// or guard it with a mutex.
package analysis
