// Package algo implements the classical graph algorithms of the engine.
//
// Every function is stateless: it takes a [graph.Graph] snapshot, interns it
// with [graph.NewIndex], and works on integer positions internally. Ids are
// translated back only at the API boundary.
//
// # Edge Direction
//
// The same edge set is read two ways:
//
//   - Undirected: [ConnectedComponents], [ShortestPath], [MinimumSpanningForest], [BFS]
//   - Directed (Source -> Target): [HasCycle], [TopologicalSort], [StronglyConnectedComponents]
//
// # Failure Semantics
//
// Logically absent results are ordinary return values, never errors: an
// unreachable target yields a nil [Path] and a cyclic graph yields
// ok == false from [TopologicalSort]. Edges that reference unknown nodes are
// ignored. Parameter misuse is reported through pkg/errors codes:
//
//   - NODE_NOT_FOUND: a path endpoint is not in the node set
//   - INVALID_PARAMETER: an edge weight is negative or NaN
//
// # Determinism
//
// All traversals visit nodes in node order and arcs in edge order. Dijkstra
// breaks distance ties by the lower node position and Kahn's queue is seeded
// in node order, so repeated calls on the same snapshot return identical
// results.
//
// # Deep Graphs
//
// Depth-first routines use explicit frame stacks instead of recursion, so
// long chains cannot overflow the goroutine stack.
package algo
