package graph

// Graph is a node/edge snapshot. The same edge set is read as undirected by
// traversal and metric routines and as directed (Source -> Target) by
// topological sort, cycle detection and strongly connected components.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges" toml:"edges"`
}

// Node is a vertex with 2-D layout coordinates. X and Y are used only by
// spatial routines (clustering, overlap and crossing heuristics).
type Node struct {
	ID    string  `json:"id" yaml:"id" toml:"id"`
	X     float64 `json:"x" yaml:"x" toml:"x"`
	Y     float64 `json:"y" yaml:"y" toml:"y"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"` // Display label (defaults to ID)
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge connects two node ids with a non-negative weight.
type Edge struct {
	Source string  `json:"source" yaml:"source" toml:"source"`
	Target string  `json:"target" yaml:"target" toml:"target"`
	Weight float64 `json:"weight" yaml:"weight" toml:"weight"`
}

// IsSelfLoop reports whether both endpoints are the same node.
func (e Edge) IsSelfLoop() bool { return e.Source == e.Target }

// New returns a graph over the given nodes and edges. The slices are not copied.
func New(nodes []Node, edges []Edge) *Graph {
	return &Graph{Nodes: nodes, Edges: edges}
}

// NodeCount returns the number of nodes, duplicates included.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges, dangling ones included.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Node returns the first node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// IDs returns node ids in node order.
func (g *Graph) IDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return ids
}
