package cluster

import (
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	errs "github.com/heliosviz/graphkit/pkg/errors"
	"github.com/heliosviz/graphkit/pkg/graph"
)

// Algorithm identifies a clustering strategy.
type Algorithm int

const (
	KMeans Algorithm = iota
	Hierarchical
	CommunityDetection
)

var algorithmNames = map[Algorithm]string{
	KMeans:             "kmeans",
	Hierarchical:       "hierarchical",
	CommunityDetection: "community",
}

func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseAlgorithm parses an algorithm name as printed by Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "kmeans", "k-means":
		return KMeans, nil
	case "hierarchical":
		return Hierarchical, nil
	case "community", "communities":
		return CommunityDetection, nil
	case "spectral":
		return 0, errs.New(errs.ErrCodeUnsupported, "spectral clustering is not supported")
	}
	return 0, errs.New(errs.ErrCodeInvalidParameter, "unknown clustering algorithm %q", s)
}

// Clusterer runs clustering strategies and remembers the outcome of the last run.
type Clusterer struct {
	Clusters   [][]graph.Node
	Count      int
	Algorithm  Algorithm
	Iterations int // Assign/recompute rounds (k-means) or merges (hierarchical) or passes (community)
}

// New returns an empty Clusterer.
func New() *Clusterer {
	return &Clusterer{Algorithm: KMeans}
}

func (c *Clusterer) record(alg Algorithm, clusters [][]graph.Node, count, iterations int) [][]graph.Node {
	c.Clusters = clusters
	c.Count = count
	c.Algorithm = alg
	c.Iterations = iterations
	return clusters
}

func position(n graph.Node) r2.Vec { return r2.Vec{X: n.X, Y: n.Y} }

func distance(a, b r2.Vec) float64 { return r2.Norm(r2.Sub(a, b)) }

func nodeDistance(a, b graph.Node) float64 {
	return distance(position(a), position(b))
}

// IDs maps a partition to node ids.
func IDs(clusters [][]graph.Node) [][]string {
	out := make([][]string, len(clusters))
	for i, c := range clusters {
		out[i] = make([]string, len(c))
		for j, n := range c {
			out[i][j] = n.ID
		}
	}
	return out
}
