package cluster

import (
	"gonum.org/v1/gonum/spatial/r2"

	errs "github.com/heliosviz/graphkit/pkg/errors"
	"github.com/heliosviz/graphkit/pkg/graph"
)

const (
	// Tolerance is the centroid movement below which k-means has converged.
	Tolerance = 1e-3
	// MaxIterations caps k-means assign/recompute rounds.
	MaxIterations = 100
)

// KMeans partitions nodes into k clusters by coordinates. Centroid i starts at
// nodes[i % len(nodes)]. Each round assigns every node to its nearest centroid
// (lowest index on ties) and moves each centroid to the mean of its cluster; a
// cluster that ends up empty keeps its previous centroid. The loop stops when
// no centroid moved more than Tolerance or after MaxIterations rounds.
//
// The result always has k clusters, some possibly empty.
func (c *Clusterer) KMeans(nodes []graph.Node, k int) ([][]graph.Node, error) {
	if err := errs.ValidateClusterCount(k); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return c.record(KMeans, [][]graph.Node{}, k, 0), nil
	}

	centroids := make([]r2.Vec, k)
	for i := range centroids {
		centroids[i] = position(nodes[i%len(nodes)])
	}

	assign := make([]int, len(nodes))
	iterations := 0
	for converged := false; !converged && iterations < MaxIterations; iterations++ {
		for i, n := range nodes {
			assign[i] = nearest(centroids, n)
		}

		sum := make([]r2.Vec, k)
		size := make([]int, k)
		for i, n := range nodes {
			sum[assign[i]] = r2.Add(sum[assign[i]], position(n))
			size[assign[i]]++
		}

		converged = true
		for j := range centroids {
			if size[j] == 0 {
				continue
			}
			next := r2.Vec{X: sum[j].X / float64(size[j]), Y: sum[j].Y / float64(size[j])}
			if distance(centroids[j], next) > Tolerance {
				converged = false
			}
			centroids[j] = next
		}
	}

	clusters := make([][]graph.Node, k)
	for j := range clusters {
		clusters[j] = []graph.Node{}
	}
	for i, n := range nodes {
		clusters[assign[i]] = append(clusters[assign[i]], n)
	}
	return c.record(KMeans, clusters, k, iterations), nil
}

func nearest(centroids []r2.Vec, n graph.Node) int {
	p := position(n)
	best, bestDist := 0, distance(p, centroids[0])
	for j := 1; j < len(centroids); j++ {
		if d := distance(p, centroids[j]); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}
