package cluster

import (
	"math"

	"github.com/heliosviz/graphkit/pkg/graph"
)

// Silhouette returns the mean silhouette of every clustered node, in [-1, 1].
//
// For a node in cluster C, a is its mean distance to the other members of C
// (0 for a singleton) and b is the smallest distance from it to any node of
// another cluster. Its silhouette is (b - a) / max(a, b), or 0 when both are 0.
// Empty clusters are ignored; fewer than two non-empty clusters score 0.
func Silhouette(clusters [][]graph.Node) float64 {
	var live [][]graph.Node
	for _, c := range clusters {
		if len(c) > 0 {
			live = append(live, c)
		}
	}
	if len(live) < 2 {
		return 0
	}

	total, count := 0.0, 0
	for ci, c := range live {
		for i, n := range c {
			a := 0.0
			for j, other := range c {
				if j != i {
					a += nodeDistance(n, other)
				}
			}
			if len(c) > 1 {
				a /= float64(len(c) - 1)
			}

			b := math.Inf(1)
			for cj, oc := range live {
				if cj == ci {
					continue
				}
				for _, other := range oc {
					b = min(b, nodeDistance(n, other))
				}
			}

			if m := max(a, b); m > 0 {
				total += (b - a) / m
			}
			count++
		}
	}
	return total / float64(count)
}

// Modularity scores a partition against the edge set with the standard
// Newman form: sum over clusters of L_c/|E| - (d_c / 2|E|)^2, where L_c counts
// edges with both endpoints in c and d_c is the total degree of c's members
// (a self-loop adds 2). Only edges with both endpoints in the partition are
// counted, in |E| as well; the result is 0 when no such edge exists and
// otherwise lies in [-0.5, 1].
func Modularity(clusters [][]graph.Node, edges []graph.Edge) float64 {
	member := make(map[string]int)
	for ci, c := range clusters {
		for _, n := range c {
			if _, ok := member[n.ID]; !ok {
				member[n.ID] = ci
			}
		}
	}

	internal := make([]int, len(clusters))
	degree := make([]int, len(clusters))
	counted := 0
	for _, e := range edges {
		cs, okS := member[e.Source]
		ct, okT := member[e.Target]
		if !okS || !okT {
			continue
		}
		counted++
		degree[cs]++
		degree[ct]++
		if cs == ct {
			internal[cs]++
		}
	}
	if counted == 0 {
		return 0
	}

	m := float64(counted)
	q := 0.0
	for ci := range clusters {
		frac := float64(degree[ci]) / (2 * m)
		q += float64(internal[ci])/m - frac*frac
	}
	return q
}

// Silhouette scores the clusters of the last run.
func (c *Clusterer) Silhouette() float64 { return Silhouette(c.Clusters) }

// Modularity scores the clusters of the last run against edges.
func (c *Clusterer) Modularity(edges []graph.Edge) float64 { return Modularity(c.Clusters, edges) }
