package cluster

import (
	"math"

	errs "github.com/heliosviz/graphkit/pkg/errors"
	"github.com/heliosviz/graphkit/pkg/graph"
)

// Hierarchical merges clusters bottom-up, starting from one cluster per node,
// until exactly k remain (or every node is alone when k >= len(nodes)). Each
// step merges the pair with the smallest average pairwise Euclidean distance;
// on ties the first pair in cluster order wins and the later cluster is
// appended to the earlier one.
func (c *Clusterer) Hierarchical(nodes []graph.Node, k int) ([][]graph.Node, error) {
	if err := errs.ValidateClusterCount(k); err != nil {
		return nil, err
	}
	n := len(nodes)
	if n == 0 {
		return c.record(Hierarchical, [][]graph.Node{}, k, 0), nil
	}

	// sum[i][j] is the total pairwise distance between slots i and j.
	sum := make([][]float64, n)
	for i := range sum {
		sum[i] = make([]float64, n)
		for j := range i {
			d := nodeDistance(nodes[i], nodes[j])
			sum[i][j], sum[j][i] = d, d
		}
	}
	members := make([][]int, n)
	for i := range members {
		members[i] = []int{i}
	}
	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	merges := 0
	for len(active) > k {
		bestA, bestB, best := 0, 1, math.Inf(1)
		for a := range active {
			for b := a + 1; b < len(active); b++ {
				i, j := active[a], active[b]
				avg := sum[i][j] / float64(len(members[i])*len(members[j]))
				if avg < best {
					bestA, bestB, best = a, b, avg
				}
			}
		}

		i, j := active[bestA], active[bestB]
		for _, x := range active {
			if x == i || x == j {
				continue
			}
			sum[i][x] += sum[j][x]
			sum[x][i] = sum[i][x]
		}
		members[i] = append(members[i], members[j]...)
		active = append(active[:bestB], active[bestB+1:]...)
		merges++
	}

	clusters := make([][]graph.Node, len(active))
	for a, slot := range active {
		clusters[a] = make([]graph.Node, len(members[slot]))
		for m, idx := range members[slot] {
			clusters[a][m] = nodes[idx]
		}
	}
	return c.record(Hierarchical, clusters, len(clusters), merges), nil
}
