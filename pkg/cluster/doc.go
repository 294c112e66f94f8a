// Package cluster partitions graph nodes and scores the partitions.
//
// Spatial strategies work on node coordinates only:
//
//   - [Clusterer.KMeans]: centroids seeded from node positions (node i mod n),
//     assign/recompute until no centroid moves more than [Tolerance] or
//     [MaxIterations] rounds have run
//   - [Clusterer.Hierarchical]: agglomerative average-linkage merging until
//     exactly k clusters remain
//
// [Clusterer.DetectCommunities] works on edges only: a greedy local search
// that moves a node into the community holding most of its edges.
//
// Quality scores:
//
//   - [Silhouette]: mean per-node silhouette in [-1, 1]
//   - [Modularity]: sum over clusters of L_c/|E| - (d_c/2|E|)^2
//
// All strategies are deterministic: there is no randomness, and ties go to
// the lowest cluster index. A k of zero is an INVALID_PARAMETER error; an
// empty node set yields an empty partition.
package cluster
