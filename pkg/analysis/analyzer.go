package analysis

import (
	"maps"

	"github.com/heliosviz/graphkit/pkg/graph"
)

// Metric keys stored by [Analyzer.AnalyzeNetwork].
const (
	MetricNodeCount             = "node_count"
	MetricEdgeCount             = "edge_count"
	MetricDensity               = "density"
	MetricClusteringCoefficient = "clustering_coefficient"
	MetricAveragePathLength     = "average_path_length"
)

// DefaultOverlapThreshold is the distance below which two nodes overlap.
const DefaultOverlapThreshold = 20.0

// NetworkMetrics are whole-graph metrics. Counts exclude duplicate node ids
// and edges with an unknown endpoint.
type NetworkMetrics struct {
	NodeCount             int     `json:"node_count"`
	EdgeCount             int     `json:"edge_count"`
	Density               float64 `json:"density"`
	ClusteringCoefficient float64 `json:"clustering_coefficient"`
	AveragePathLength     float64 `json:"average_path_length"`
}

// Analyzer is a stateful analysis session. See the package documentation for
// its caching rules.
type Analyzer struct {
	metrics    map[string]float64
	centrality map[string]CentralityMeasures
	memo       *PathMemo
	topology   string // topology the centrality cache was computed for
	analyzed   bool

	workers          int
	overlapThreshold float64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers sets the number of goroutines used for all-pairs searches.
// Values below one mean sequential execution.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		a.workers = max(n, 1)
	}
}

// WithOverlapThreshold sets the node overlap distance.
// Default: [DefaultOverlapThreshold].
func WithOverlapThreshold(d float64) Option {
	return func(a *Analyzer) {
		a.overlapThreshold = d
	}
}

// WithMemo makes the Analyzer use a caller-owned memo, so paths can be shared
// by consecutive sessions over the same topology.
func WithMemo(m *PathMemo) Option {
	return func(a *Analyzer) {
		if m != nil {
			a.memo = m
		}
	}
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		metrics:          make(map[string]float64),
		centrality:       make(map[string]CentralityMeasures),
		memo:             NewPathMemo(),
		workers:          1,
		overlapThreshold: DefaultOverlapThreshold,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Memo returns the path memo used by the session.
func (a *Analyzer) Memo() *PathMemo { return a.memo }

// Workers returns the configured worker count.
func (a *Analyzer) Workers() int { return a.workers }

// Analyzed reports whether AnalyzeNetwork has completed on this session.
func (a *Analyzer) Analyzed() bool { return a.analyzed }

// Metrics returns a copy of the metrics map.
func (a *Analyzer) Metrics() map[string]float64 {
	return maps.Clone(a.metrics)
}

// NetworkMetrics returns the metrics of the last AnalyzeNetwork call, or the
// zero value if the session has not been analyzed.
func (a *Analyzer) NetworkMetrics() NetworkMetrics {
	return NetworkMetrics{
		NodeCount:             int(a.metrics[MetricNodeCount]),
		EdgeCount:             int(a.metrics[MetricEdgeCount]),
		Density:               a.metrics[MetricDensity],
		ClusteringCoefficient: a.metrics[MetricClusteringCoefficient],
		AveragePathLength:     a.metrics[MetricAveragePathLength],
	}
}

// AnalyzeNetwork resets every cache, computes the network metrics of g and
// marks the session analyzed.
//
//   - density: edges / (n(n-1)/2), 0 when n < 2
//   - clustering_coefficient: mean over nodes with at least two distinct
//     neighbors of the fraction of neighbor pairs that are adjacent
//   - average_path_length: mean hop count over unordered reachable pairs;
//     unreachable pairs are skipped and the result is 0 when none is reachable
func (a *Analyzer) AnalyzeNetwork(g *graph.Graph) (NetworkMetrics, error) {
	clear(a.metrics)
	clear(a.centrality)
	a.memo.Invalidate()
	a.analyzed = false

	ix := a.bind(g)
	n := ix.Len()

	a.metrics[MetricNodeCount] = float64(n)
	a.metrics[MetricEdgeCount] = float64(ix.Edges)
	a.metrics[MetricDensity] = density(n, ix.Edges)
	a.metrics[MetricClusteringCoefficient] = clusteringCoefficient(ix)

	apl, err := a.averagePathLength(ix)
	if err != nil {
		return NetworkMetrics{}, err
	}
	a.metrics[MetricAveragePathLength] = apl

	a.analyzed = true
	return a.NetworkMetrics(), nil
}

// bind interns g and binds the memo to its topology. The centrality cache is
// dropped whenever g's topology differs from the one it was computed for,
// even if another session sharing the memo already rebound it.
func (a *Analyzer) bind(g *graph.Graph) *graph.Index {
	topology := graph.TopologyHash(g)
	a.memo.Bind(topology)
	if a.topology != topology {
		a.topology = topology
		clear(a.centrality)
	}
	return graph.NewIndex(g)
}

func density(n, edges int) float64 {
	if n < 2 {
		return 0
	}
	return float64(edges) / (float64(n) * float64(n-1) / 2)
}

func clusteringCoefficient(ix *graph.Index) float64 {
	n := ix.Len()
	neighbors := make([][]int, n)
	adjacent := make([]map[int]struct{}, n)
	for v := range n {
		neighbors[v] = ix.Neighbors(v)
		adjacent[v] = make(map[int]struct{}, len(neighbors[v]))
		for _, u := range neighbors[v] {
			adjacent[v][u] = struct{}{}
		}
	}

	total, valid := 0.0, 0
	for v := range n {
		nb := neighbors[v]
		if len(nb) < 2 {
			continue
		}
		links := 0
		for i := range nb {
			for j := i + 1; j < len(nb); j++ {
				if _, ok := adjacent[nb[i]][nb[j]]; ok {
					links++
				}
			}
		}
		possible := len(nb) * (len(nb) - 1) / 2
		total += float64(links) / float64(possible)
		valid++
	}
	if valid == 0 {
		return 0
	}
	return total / float64(valid)
}

func (a *Analyzer) averagePathLength(ix *graph.Index) (float64, error) {
	if err := a.fillPairs(ix); err != nil {
		return 0, err
	}
	total, count := 0, 0
	for i := range ix.Len() {
		for j := i + 1; j < ix.Len(); j++ {
			p, _ := a.memo.lookup(ix.IDs[i], ix.IDs[j])
			if p == nil {
				continue
			}
			total += len(p) - 1
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(total) / float64(count), nil
}
