package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heliosviz/graphkit/pkg/analysis"
	"github.com/heliosviz/graphkit/pkg/cache"
	"github.com/heliosviz/graphkit/pkg/cluster"
	errs "github.com/heliosviz/graphkit/pkg/errors"
	"github.com/heliosviz/graphkit/pkg/graph"
	"github.com/heliosviz/graphkit/pkg/graph/algo"
	"github.com/heliosviz/graphkit/pkg/observability"
)

var tracer = otel.Tracer("github.com/heliosviz/graphkit/pkg/pipeline")

// Runner runs pipeline stages with caching.
//
// The Runner holds no per-run state: every call builds its own analyzer or
// clusterer, so one Runner may serve concurrent calls with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// means DefaultKeyer and a nil logger means log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load reads a graph file.
func (r *Runner) Load(ctx context.Context, path string) (*graph.Graph, error) {
	ctx, span := tracer.Start(ctx, "pipeline."+StageLoad, trace.WithAttributes(attribute.String("graph.path", path)))
	defer span.End()

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	g, err := graph.ReadFile(path)
	nodes := 0
	if g != nil {
		nodes = g.NodeCount()
	}
	hooks.OnLoadComplete(ctx, path, nodes, time.Since(start), err)
	if err != nil {
		fail(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("graph.nodes", g.NodeCount()), attribute.Int("graph.edges", g.EdgeCount()))
	r.Logger.Debug("loaded graph", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount(), "duration", time.Since(start))
	return g, nil
}

// Analyze computes network and visualization metrics, plus every node's
// centrality when opts.Centrality is set.
func (r *Runner) Analyze(ctx context.Context, g *graph.Graph, opts Options) (*Report, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	hash := graph.Hash(g)
	key := r.Keyer.ReportKey(hash, opts.ReportKeyOpts(cache.KindAnalyze))
	if rep, ok := lookup[Report](ctx, r, cache.KindAnalyze, key, opts.Refresh); ok {
		rep.CacheHit = true
		logger.Debug("report from cache", "kind", cache.KindAnalyze, "id", rep.ID)
		return rep, nil
	}

	start := time.Now()
	rep := &Report{ID: uuid.NewString(), GraphHash: hash}
	err := r.stage(ctx, StageAnalyze, g, func(ctx context.Context) error {
		a := analysis.New(
			analysis.WithWorkers(opts.Workers),
			analysis.WithOverlapThreshold(opts.OverlapThreshold),
		)
		m, err := a.AnalyzeNetwork(g)
		if err != nil {
			return err
		}
		rep.Metrics = m
		rep.Visualization = a.VisualizationMetrics(g)
		rep.Crossings = analysis.SegmentCrossings(g)
		rep.Components = len(algo.ConnectedComponents(g))
		rep.Issues = g.Issues()

		if opts.Centrality {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := a.AllCentrality(g)
			if err != nil {
				return err
			}
			rep.Centrality = c
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rep.Stats = Stats{
		NodeCount: rep.Metrics.NodeCount,
		EdgeCount: rep.Metrics.EdgeCount,
		Duration:  time.Since(start),
	}

	if rep.Metrics.NodeCount == 0 {
		logger.Warn("graph has no nodes; metrics default to 0")
	}
	if len(rep.Issues) > 0 {
		logger.Warn("graph has structural issues", "count", len(rep.Issues))
	}
	logger.Info("analyzed network",
		"nodes", rep.Metrics.NodeCount,
		"edges", rep.Metrics.EdgeCount,
		"duration", rep.Stats.Duration)

	r.store(ctx, cache.KindAnalyze, key, rep, opts.TTL)
	return rep, nil
}

// Cluster partitions the graph's nodes with opts.Algorithm and scores the
// partition.
func (r *Runner) Cluster(ctx context.Context, g *graph.Graph, opts Options) (*ClusterReport, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	alg, err := cluster.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return nil, err
	}
	opts.Algorithm = alg.String()
	logger := r.logger(opts)

	hash := graph.Hash(g)
	key := r.Keyer.ReportKey(hash, opts.ReportKeyOpts(cache.KindCluster))
	if rep, ok := lookup[ClusterReport](ctx, r, cache.KindCluster, key, opts.Refresh); ok {
		rep.CacheHit = true
		logger.Debug("report from cache", "kind", cache.KindCluster, "id", rep.ID)
		return rep, nil
	}

	start := time.Now()
	rep := &ClusterReport{ID: uuid.NewString(), GraphHash: hash, Algorithm: alg.String()}
	err = r.stage(ctx, StageCluster, g, func(ctx context.Context) error {
		c := cluster.New()
		var clusters [][]graph.Node
		var err error
		switch alg {
		case cluster.KMeans:
			clusters, err = c.KMeans(g.Nodes, opts.K)
			rep.K = opts.K
		case cluster.Hierarchical:
			clusters, err = c.Hierarchical(g.Nodes, opts.K)
			rep.K = opts.K
		case cluster.CommunityDetection:
			clusters = c.DetectCommunities(g.Nodes, g.Edges)
		}
		if err != nil {
			return err
		}
		rep.Clusters = cluster.IDs(clusters)
		rep.Iterations = c.Iterations
		rep.Silhouette = c.Silhouette()
		rep.Modularity = c.Modularity(g.Edges)
		return nil
	})
	if err != nil {
		return nil, err
	}
	rep.Stats = Stats{NodeCount: g.NodeCount(), EdgeCount: g.EdgeCount(), Duration: time.Since(start)}

	logger.Info("clustered nodes",
		"algorithm", rep.Algorithm,
		"clusters", len(rep.Clusters),
		"iterations", rep.Iterations,
		"duration", rep.Stats.Duration)

	r.store(ctx, cache.KindCluster, key, rep, opts.TTL)
	return rep, nil
}

// Path finds the unweighted shortest path from src to dst, and the weighted
// one as well when opts.Weighted is set. An unreachable target is reported,
// not returned as an error; an unknown endpoint is a NODE_NOT_FOUND error.
func (r *Runner) Path(ctx context.Context, g *graph.Graph, src, dst string, opts Options) (*PathReport, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	for _, id := range []string{src, dst} {
		if _, ok := g.Node(id); !ok {
			return nil, errs.NodeNotFound(id)
		}
	}
	logger := r.logger(opts)

	hash := graph.Hash(g)
	keyOpts := opts.ReportKeyOpts(cache.KindPath)
	keyOpts.Source, keyOpts.Target = src, dst
	key := r.Keyer.ReportKey(hash, keyOpts)
	if rep, ok := lookup[PathReport](ctx, r, cache.KindPath, key, opts.Refresh); ok {
		rep.CacheHit = true
		logger.Debug("report from cache", "kind", cache.KindPath, "id", rep.ID)
		return rep, nil
	}

	start := time.Now()
	rep := &PathReport{ID: uuid.NewString(), GraphHash: hash, Source: src, Target: dst}
	err := r.stage(ctx, StagePath, g, func(ctx context.Context) error {
		a := analysis.New(analysis.WithWorkers(opts.Workers))
		if hops, ok := a.ShortestPath(src, dst, g); ok {
			rep.Reachable = true
			rep.Hops = hops
			rep.Length = len(hops) - 1
		}
		if !opts.Weighted {
			return nil
		}
		p, err := algo.ShortestPath(g, src, dst)
		if err != nil {
			return err
		}
		rep.Weighted = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	rep.Stats = Stats{NodeCount: g.NodeCount(), EdgeCount: g.EdgeCount(), Duration: time.Since(start)}

	logger.Info("found path",
		"source", src,
		"target", dst,
		"reachable", rep.Reachable,
		"hops", rep.Length,
		"duration", rep.Stats.Duration)

	r.store(ctx, cache.KindPath, key, rep, opts.TTL)
	return rep, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

// stage runs fn inside a span and between the stage hooks.
func (r *Runner) stage(ctx context.Context, name string, g *graph.Graph, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx, span := tracer.Start(ctx, "pipeline."+name, trace.WithAttributes(
		attribute.Int("graph.nodes", g.NodeCount()),
		attribute.Int("graph.edges", g.EdgeCount()),
	))
	defer span.End()

	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, name, g.NodeCount())
	start := time.Now()
	err := fn(ctx)
	hooks.OnStageComplete(ctx, name, time.Since(start), err)
	if err != nil {
		fail(span, err)
	}
	return err
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if code := errs.GetCode(err); code != "" {
		span.SetAttributes(attribute.String("error.code", string(code)))
	}
}

// lookup returns the cached report under key. Read and decode failures are
// treated as misses.
func lookup[T any](ctx context.Context, r *Runner, kind, key string, refresh bool) (*T, bool) {
	if refresh {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "kind", kind, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		r.Logger.Warn("discarding unreadable cache entry", "kind", kind, "err", err)
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	return &v, true
}

// store writes a report to the cache. Failures are logged, never returned:
// the report is still valid.
func (r *Runner) store(ctx context.Context, kind, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		r.Logger.Warn("encode report for cache", "kind", kind, "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "kind", kind, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
