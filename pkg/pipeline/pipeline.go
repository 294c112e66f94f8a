// Package pipeline runs the analytics engine for the CLI.
//
// The engine packages (graph, algo, analysis, cluster) are pure and
// synchronous. This package wraps them in the concerns a command-line run
// needs: reading graph files, caching finished reports, emitting observability
// hooks, tracing each stage, and logging.
//
// # Stages
//
//   - Load: read a graph file (JSON, YAML or TOML)
//   - Analyze: network metrics, visualization metrics, optional centrality
//   - Cluster: k-means, hierarchical or community detection plus quality scores
//   - Path: unweighted (memoized BFS) and optionally weighted shortest path
//   - Render: DOT, SVG, PNG or PDF drawing of the graph
//
// Analyze, Cluster and Path reports are cached by the content hash of the
// graph and the options that shape the report:
//
//	runner := pipeline.NewRunner(fileCache, nil, logger)
//	report, err := runner.Analyze(ctx, g, pipeline.Options{Centrality: true})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Metrics.Density, report.CacheHit)
package pipeline

import (
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/heliosviz/graphkit/pkg/analysis"
	"github.com/heliosviz/graphkit/pkg/cache"
	errs "github.com/heliosviz/graphkit/pkg/errors"
	"github.com/heliosviz/graphkit/pkg/graph"
	"github.com/heliosviz/graphkit/pkg/graph/algo"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultAlgorithm is the clustering algorithm used when none is given.
	DefaultAlgorithm = "kmeans"

	// DefaultK is the cluster count used when none is given.
	DefaultK = 2

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Stage names passed to observability hooks and used as span names.
const (
	StageLoad    = "load"
	StageAnalyze = "analyze"
	StageCluster = "cluster"
	StagePath    = "path"
	StageRender  = "render"
)

// Render formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// RenderFormats lists the supported render formats.
var RenderFormats = []string{FormatDOT, FormatSVG, FormatPNG, FormatPDF}

// =============================================================================
// Options
// =============================================================================

// Options configures Analyze, Cluster and Path. Zero values mean defaults.
type Options struct {
	// Analyze options
	Workers          int     `json:"-" validate:"gte=0"`
	OverlapThreshold float64 `json:"overlap_threshold,omitempty" validate:"gte=0"`
	Centrality       bool    `json:"centrality,omitempty"`

	// Cluster options
	Algorithm string `json:"algorithm,omitempty"`
	K         int    `json:"k,omitempty" validate:"gte=0"`

	// Path options
	Weighted bool `json:"weighted,omitempty"`

	// Cache options
	Refresh bool          `json:"-"`
	TTL     time.Duration `json:"-" validate:"gte=0"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" validate:"-"`

	validated bool
}

// RenderOptions configures Render.
type RenderOptions struct {
	Format    string     `validate:"required,oneof=dot svg png pdf"`
	Clusters  [][]string `validate:"-"`
	Highlight []string   `validate:"-"`
	Directed  bool
	Weights   bool
	Pinned    bool
	Scale     float64 `validate:"gte=0"`
}

var validate = validator.New()

// ValidateAndSetDefaults checks field ranges and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := validate.Struct(o); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidParameter, err, "invalid options")
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.OverlapThreshold == 0 {
		o.OverlapThreshold = analysis.DefaultOverlapThreshold
	}
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	if o.K == 0 {
		o.K = DefaultK
	}
	if o.TTL == 0 {
		o.TTL = cache.DefaultTTL
	}
	o.validated = true
	return nil
}

// ValidateAndSetDefaults checks the format and fills in the PNG scale.
func (o *RenderOptions) ValidateAndSetDefaults() error {
	if err := validate.Struct(o); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidParameter, err, "invalid render options")
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	return nil
}

// ReportKeyOpts returns the cache key options of a report of the given kind.
// Only the fields that change that kind of report are set.
func (o *Options) ReportKeyOpts(kind string) cache.ReportKeyOpts {
	k := cache.ReportKeyOpts{Kind: kind}
	switch kind {
	case cache.KindAnalyze:
		k.Centrality = o.Centrality
		k.OverlapThreshold = o.OverlapThreshold
	case cache.KindCluster:
		k.Algorithm = o.Algorithm
		k.K = o.K
	case cache.KindPath:
		k.Weighted = o.Weighted
	}
	return k
}

// =============================================================================
// Reports
// =============================================================================

// Stats describes the input and cost of a report.
type Stats struct {
	NodeCount int           `json:"node_count"`
	EdgeCount int           `json:"edge_count"`
	Duration  time.Duration `json:"duration_ns"`
}

// Report is the result of Analyze.
type Report struct {
	ID            string                                 `json:"id"`
	GraphHash     string                                 `json:"graph_hash"`
	Metrics       analysis.NetworkMetrics                `json:"metrics"`
	Visualization analysis.VisualizationMetrics          `json:"visualization"`
	Crossings     int                                    `json:"segment_crossings"`
	Components    int                                    `json:"components"`
	Centrality    map[string]analysis.CentralityMeasures `json:"centrality,omitempty"`
	Issues        []graph.Issue                          `json:"issues,omitempty"`
	Stats         Stats                                  `json:"stats"`

	// CacheHit reports whether this report was served from the cache.
	CacheHit bool `json:"-"`
}

// ClusterReport is the result of Cluster.
type ClusterReport struct {
	ID         string     `json:"id"`
	GraphHash  string     `json:"graph_hash"`
	Algorithm  string     `json:"algorithm"`
	K          int        `json:"k,omitempty"`
	Clusters   [][]string `json:"clusters"`
	Iterations int        `json:"iterations"`
	Silhouette float64    `json:"silhouette"`
	Modularity float64    `json:"modularity"`
	Stats      Stats      `json:"stats"`

	CacheHit bool `json:"-"`
}

// PathReport is the result of Path.
type PathReport struct {
	ID        string     `json:"id"`
	GraphHash string     `json:"graph_hash"`
	Source    string     `json:"source"`
	Target    string     `json:"target"`
	Reachable bool       `json:"reachable"`
	Hops      []string   `json:"hops,omitempty"`
	Length    int        `json:"length"`
	Weighted  *algo.Path `json:"weighted,omitempty"`
	Stats     Stats      `json:"stats"`

	CacheHit bool `json:"-"`
}
