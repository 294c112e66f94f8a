// Package prom implements the observability hooks with Prometheus collectors.
//
// A [Collector] owns a private registry, so several collectors can coexist
// (tests create one each). The CLI registers one collector for both hook
// kinds and, when a metrics file is configured, writes the registry in the
// node_exporter textfile format on exit.
package prom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heliosviz/graphkit/pkg/observability"
)

const namespace = "graphkit"

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Cache result label values.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
	CacheSet  = "set"
)

// Collector records pipeline and cache events.
type Collector struct {
	registry *prometheus.Registry

	// LoadsTotal counts graph file loads. Labels: status
	LoadsTotal *prometheus.CounterVec
	// GraphNodes is the node count of the last loaded graph.
	GraphNodes prometheus.Gauge
	// StagesTotal counts pipeline stages. Labels: stage, status
	StagesTotal *prometheus.CounterVec
	// StageDurationSeconds measures stage latency. Labels: stage
	StageDurationSeconds *prometheus.HistogramVec
	// RendersTotal counts rendered artifacts. Labels: format, status
	RendersTotal *prometheus.CounterVec
	// RenderBytesTotal sums the size of rendered artifacts. Labels: format
	RenderBytesTotal *prometheus.CounterVec
	// CacheOpsTotal counts report cache operations. Labels: kind, result
	CacheOpsTotal *prometheus.CounterVec
	// CacheBytesWritten sums bytes written to the report cache.
	CacheBytesWritten prometheus.Counter
}

// New creates a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		LoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "loads_total",
			Help:      "Graph files loaded, by status",
		}, []string{"status"}),
		GraphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "nodes",
			Help:      "Node count of the last loaded graph",
		}),
		StagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stages_total",
			Help:      "Pipeline stages run, by stage and status",
		}, []string{"stage", "status"}),
		StageDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"stage"}),
		RendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "artifacts_total",
			Help:      "Rendered artifacts, by format and status",
		}, []string{"format", "status"}),
		RenderBytesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "bytes_total",
			Help:      "Bytes of rendered artifacts, by format",
		}, []string{"format"}),
		CacheOpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "operations_total",
			Help:      "Report cache operations, by report kind and result",
		}, []string{"kind", "result"}),
		CacheBytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "bytes_written_total",
			Help:      "Bytes written to the report cache",
		}),
	}
	c.registry.MustRegister(
		c.LoadsTotal,
		c.GraphNodes,
		c.StagesTotal,
		c.StageDurationSeconds,
		c.RendersTotal,
		c.RenderBytesTotal,
		c.CacheOpsTotal,
		c.CacheBytesWritten,
	)
	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteToTextfile writes every metric to path in the text exposition format.
func (c *Collector) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

// =============================================================================
// observability.PipelineHooks
// =============================================================================

func (c *Collector) OnLoadStart(context.Context, string) {}

func (c *Collector) OnLoadComplete(_ context.Context, _ string, nodeCount int, _ time.Duration, err error) {
	c.LoadsTotal.WithLabelValues(status(err)).Inc()
	if err == nil {
		c.GraphNodes.Set(float64(nodeCount))
	}
}

func (c *Collector) OnStageStart(context.Context, string, int) {}

func (c *Collector) OnStageComplete(_ context.Context, stage string, d time.Duration, err error) {
	c.StagesTotal.WithLabelValues(stage, status(err)).Inc()
	c.StageDurationSeconds.WithLabelValues(stage).Observe(d.Seconds())
}

func (c *Collector) OnRenderStart(context.Context, string) {}

func (c *Collector) OnRenderComplete(_ context.Context, format string, size int, _ time.Duration, err error) {
	c.RendersTotal.WithLabelValues(format, status(err)).Inc()
	if err == nil {
		c.RenderBytesTotal.WithLabelValues(format).Add(float64(size))
	}
}

// =============================================================================
// observability.CacheHooks
// =============================================================================

func (c *Collector) OnCacheHit(_ context.Context, kind string) {
	c.CacheOpsTotal.WithLabelValues(kind, CacheHit).Inc()
}

func (c *Collector) OnCacheMiss(_ context.Context, kind string) {
	c.CacheOpsTotal.WithLabelValues(kind, CacheMiss).Inc()
}

func (c *Collector) OnCacheSet(_ context.Context, kind string, size int) {
	c.CacheOpsTotal.WithLabelValues(kind, CacheSet).Inc()
	c.CacheBytesWritten.Add(float64(size))
}

var (
	_ observability.PipelineHooks = (*Collector)(nil)
	_ observability.CacheHooks    = (*Collector)(nil)
)
