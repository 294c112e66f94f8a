package prom

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/heliosviz/graphkit/pkg/observability"
)

func TestStageMetrics(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.OnStageStart(ctx, "analyze", 4)
	c.OnStageComplete(ctx, "analyze", 10*time.Millisecond, nil)
	c.OnStageComplete(ctx, "analyze", 20*time.Millisecond, nil)
	c.OnStageComplete(ctx, "cluster", time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(c.StagesTotal.WithLabelValues("analyze", StatusSuccess)); got != 2 {
		t.Errorf("analyze successes = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.StagesTotal.WithLabelValues("cluster", StatusError)); got != 1 {
		t.Errorf("cluster errors = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(c.StageDurationSeconds); n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
}

func TestLoadMetrics(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.OnLoadComplete(ctx, "g.json", 12, time.Millisecond, nil)
	c.OnLoadComplete(ctx, "bad.json", 0, time.Millisecond, errors.New("decode"))

	if got := testutil.ToFloat64(c.GraphNodes); got != 12 {
		t.Errorf("graph nodes = %v, want 12 (failed loads must not reset it)", got)
	}
	if got := testutil.ToFloat64(c.LoadsTotal.WithLabelValues(StatusError)); got != 1 {
		t.Errorf("load errors = %v, want 1", got)
	}
}

func TestCacheMetrics(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.OnCacheMiss(ctx, "analyze")
	c.OnCacheSet(ctx, "analyze", 300)
	c.OnCacheHit(ctx, "analyze")
	c.OnCacheHit(ctx, "analyze")

	tests := []struct {
		result string
		want   float64
	}{
		{CacheHit, 2},
		{CacheMiss, 1},
		{CacheSet, 1},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(c.CacheOpsTotal.WithLabelValues("analyze", tt.result)); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.result, got, tt.want)
		}
	}
	if got := testutil.ToFloat64(c.CacheBytesWritten); got != 300 {
		t.Errorf("bytes written = %v, want 300", got)
	}
}

func TestRenderMetrics(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.OnRenderComplete(ctx, "svg", 1024, time.Millisecond, nil)
	c.OnRenderComplete(ctx, "svg", 0, time.Millisecond, errors.New("graphviz"))

	expected := `
# HELP graphkit_render_bytes_total Bytes of rendered artifacts, by format
# TYPE graphkit_render_bytes_total counter
graphkit_render_bytes_total{format="svg"} 1024
`
	if err := testutil.CollectAndCompare(c.RenderBytesTotal, strings.NewReader(expected)); err != nil {
		t.Error(err)
	}
	if got := testutil.ToFloat64(c.RendersTotal.WithLabelValues("svg", StatusError)); got != 1 {
		t.Errorf("render errors = %v, want 1", got)
	}
}

func TestWriteToTextfile(t *testing.T) {
	c := New()
	c.OnStageComplete(context.Background(), "path", time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "graphkit.prom")
	if err := c.WriteToTextfile(path); err != nil {
		t.Fatalf("WriteToTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `graphkit_pipeline_stages_total{stage="path",status="success"} 1`) {
		t.Errorf("textfile missing stage counter:\n%s", data)
	}
}

func TestRegistersAsHooks(t *testing.T) {
	defer observability.Reset()

	c := New()
	observability.SetPipelineHooks(c)
	observability.SetCacheHooks(c)

	observability.Pipeline().OnStageComplete(context.Background(), "analyze", 0, nil)
	observability.Cache().OnCacheHit(context.Background(), "analyze")

	if got := testutil.ToFloat64(c.StagesTotal.WithLabelValues("analyze", StatusSuccess)); got != 1 {
		t.Errorf("stage counter via registry = %v", got)
	}
	if got := testutil.ToFloat64(c.CacheOpsTotal.WithLabelValues("analyze", CacheHit)); got != 1 {
		t.Errorf("cache counter via registry = %v", got)
	}
}
