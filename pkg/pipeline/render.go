package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	errs "github.com/heliosviz/graphkit/pkg/errors"
	"github.com/heliosviz/graphkit/pkg/graph"
	"github.com/heliosviz/graphkit/pkg/observability"
	"github.com/heliosviz/graphkit/pkg/render/nodelink"
)

// Render draws g in opts.Format. DOT output is the Graphviz source itself;
// the other formats are laid out by Graphviz. Rendered artifacts are not
// cached. An empty graph is an EMPTY_GRAPH error.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, opts RenderOptions) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if g.NodeCount() == 0 {
		return nil, errs.New(errs.ErrCodeEmptyGraph, "nothing to render")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "pipeline."+StageRender, trace.WithAttributes(
		attribute.String("render.format", opts.Format),
		attribute.Int("graph.nodes", g.NodeCount()),
	))
	defer span.End()

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()

	data, err := renderFormat(ctx, g, opts)
	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		fail(span, err)
		return nil, fmt.Errorf("render %s: %w", opts.Format, err)
	}

	r.Logger.Info("rendered graph",
		"format", opts.Format,
		"bytes", len(data),
		"duration", time.Since(start))
	return data, nil
}

func renderFormat(ctx context.Context, g *graph.Graph, opts RenderOptions) ([]byte, error) {
	nl := nodelink.Options{
		Clusters:  opts.Clusters,
		Highlight: opts.Highlight,
		Directed:  opts.Directed,
		Weights:   opts.Weights,
		Pinned:    opts.Pinned,
	}
	dot := nodelink.ToDOT(g, nl)

	switch opts.Format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(dot, nl.Engine())
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, nl.Engine(), opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot, nl.Engine())
	}
	return nil, errs.New(errs.ErrCodeUnsupported, "unsupported render format %q", opts.Format)
}
