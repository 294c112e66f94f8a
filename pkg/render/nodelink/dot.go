package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/heliosviz/graphkit/pkg/graph"
	"github.com/heliosviz/graphkit/pkg/render"
)

// Engine is a Graphviz layout engine.
type Engine string

const (
	EngineDot   Engine = "dot"
	EngineNeato Engine = "neato"
)

// Palette colors cluster i with Palette[i % len(Palette)].
var Palette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3",
	"#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd",
}

const highlightColor = "#d62728"

// Options configures node-link diagram generation.
type Options struct {
	// Clusters fills each listed node with its cluster's palette color.
	// Unlisted nodes stay white.
	Clusters [][]string
	// Highlight is a node sequence (usually a shortest path) drawn in bold.
	Highlight []string
	// Directed draws source -> target arrows instead of plain lines.
	Directed bool
	// Weights labels every edge with its weight.
	Weights bool
	// Pinned fixes nodes at their coordinates (render with EngineNeato).
	Pinned bool
}

// Engine returns the layout engine the options call for.
func (o Options) Engine() Engine {
	if o.Pinned {
		return EngineNeato
	}
	return EngineDot
}

// ToDOT converts g to Graphviz DOT source. Edges with an unknown endpoint are
// omitted; Graphviz would otherwise invent nodes for them.
func ToDOT(g *graph.Graph, opts Options) string {
	ix := graph.NewIndex(g)

	kind, arrow := "graph", "--"
	if opts.Directed {
		kind, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	if opts.Pinned {
		buf.WriteString("  splines=true;\n")
	}
	buf.WriteString("\n")

	color := clusterColors(opts.Clusters)
	onPath, pathEdges := highlight(opts.Highlight)

	for _, n := range ix.Nodes {
		attrs := []string{fmt.Sprintf("label=%q", n.DisplayLabel())}
		if c, ok := color[n.ID]; ok {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
		}
		if onPath[n.ID] {
			attrs = append(attrs, fmt.Sprintf("color=%q", highlightColor), "penwidth=3")
		}
		if opts.Pinned {
			attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(n.X), fmtFloat(-n.Y)))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if _, ok := ix.Lookup(e.Source); !ok {
			continue
		}
		if _, ok := ix.Lookup(e.Target); !ok {
			continue
		}
		var attrs []string
		if opts.Weights {
			attrs = append(attrs, fmt.Sprintf("label=%q", fmtFloat(e.Weight)))
		}
		if pathEdges[[2]string{e.Source, e.Target}] || (!opts.Directed && pathEdges[[2]string{e.Target, e.Source}]) {
			attrs = append(attrs, fmt.Sprintf("color=%q", highlightColor), "penwidth=3")
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q %s %q;\n", e.Source, arrow, e.Target)
			continue
		}
		fmt.Fprintf(&buf, "  %q %s %q [%s];\n", e.Source, arrow, e.Target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func clusterColors(clusters [][]string) map[string]string {
	color := make(map[string]string)
	for i, c := range clusters {
		for _, id := range c {
			if _, ok := color[id]; !ok {
				color[id] = Palette[i%len(Palette)]
			}
		}
	}
	return color
}

func highlight(path []string) (map[string]bool, map[[2]string]bool) {
	nodes := make(map[string]bool, len(path))
	edges := make(map[[2]string]bool, len(path))
	for i, id := range path {
		nodes[id] = true
		if i > 0 {
			edges[[2]string{path[i-1], id}] = true
		}
	}
	return nodes, edges
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG lays out DOT source with engine and renders it to SVG.
func RenderSVG(dot string, engine Engine) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	if engine == "" {
		engine = EngineDot
	}
	gv.SetLayout(graphviz.Layout(engine))

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz <svg> tag with one whose size
// matches its viewBox, so the output scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders DOT source as PDF via SVG. It needs rsvg-convert.
func RenderPDF(ctx context.Context, dot string, engine Engine) ([]byte, error) {
	svg, err := RenderSVG(dot, engine)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders DOT source as PNG via SVG at the given scale. It needs
// rsvg-convert.
func RenderPNG(ctx context.Context, dot string, engine Engine, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot, engine)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
