// Package nodelink draws graphs as node-link diagrams with Graphviz.
//
// [ToDOT] turns a graph into DOT source. Clusters color their members from a
// fixed palette, a highlighted path is drawn in bold red, and with
// [Options.Pinned] every node is fixed at its own coordinates so the drawing
// matches the layout that the visualization metrics score. [RenderSVG] runs
// Graphviz in-process:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Clusters: ids})
//	svg, err := nodelink.RenderSVG(dot, nodelink.EngineDot)
//
// Pinned drawings must be laid out with [EngineNeato]; the dot engine ignores
// node positions. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// This package uses [github.com/goccy/go-graphviz] for SVG rendering.
package nodelink
