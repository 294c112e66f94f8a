// Package render converts rendered SVG into other output formats.
//
// Graph drawing itself lives in the [nodelink] subpackage, which produces
// Graphviz DOT and SVG. [ToPDF] and [ToPNG] convert that SVG with the
// external rsvg-convert tool (from librsvg). Without it both return an
// UNSUPPORTED error:
//
//	svg, err := nodelink.RenderSVG(dot, nodelink.EngineDot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/heliosviz/graphkit/pkg/render/nodelink
package render
