// Package render turns assembled scenes into output artifacts.
//
// # Overview
//
// This package holds what the renderers share:
//
//   - Output format and renderer names ([Format], [Renderer])
//   - Generic format conversion (SVG to PDF/PNG)
//   - The native SVG and JSON writers (in [sink] subpackage)
//   - Graphviz node-link rendering with pinned positions (in [nodelink] subpackage)
//
// # Format Conversion
//
// [ConvertContext] converts any SVG to PDF or PNG using the external
// rsvg-convert tool (from librsvg). Both renderers go through it for raster
// and print output.
//
//	svg := sink.RenderSVG(prims, sink.WithFrame(frame))
//	pdf, err := render.ConvertContext(ctx, svg, render.FormatPDF, 1)
//	png, err := render.ConvertContext(ctx, svg, render.FormatPNG, 2)
//
// # Renderers
//
// [RendererNative] draws the scene primitives directly: a 500×500 viewBox by
// default, one shared arrowhead marker, and every edge as a rotated path.
// [RendererGraphviz] hands the node positions to Graphviz (neato with pinned
// nodes) and lets it route the edges.
//
// [sink]: github.com/matzehuels/relgraph/pkg/render/sink
// [nodelink]: github.com/matzehuels/relgraph/pkg/render/nodelink
package render
