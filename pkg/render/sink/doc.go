// Package sink writes assembled scenes to output formats.
//
// # Overview
//
// A "sink" transforms the primitives produced by [scene.Assemble] into a
// final output format:
//
//   - SVG: the native drawing, one element per primitive
//   - JSON: the primitive list for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] writes primitives in scene order, so edges sit beneath node
// circles and labels sit on top. Edges are paths drawn from the origin along
// the x axis and placed with a translate/rotate transform; arrowheads come
// from a single shared marker whose orientation reverses at the path start.
//
//	svg := sink.RenderSVG(prims,
//	    sink.WithFrame(layout.DefaultFrame()),
//	    sink.WithBorder(),
//	)
//
// [WithScale] multiplies the pixel size without touching the viewBox; the
// pipeline uses it to size PNG output.
//
// # JSON Output
//
// [RenderJSON] exports the frame and a tagged primitive list:
//
//	{"width":500,"height":500,"primitives":[{"type":"edge",...},{"type":"circle",...}]}
//
// # PDF and PNG Output
//
// Rasters and PDFs are converted from the SVG with [render.ConvertContext].
//
// [scene.Assemble]: github.com/matzehuels/relgraph/pkg/scene.Assemble
// [render.ConvertContext]: github.com/matzehuels/relgraph/pkg/render.ConvertContext
package sink
