// Package nodelink renders relationship graphs through Graphviz.
//
// # Overview
//
// The native renderer in [sink] draws the scene itself. This package is the
// alternative: it writes the graph as DOT with every node pinned to its
// circular-layout position, then lets Graphviz (neato) draw nodes and route
// the edges. Arrowheads follow the edge direction the same way the native
// renderer places them.
//
// # Usage
//
//	positions := layout.DefaultFrame().Place(g)
//	dot := nodelink.ToDOT(g, positions, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// PDF and PNG come from converting that SVG with render.ConvertContext, which
// is what the pipeline does for the graphviz renderer.
//
// # DOT Format
//
// The [ToDOT] output can be rendered via [RenderSVG], saved and processed with
// external Graphviz tools (neato -n keeps the pinned positions), or
// customized before rendering. Positions are given in points with the y axis
// flipped, since Graphviz puts the origin at the bottom left.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [sink]: github.com/matzehuels/relgraph/pkg/render/sink
package nodelink
