package pipeline

import (
	"context"
	"strconv"

	"github.com/matzehuels/relgraph/pkg/errors"
	"github.com/matzehuels/relgraph/pkg/graph"
	"github.com/matzehuels/relgraph/pkg/layout"
	"github.com/matzehuels/relgraph/pkg/render"
	"github.com/matzehuels/relgraph/pkg/render/nodelink"
	"github.com/matzehuels/relgraph/pkg/render/sink"
	"github.com/matzehuels/relgraph/pkg/scene"
)

// frameState is everything a renderer may need.
type frameState struct {
	graph     *graph.Graph
	positions layout.Positions
	scene     []scene.Primitive
}

// renderFormat produces one artifact. PNG and PDF are converted from the SVG
// of the selected renderer.
func renderFormat(ctx context.Context, st frameState, opts *Options, format render.Format) ([]byte, error) {
	switch format {
	case render.FormatSVG:
		return renderSVG(ctx, st, opts)
	case render.FormatJSON:
		return sink.RenderJSON(st.scene, sink.WithJSONFrame(opts.Frame()), sink.WithJSONIndent())
	case render.FormatDOT:
		return []byte(toDOT(st, opts)), nil
	case render.FormatPNG, render.FormatPDF:
		svgScale, zoom := rasterScales(opts, format)
		svg, err := renderSVGScaled(ctx, st, opts, svgScale)
		if err != nil {
			return nil, err
		}
		return render.ConvertContext(ctx, svg, format, zoom)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
}

func renderSVG(ctx context.Context, st frameState, opts *Options) ([]byte, error) {
	return renderSVGScaled(ctx, st, opts, 1)
}

func renderSVGScaled(ctx context.Context, st frameState, opts *Options, scale float64) ([]byte, error) {
	if opts.renderer == render.RendererGraphviz {
		return nodelink.RenderSVG(ctx, toDOT(st, opts))
	}
	svgOpts := []sink.SVGOption{sink.WithFrame(opts.Frame()), sink.WithScale(scale)}
	if opts.Border {
		svgOpts = append(svgOpts, sink.WithBorder())
	}
	return sink.RenderSVG(st.scene, svgOpts...), nil
}

// rasterScales splits the PNG scale between the SVG pixel size and the
// converter zoom. Native SVG carries it in width/height; Graphviz output has
// a fixed size and is zoomed by rsvg-convert. PDF is never scaled.
func rasterScales(opts *Options, format render.Format) (svgScale, zoom float64) {
	if format != render.FormatPNG {
		return 1, 1
	}
	if opts.renderer == render.RendererGraphviz {
		return 1, opts.Scale
	}
	return opts.Scale, 1
}

func toDOT(st frameState, opts *Options) string {
	return nodelink.ToDOT(st.graph, st.positions, nodelink.Options{
		Frame:      opts.Frame(),
		NodeRadius: opts.NodeRadius,
	})
}

func formatScale(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
