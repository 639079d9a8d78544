package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/relgraph/pkg/errors"
	"github.com/matzehuels/relgraph/pkg/geometry"
	"github.com/matzehuels/relgraph/pkg/graph"
	"github.com/matzehuels/relgraph/pkg/layout"
	"github.com/matzehuels/relgraph/pkg/render/sink"
	"github.com/matzehuels/relgraph/pkg/scene"
)

// pointsPerInch converts node sizes to the inch units DOT expects.
const pointsPerInch = 72.0

// Options configures node-link diagram rendering.
type Options struct {
	// Frame is the viewport the positions were computed for. Zero means
	// [layout.DefaultFrame].
	Frame layout.Frame

	// NodeRadius is the circle radius in points. Zero means
	// [geometry.DefaultNodeRadius].
	NodeRadius float64
}

func (o Options) withDefaults() Options {
	if o.Frame.Width == 0 || o.Frame.Height == 0 {
		o.Frame = layout.DefaultFrame()
	}
	if o.NodeRadius <= 0 {
		o.NodeRadius = geometry.DefaultNodeRadius
	}
	return o
}

// ToDOT converts g to Graphviz DOT with each node pinned at its position.
// Nodes without a position are left for neato to place.
func ToDOT(g *graph.Graph, positions layout.Positions, opts Options) string {
	opts = opts.withDefaults()
	palette := sink.DefaultPalette()
	size := 2 * opts.NodeRadius / pointsPerInch

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=circle, fixedsize=true, width=%s, style=filled, color=%q, penwidth=1.5, fontsize=10, fontcolor=%q];\n",
		num(size), palette.Stroke, palette.Text)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=2, arrowsize=0.6];\n", palette.Edge)
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := []string{
			fmt.Sprintf("label=%q", strconv.Itoa(int(n.ID))),
			fmt.Sprintf("fillcolor=%q", palette.Fill(scene.FillFor(n.Kind))),
			fmt.Sprintf("class=%q", n.Kind.String()),
		}
		if p, ok := positions[n.ID]; ok {
			attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", num(p.X), num(opts.Frame.Height-p.Y)))
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  n%d -> n%d [dir=%s, id=\"e%d\"];\n", e.Source, e.Target, dotDir(e.Direction), e.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotDir maps an edge direction onto DOT's dir attribute. "back" puts the
// arrowhead at the source end.
func dotDir(d graph.Direction) string {
	switch start, end := d.Arrows(); {
	case start && end:
		return "both"
	case start:
		return "back"
	case end:
		return "forward"
	default:
		return "none"
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz neato.
// The viewBox is normalized to match the native renderer's output.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// pixel-sized one so the output embeds like the native SVG.
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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
