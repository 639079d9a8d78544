package sink

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/matzehuels/relgraph/pkg/layout"
	"github.com/matzehuels/relgraph/pkg/scene"
)

// ArrowMarkerID is the id of the shared arrowhead marker.
const ArrowMarkerID = "arrowhead"

const (
	edgeStrokeWidth   = 2
	circleStrokeWidth = 1.5
	labelFontSize     = "10px"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	frame   layout.Frame
	palette Palette
	border  bool
	scale   float64
}

// WithFrame sets the viewBox and default pixel size.
func WithFrame(f layout.Frame) SVGOption { return func(r *svgRenderer) { r.frame = f } }

// WithBorder draws a 1px black frame around the canvas.
func WithBorder() SVGOption { return func(r *svgRenderer) { r.border = true } }

// WithScale multiplies the pixel width and height; the viewBox is unchanged.
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// RenderSVG draws prims as a standalone SVG document.
func RenderSVG(prims []scene.Primitive, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	w, h := r.frame.Width, r.frame.Height
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(w), num(h), num(w*r.scale), num(h*r.scale))

	r.renderDefs(&buf)
	if r.border {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%s" height="%s" fill="none" stroke="black" stroke-width="1"/>`+"\n", num(w), num(h))
	}

	for _, p := range prims {
		switch p := p.(type) {
		case scene.EdgeSegment:
			r.renderEdge(&buf, p)
		case scene.Circle:
			r.renderCircle(&buf, p)
		case scene.Label:
			r.renderLabel(&buf, p)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		frame:   layout.DefaultFrame(),
		palette: DefaultPalette(),
		scale:   1,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}
	return r
}

func (r *svgRenderer) renderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <marker id="%s" viewBox="0 0 10 10" refX="8" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse">`+"\n", ArrowMarkerID)
	fmt.Fprintf(buf, `      <path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/>`+"\n", attr(r.palette.Edge))
	buf.WriteString("    </marker>\n")
	buf.WriteString("  </defs>\n")
}

func (r *svgRenderer) renderEdge(buf *bytes.Buffer, e scene.EdgeSegment) {
	fmt.Fprintf(buf, `  <path class="edge" data-edge="%d" stroke="%s" stroke-width="%d" d="M0,0 L%s,0" transform="translate(%s, %s) rotate(%s)"`,
		e.Edge, attr(r.palette.Edge), edgeStrokeWidth, num(e.Length), num(e.X1), num(e.Y1), num(e.RotationDeg))
	if e.StartArrow {
		fmt.Fprintf(buf, ` marker-start="url(#%s)"`, ArrowMarkerID)
	}
	if e.EndArrow {
		fmt.Fprintf(buf, ` marker-end="url(#%s)"`, ArrowMarkerID)
	}
	buf.WriteString("/>\n")
}

func (r *svgRenderer) renderCircle(buf *bytes.Buffer, c scene.Circle) {
	fmt.Fprintf(buf, `  <circle class="node %s" data-node="%d" cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		c.Fill, c.Node, num(c.CX), num(c.CY), num(c.R), attr(r.palette.Fill(c.Fill)), attr(r.palette.Stroke), num(circleStrokeWidth))
}

func (r *svgRenderer) renderLabel(buf *bytes.Buffer, l scene.Label) {
	fmt.Fprintf(buf, `  <text class="label" x="%s" y="%s" dy=".3em" text-anchor="middle" fill="%s" font-size="%s">%s</text>`+"\n",
		num(l.X), num(l.Y), attr(r.palette.Text), labelFontSize, html.EscapeString(l.Text))
}

// num formats a coordinate with at most 3 decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func attr(s string) string { return html.EscapeString(s) }
