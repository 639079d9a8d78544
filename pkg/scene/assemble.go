package scene

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/relgraph/pkg/geometry"
	"github.com/matzehuels/relgraph/pkg/graph"
	"github.com/matzehuels/relgraph/pkg/layout"
)

// Option configures [Assemble].
type Option func(*assembler)

type assembler struct {
	nodeRadius float64
	clearance  float64
	logger     *log.Logger
}

// WithNodeRadius sets the node circle radius (default [geometry.DefaultNodeRadius]).
func WithNodeRadius(r float64) Option { return func(a *assembler) { a.nodeRadius = r } }

// WithClearance sets the arrowhead clearance (default [geometry.DefaultClearance]).
func WithClearance(c float64) Option { return func(a *assembler) { a.clearance = c } }

// WithLogger reports skipped edges and nodes at debug level.
func WithLogger(l *log.Logger) Option { return func(a *assembler) { a.logger = l } }

// Assemble converts g and its positions into draw primitives: every edge
// segment first, then a circle and a label per node.
func Assemble(g *graph.Graph, positions layout.Positions, opts ...Option) []Primitive {
	a := assembler{
		nodeRadius: geometry.DefaultNodeRadius,
		clearance:  geometry.DefaultClearance,
	}
	for _, opt := range opts {
		opt(&a)
	}

	prims := make([]Primitive, 0, g.EdgeCount()+2*g.NodeCount())

	for _, e := range g.Edges() {
		src, okS := positions[e.Source]
		dst, okT := positions[e.Target]
		if !okS || !okT {
			a.debug("skipping edge without position", "edge", e.ID, "source", e.Source, "target", e.Target)
			continue
		}
		seg := geometry.Resolve(src, dst, e.Direction, a.nodeRadius, a.clearance)
		prims = append(prims, newEdgeSegment(e, seg))
	}

	for _, n := range g.Nodes() {
		p, ok := positions[n.ID]
		if !ok {
			a.debug("skipping node without position", "node", n.ID)
			continue
		}
		prims = append(prims,
			Circle{Node: n.ID, CX: p.X, CY: p.Y, R: a.nodeRadius, Fill: FillFor(n.Kind)},
			Label{Node: n.ID, X: p.X, Y: p.Y, Text: strconv.Itoa(int(n.ID))},
		)
	}

	return prims
}

func (a *assembler) debug(msg string, keyvals ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, keyvals...)
	}
}

// Stats counts primitives per variant.
type Stats struct {
	Edges   int `json:"edges"`
	Circles int `json:"circles"`
	Labels  int `json:"labels"`
}

// Count tallies the primitives in prims.
func Count(prims []Primitive) Stats {
	var s Stats
	for _, p := range prims {
		switch p.(type) {
		case EdgeSegment:
			s.Edges++
		case Circle:
			s.Circles++
		case Label:
			s.Labels++
		}
	}
	return s
}

// Bounds returns the box enclosing every primitive and false when prims is empty.
func Bounds(prims []Primitive) (geometry.Rect, bool) {
	if len(prims) == 0 {
		return geometry.Rect{}, false
	}
	r := prims[0].Bounds()
	for _, p := range prims[1:] {
		r = r.Union(p.Bounds())
	}
	return r, true
}
