package scene

import (
	"github.com/matzehuels/relgraph/pkg/geometry"
	"github.com/matzehuels/relgraph/pkg/graph"
)

// Kind discriminates the primitive variants.
type Kind string

const (
	KindEdge   Kind = "edge"
	KindCircle Kind = "circle"
	KindLabel  Kind = "label"
)

// FillKind is the visual class of a node circle. Mapping classes to colors is
// the renderer's concern.
type FillKind string

const (
	FillValue        FillKind = "value"
	FillRelationship FillKind = "relationship"
)

// FillFor returns the fill class for a node kind.
func FillFor(k graph.NodeKind) FillKind {
	switch k {
	case graph.KindRelationship:
		return FillRelationship
	default:
		return FillValue
	}
}

// Primitive is one drawable element. The set of implementations is closed:
// [EdgeSegment], [Circle] and [Label].
type Primitive interface {
	Kind() Kind
	Bounds() geometry.Rect
	primitive()
}

// EdgeSegment is a line drawn in local coordinates from (0,0) to (Length,0),
// translated to (X1,Y1) and rotated by RotationDeg. (X2,Y2) is the resulting
// far end in canvas coordinates.
type EdgeSegment struct {
	Edge   graph.EdgeID `json:"edge"`
	Source graph.NodeID `json:"source"`
	Target graph.NodeID `json:"target"`

	X1          float64 `json:"x1"`
	Y1          float64 `json:"y1"`
	X2          float64 `json:"x2"`
	Y2          float64 `json:"y2"`
	RotationDeg float64 `json:"rotation_deg"`
	Length      float64 `json:"length"`
	StartArrow  bool    `json:"start_arrow"`
	EndArrow    bool    `json:"end_arrow"`
}

// Circle is a node disc.
type Circle struct {
	Node graph.NodeID `json:"node"`
	CX   float64      `json:"cx"`
	CY   float64      `json:"cy"`
	R    float64      `json:"r"`
	Fill FillKind     `json:"fill"`
}

// Label is the text drawn at a node's center.
type Label struct {
	Node graph.NodeID `json:"node"`
	X    float64      `json:"x"`
	Y    float64      `json:"y"`
	Text string       `json:"text"`
}

func (EdgeSegment) Kind() Kind { return KindEdge }
func (Circle) Kind() Kind      { return KindCircle }
func (Label) Kind() Kind       { return KindLabel }

func (EdgeSegment) primitive() {}
func (Circle) primitive()      {}
func (Label) primitive()       {}

// Anchor returns the translate origin of the segment.
func (e EdgeSegment) Anchor() geometry.Point { return geometry.Pt(e.X1, e.Y1) }

// End returns the far end of the segment.
func (e EdgeSegment) End() geometry.Point { return geometry.Pt(e.X2, e.Y2) }

// Bounds returns the box spanned by the segment's two ends.
func (e EdgeSegment) Bounds() geometry.Rect {
	return geometry.RectAround(e.Anchor(), 0).Union(geometry.RectAround(e.End(), 0))
}

// Bounds returns the box enclosing the disc.
func (c Circle) Bounds() geometry.Rect { return geometry.RectAround(geometry.Pt(c.CX, c.CY), c.R) }

// Bounds returns the anchor point of the label; text extent is unknown here.
func (l Label) Bounds() geometry.Rect { return geometry.RectAround(geometry.Pt(l.X, l.Y), 0) }

func newEdgeSegment(e graph.Edge, s geometry.Segment) EdgeSegment {
	end := s.End()
	return EdgeSegment{
		Edge:        e.ID,
		Source:      e.Source,
		Target:      e.Target,
		X1:          s.Anchor.X,
		Y1:          s.Anchor.Y,
		X2:          end.X,
		Y2:          end.Y,
		RotationDeg: s.AngleDeg,
		Length:      s.Length,
		StartArrow:  s.StartArrow,
		EndArrow:    s.EndArrow,
	}
}
