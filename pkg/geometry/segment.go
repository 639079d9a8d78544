package geometry

import (
	"math"

	"github.com/matzehuels/relgraph/pkg/graph"
)

const (
	// DefaultNodeRadius is the radius of a node circle in pixels.
	DefaultNodeRadius = 10.0

	// DefaultClearance is the gap between a node circle and the arrowhead
	// marker in pixels.
	DefaultClearance = 15.0
)

// Angle conversions multiply by one rounded factor, matching the usual
// to_degrees/to_radians rounding bit for bit.
const (
	radToDeg = 180 / math.Pi
	degToRad = math.Pi / 180
)

// Segment is the resolved drawable form of one edge.
type Segment struct {
	// Anchor is the translate origin: the source center advanced by half of
	// (nodeRadius + clearance) along the edge.
	Anchor Point `json:"anchor"`

	// AngleDeg is the rotation in degrees, atan2(dy, dx) of the edge.
	AngleDeg float64 `json:"angle_deg"`

	// Length is the local x extent of the line. It is the center distance
	// minus (nodeRadius + clearance) and may be zero or negative.
	Length float64 `json:"length"`

	// FullLength is the center-to-center distance.
	FullLength float64 `json:"full_length"`

	StartArrow bool `json:"start_arrow"`
	EndArrow   bool `json:"end_arrow"`
}

// Resolve computes the segment for an edge from src to dst drawn with the
// given direction.
func Resolve(src, dst Point, dir graph.Direction, nodeRadius, clearance float64) Segment {
	diff := dst.Sub(src)
	full := diff.Len()

	// Coincident endpoints have no direction; they resolve to angle 0.
	rad := 0.0
	if diff.X != 0 || diff.Y != 0 {
		rad = math.Atan2(diff.Y, diff.X)
	}

	reserve := nodeRadius + clearance
	start, end := dir.Arrows()

	return Segment{
		Anchor:     src.Add(FromAngle(rad).Scale(reserve / 2)),
		AngleDeg:   rad * radToDeg,
		Length:     full - reserve,
		FullLength: full,
		StartArrow: start,
		EndArrow:   end,
	}
}

// AngleRad returns the rotation in radians.
func (s Segment) AngleRad() float64 { return s.AngleDeg * degToRad }

// End returns the far end of the line in canvas coordinates.
func (s Segment) End() Point {
	return s.Anchor.Add(FromAngle(s.AngleRad()).Scale(s.Length))
}

// IsDegenerate reports whether the line has no positive extent.
func (s Segment) IsDegenerate() bool { return s.Length <= 0 }

// Local maps a point given in the segment's local frame to canvas coordinates.
func (s Segment) Local(p Point) Point {
	rad := s.AngleRad()
	sin, cos := math.Sincos(rad)
	return Point{
		X: s.Anchor.X + p.X*cos - p.Y*sin,
		Y: s.Anchor.Y + p.X*sin + p.Y*cos,
	}
}
