// Package geometry resolves the drawable segment of an edge between two node
// centers.
//
// An edge is not drawn center to center. [Resolve] shortens it by the node
// radius plus a fixed clearance so the line stops just outside the node circle,
// leaving room for an arrowhead marker. The result is expressed in local
// coordinates, a horizontal line from (0,0) to (Length,0), placed on the canvas
// by translating to [Segment.Anchor] and rotating by [Segment.AngleDeg]. This
// matches how vector renderers compose transforms:
//
//	<path d="M0,0 L75,0" transform="translate(12.5, 0) rotate(0)"/>
//
// Degenerate inputs never fail: coincident endpoints resolve to angle 0 and a
// non-positive length, and overlapping nodes yield a negative length that is
// passed through unclamped.
package geometry
