package layout

import (
	"math"

	"github.com/matzehuels/relgraph/pkg/geometry"
	"github.com/matzehuels/relgraph/pkg/graph"
)

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 500.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 500.0

	// DefaultMargin is the default gap between the layout circle and the
	// viewport edge.
	DefaultMargin = 50.0
)

// Frame is the viewport a layout is fitted into.
type Frame struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
	Margin float64 `json:"margin" toml:"margin"`
}

// DefaultFrame returns the 500×500 viewport with a 50px margin.
func DefaultFrame() Frame {
	return Frame{Width: DefaultWidth, Height: DefaultHeight, Margin: DefaultMargin}
}

// Center returns the middle of the viewport.
func (f Frame) Center() geometry.Point {
	return geometry.Point{X: f.Width / 2, Y: f.Height / 2}
}

// Radius returns the largest circle radius that keeps Margin pixels between
// the circle and the nearest viewport edge. It never returns less than zero.
func (f Frame) Radius() float64 {
	return math.Max(0, math.Min(f.Width, f.Height)/2-f.Margin)
}

// Place lays out g on the frame's circle.
func (f Frame) Place(g *graph.Graph) Positions {
	return Circular(g, f.Center(), f.Radius())
}
