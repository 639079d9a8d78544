package layout

import (
	"math"
	"slices"

	"github.com/matzehuels/relgraph/pkg/geometry"
	"github.com/matzehuels/relgraph/pkg/graph"
)

// Positions maps every node of a graph to its canvas position.
type Positions map[graph.NodeID]geometry.Point

// Circular places the nodes of g evenly on the circle of the given center and
// radius, starting at angle 0 (to the right of the center) and advancing
// clockwise on a y-down canvas. An empty graph yields an empty mapping.
func Circular(g *graph.Graph, center geometry.Point, radius float64) Positions {
	ids := g.NodeIDs()
	positions := make(Positions, len(ids))
	if len(ids) == 0 {
		return positions
	}

	n := float64(len(ids))
	for i, id := range ids {
		angle := float64(i) / n * 2 * math.Pi
		positions[id] = geometry.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return positions
}

// IDs returns the positioned node ids in ascending order.
func (p Positions) IDs() []graph.NodeID {
	ids := make([]graph.NodeID, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Covers reports whether every node of g has a position.
func (p Positions) Covers(g *graph.Graph) bool {
	for _, id := range g.NodeIDs() {
		if _, ok := p[id]; !ok {
			return false
		}
	}
	return true
}
