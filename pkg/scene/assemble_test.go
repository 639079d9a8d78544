package scene

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/relgraph/pkg/geometry"
	"github.com/matzehuels/relgraph/pkg/graph"
	"github.com/matzehuels/relgraph/pkg/layout"
)

func TestAssembleEmpty(t *testing.T) {
	g := graph.New()
	pos := layout.Circular(g, geometry.Pt(250, 250), 200)
	if prims := Assemble(g, pos); len(prims) != 0 {
		t.Errorf("Assemble(empty) = %d primitives, want 0", len(prims))
	}
}

func TestAssembleOrdering(t *testing.T) {
	g := graph.Demo()
	pos := layout.DefaultFrame().Place(g)
	prims := Assemble(g, pos)

	if want := g.EdgeCount() + 2*g.NodeCount(); len(prims) != want {
		t.Fatalf("len = %d, want %d", len(prims), want)
	}

	seenNode := false
	for i, p := range prims {
		if p.Kind() == KindEdge && seenNode {
			t.Fatalf("edge primitive at %d after a node primitive", i)
		}
		if p.Kind() != KindEdge {
			seenNode = true
		}
	}

	for i, e := range g.Edges() {
		seg, ok := prims[i].(EdgeSegment)
		if !ok {
			t.Fatalf("prims[%d] = %T, want EdgeSegment", i, prims[i])
		}
		if seg.Edge != e.ID || seg.Source != e.Source || seg.Target != e.Target {
			t.Errorf("prims[%d] = edge %d (%d->%d), want edge %d", i, seg.Edge, seg.Source, seg.Target, e.ID)
		}
	}

	base := g.EdgeCount()
	for i, id := range g.NodeIDs() {
		c, ok := prims[base+2*i].(Circle)
		if !ok {
			t.Fatalf("prims[%d] = %T, want Circle", base+2*i, prims[base+2*i])
		}
		l, ok := prims[base+2*i+1].(Label)
		if !ok {
			t.Fatalf("prims[%d] = %T, want Label", base+2*i+1, prims[base+2*i+1])
		}
		if c.Node != id || l.Node != id {
			t.Errorf("node %d: circle %d, label %d", id, c.Node, l.Node)
		}
		if c.CX != pos[id].X || c.CY != pos[id].Y || l.X != pos[id].X || l.Y != pos[id].Y {
			t.Errorf("node %d not anchored at %v", id, pos[id])
		}
	}
}

func TestAssembleFillAndLabel(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.KindValue)
	g.AddNode(graph.KindRelationship)
	prims := Assemble(g, layout.DefaultFrame().Place(g), WithNodeRadius(7))

	want := []Primitive{
		Circle{Node: 0, CX: 450, CY: 250, R: 7, Fill: FillValue},
		Label{Node: 0, X: 450, Y: 250, Text: "0"},
	}
	for i, w := range want {
		if prims[i] != w {
			t.Errorf("prims[%d] = %+v, want %+v", i, prims[i], w)
		}
	}

	c := prims[2].(Circle)
	if c.Fill != FillRelationship {
		t.Errorf("node 1 fill = %v, want %v", c.Fill, FillRelationship)
	}
	if l := prims[3].(Label); l.Text != "1" {
		t.Errorf("node 1 label = %q, want %q", l.Text, "1")
	}
}

func TestAssembleEdgeGeometry(t *testing.T) {
	g := graph.New()
	v1 := g.AddNode(graph.KindValue)
	r1 := g.AddNode(graph.KindRelationship)
	if _, err := g.AddEdge(v1, r1, graph.ValueToRel); err != nil {
		t.Fatal(err)
	}
	pos := layout.Positions{v1: geometry.Pt(0, 0), r1: geometry.Pt(100, 0)}

	prims := Assemble(g, pos, WithNodeRadius(10), WithClearance(15))
	seg := prims[0].(EdgeSegment)

	if seg.Length != 75 {
		t.Errorf("Length = %v, want 75", seg.Length)
	}
	if seg.RotationDeg != 0 {
		t.Errorf("RotationDeg = %v, want 0", seg.RotationDeg)
	}
	if seg.X1 != 12.5 || seg.Y1 != 0 {
		t.Errorf("anchor = (%v, %v), want (12.5, 0)", seg.X1, seg.Y1)
	}
	if math.Abs(seg.X2-87.5) > 1e-9 || math.Abs(seg.Y2) > 1e-9 {
		t.Errorf("end = (%v, %v), want (87.5, 0)", seg.X2, seg.Y2)
	}
	if seg.StartArrow || !seg.EndArrow {
		t.Errorf("arrows = (%v, %v), want (false, true)", seg.StartArrow, seg.EndArrow)
	}
}

func TestAssembleSkipsMissingPositions(t *testing.T) {
	g := graph.New()
	a := g.AddNode(graph.KindValue)
	b := g.AddNode(graph.KindRelationship)
	c := g.AddNode(graph.KindValue)
	g.AddEdge(a, b, graph.Undirected)
	g.AddEdge(b, c, graph.Bidirectional)

	pos := layout.Positions{a: geometry.Pt(0, 0), b: geometry.Pt(50, 50)}

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	prims := Assemble(g, pos, WithLogger(logger))

	got := Count(prims)
	want := Stats{Edges: 1, Circles: 2, Labels: 2}
	if got != want {
		t.Errorf("Count = %+v, want %+v", got, want)
	}
	if !strings.Contains(buf.String(), "skipping edge") {
		t.Errorf("expected skip to be logged, got %q", buf.String())
	}
}

func TestAssembleSelfLoop(t *testing.T) {
	g := graph.New()
	v := g.AddNode(graph.KindValue)
	g.AddEdge(v, v, graph.Bidirectional)

	prims := Assemble(g, layout.DefaultFrame().Place(g))
	seg := prims[0].(EdgeSegment)
	if math.IsNaN(seg.RotationDeg) || seg.RotationDeg != 0 {
		t.Errorf("RotationDeg = %v, want 0", seg.RotationDeg)
	}
	if seg.Length > 0 {
		t.Errorf("Length = %v, want <= 0", seg.Length)
	}
}

func TestBounds(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) ok = true, want false")
	}

	g := graph.New()
	g.AddNode(graph.KindValue)
	g.AddNode(graph.KindValue)
	r, ok := Bounds(Assemble(g, layout.DefaultFrame().Place(g)))
	if !ok {
		t.Fatal("Bounds ok = false")
	}
	if r.Min.X != 40 || r.Max.X != 460 {
		t.Errorf("x extent = [%v, %v], want [40, 460]", r.Min.X, r.Max.X)
	}
}
