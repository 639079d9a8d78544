package geometry

import (
	"math"
	"testing"

	"github.com/matzehuels/relgraph/pkg/graph"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestResolveHorizontal(t *testing.T) {
	s := Resolve(Pt(0, 0), Pt(100, 0), graph.ValueToRel, 10, 15)

	if !near(s.FullLength, 100) {
		t.Errorf("FullLength = %v, want 100", s.FullLength)
	}
	if !near(s.Length, 75) {
		t.Errorf("Length = %v, want 75", s.Length)
	}
	if s.AngleDeg != 0 {
		t.Errorf("AngleDeg = %v, want 0", s.AngleDeg)
	}
	if !near(s.Anchor.X, 12.5) || !near(s.Anchor.Y, 0) {
		t.Errorf("Anchor = %v, want (12.5, 0)", s.Anchor)
	}
	if s.StartArrow || !s.EndArrow {
		t.Errorf("arrows = (%v, %v), want (false, true)", s.StartArrow, s.EndArrow)
	}
	if end := s.End(); !near(end.X, 87.5) || !near(end.Y, 0) {
		t.Errorf("End() = %v, want (87.5, 0)", end)
	}
}

func TestResolveArrows(t *testing.T) {
	tests := []struct {
		dir        graph.Direction
		start, end bool
	}{
		{graph.ValueToRel, false, true},
		{graph.RelToVal, true, false},
		{graph.Undirected, false, false},
		{graph.Bidirectional, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := Resolve(Pt(3, 4), Pt(-20, 9), tt.dir, DefaultNodeRadius, DefaultClearance)
			if s.StartArrow != tt.start || s.EndArrow != tt.end {
				t.Errorf("arrows = (%v, %v), want (%v, %v)", s.StartArrow, s.EndArrow, tt.start, tt.end)
			}
		})
	}
}

func TestResolveRotationConsistent(t *testing.T) {
	pairs := [][2]Point{
		{Pt(0, 0), Pt(100, 0)},
		{Pt(0, 0), Pt(0, 100)},
		{Pt(0, 0), Pt(-50, -50)},
		{Pt(450, 250), Pt(50, 250)},
		{Pt(250, 450), Pt(423.2, 150)},
		{Pt(10, 10), Pt(12, 11)},
	}

	for _, p := range pairs {
		src, dst := p[0], p[1]
		s := Resolve(src, dst, graph.Undirected, 10, 15)

		d := dst.Sub(src)
		wantDeg := math.Atan2(d.Y, d.X) * 180 / math.Pi
		if !near(s.AngleDeg, wantDeg) {
			t.Errorf("%v->%v: AngleDeg = %v, want %v", src, dst, s.AngleDeg, wantDeg)
		}

		// Anchor and end must lie on the line through src and dst.
		for _, q := range []Point{s.Anchor, s.End()} {
			v := q.Sub(src)
			if cross := d.X*v.Y - d.Y*v.X; math.Abs(cross) > 1e-6 {
				t.Errorf("%v->%v: point %v not colinear (cross = %v)", src, dst, q, cross)
			}
		}

		if got := s.Anchor.Dist(src); !near(got, 12.5) {
			t.Errorf("%v->%v: anchor distance = %v, want 12.5", src, dst, got)
		}
		if !near(s.Length, d.Len()-25) {
			t.Errorf("%v->%v: Length = %v, want %v", src, dst, s.Length, d.Len()-25)
		}
	}
}

func TestResolveCoincident(t *testing.T) {
	p := Pt(250, 250)
	s := Resolve(p, p, graph.Bidirectional, 10, 15)

	if math.IsNaN(s.AngleDeg) || s.AngleDeg != 0 {
		t.Errorf("AngleDeg = %v, want 0", s.AngleDeg)
	}
	if s.Length > 0 {
		t.Errorf("Length = %v, want <= 0", s.Length)
	}
	if !s.Anchor.IsFinite() || !s.End().IsFinite() {
		t.Errorf("non-finite geometry: anchor %v end %v", s.Anchor, s.End())
	}
	if !s.IsDegenerate() {
		t.Error("IsDegenerate() = false, want true")
	}
}

func TestResolveOverlappingNodesNotClamped(t *testing.T) {
	s := Resolve(Pt(0, 0), Pt(5, 0), graph.Undirected, 10, 15)
	if !near(s.Length, -20) {
		t.Errorf("Length = %v, want -20", s.Length)
	}
}

func TestResolveDegreesRounding(t *testing.T) {
	// 180/π rounded to the nearest float64.
	const factor = 57.29577951308232
	for i := 0; i < 3600; i++ {
		a := float64(i) * 0.1
		dst := Pt(100*math.Cos(a)+0.37*float64(i%7), 100*math.Sin(a)-0.11*float64(i%5))
		s := Resolve(Pt(0, 0), dst, graph.Undirected, 10, 15)
		if want := math.Atan2(dst.Y, dst.X) * factor; s.AngleDeg != want {
			t.Fatalf("AngleDeg(%v) = %v, want %v", dst, s.AngleDeg, want)
		}
	}
}

func TestSegmentLocal(t *testing.T) {
	s := Resolve(Pt(0, 0), Pt(0, 100), graph.Undirected, 10, 15)

	if got := s.Local(Pt(0, 0)); !near(got.X, s.Anchor.X) || !near(got.Y, s.Anchor.Y) {
		t.Errorf("Local(origin) = %v, want anchor %v", got, s.Anchor)
	}
	end := s.Local(Pt(s.Length, 0))
	if want := s.End(); !near(end.X, want.X) || !near(end.Y, want.Y) {
		t.Errorf("Local(length,0) = %v, want %v", end, want)
	}
	if !near(end.Y, 87.5) {
		t.Errorf("end Y = %v, want 87.5", end.Y)
	}
}

func TestRectUnion(t *testing.T) {
	r := RectAround(Pt(0, 0), 10).Union(RectAround(Pt(100, 50), 10))
	if r.Min != Pt(-10, -10) || r.Max != Pt(110, 60) {
		t.Errorf("Union = %+v", r)
	}
	if r.Width() != 120 || r.Height() != 70 {
		t.Errorf("size = %vx%v, want 120x70", r.Width(), r.Height())
	}
}
