package graph

// Demo returns the sample graph shipped with relgraph: three values and three
// relationships joined by one edge of every direction.
func Demo() *Graph {
	g := New()
	v1 := g.AddNode(KindValue)
	r1 := g.AddNode(KindRelationship)
	v2 := g.AddNode(KindValue)
	r2 := g.AddNode(KindRelationship)
	v3 := g.AddNode(KindValue)
	r3 := g.AddNode(KindRelationship)

	mustEdge(g, v1, r1, ValueToRel)
	mustEdge(g, v2, r2, RelToVal)
	mustEdge(g, v3, r3, Undirected)
	mustEdge(g, r1, v2, Bidirectional)
	mustEdge(g, r2, v3, ValueToRel)
	return g
}

func mustEdge(g *Graph, source, target NodeID, dir Direction) {
	if _, err := g.AddEdge(source, target, dir); err != nil {
		panic(err)
	}
}
