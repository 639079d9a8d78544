// Package graph provides the value/relationship graph model rendered by relgraph.
//
// A [Graph] is a directed multigraph whose nodes are typed as either a value or a
// relationship. Nodes are identified by dense integer ids assigned in insertion
// order and never reused. Edges keep their insertion order and carry a
// [Direction] that is independent of the stored source→target order: an edge
// stored v1→r1 can still be drawn as undirected or bidirectional.
//
// # Building a Graph
//
//	g := graph.New()
//	v := g.AddNode(graph.KindValue)
//	r := g.AddNode(graph.KindRelationship)
//	if _, err := g.AddEdge(v, r, graph.ValueToRel); err != nil {
//	    return err
//	}
//
// # Errors
//
// Lookups of absent nodes fail with [ErrNotFound]; edges that reference absent
// nodes fail with [ErrInvalidEndpoint]. Both are returned wrapped, so use
// errors.Is to test for them.
//
// # Concurrency
//
// A Graph is built once per render pass and read-only afterwards. Concurrent
// reads are safe; concurrent writes require external synchronization.
package graph
