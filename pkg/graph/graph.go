package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotFound is returned by [Graph.NodeKind] and [Graph.Node] when the
	// requested node id does not exist.
	ErrNotFound = errors.New("node not found")

	// ErrInvalidEndpoint is returned by [Graph.AddEdge] and [Graph.Validate]
	// when an edge references a node that does not exist.
	ErrInvalidEndpoint = errors.New("invalid edge endpoint")
)

// NodeID identifies a node. Ids are dense: the n-th added node has id n-1.
type NodeID int

// EdgeID identifies an edge by its insertion index.
type EdgeID int

// Node is a vertex of the graph.
type Node struct {
	ID   NodeID
	Kind NodeKind
}

// Edge is a stored connection between two nodes. Source and Target give the
// storage order; Direction decides how the edge is drawn.
type Edge struct {
	ID        EdgeID
	Source    NodeID
	Target    NodeID
	Direction Direction
}

// IsSelfLoop reports whether both endpoints are the same node.
func (e Edge) IsSelfLoop() bool { return e.Source == e.Target }

// Graph is a directed multigraph of typed nodes.
//
// The zero value is an empty graph ready to use.
type Graph struct {
	nodes []Node
	edges []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode appends a node of the given kind and returns its id.
func (g *Graph) AddNode(kind NodeKind) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Kind: kind})
	return id
}

// AddEdge appends an edge between two existing nodes and returns its id.
// Parallel edges and self loops are accepted. Returns ErrInvalidEndpoint if
// either endpoint is absent; the graph is left unchanged in that case.
func (g *Graph) AddEdge(source, target NodeID, dir Direction) (EdgeID, error) {
	if !g.HasNode(source) {
		return -1, fmt.Errorf("source %d: %w", source, ErrInvalidEndpoint)
	}
	if !g.HasNode(target) {
		return -1, fmt.Errorf("target %d: %w", target, ErrInvalidEndpoint)
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, Source: source, Target: target, Direction: dir})
	return id, nil
}

// HasNode reports whether id refers to a node of the graph.
func (g *Graph) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns the node with the given id, or ErrNotFound.
func (g *Graph) Node(id NodeID) (Node, error) {
	if !g.HasNode(id) {
		return Node{}, fmt.Errorf("node %d: %w", id, ErrNotFound)
	}
	return g.nodes[id], nil
}

// NodeKind returns the kind of the node with the given id, or ErrNotFound.
func (g *Graph) NodeKind(id NodeID) (NodeKind, error) {
	n, err := g.Node(id)
	if err != nil {
		return 0, err
	}
	return n.Kind, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NodeIDs returns all node ids in insertion order.
func (g *Graph) NodeIDs() []NodeID {
	ids := make([]NodeID, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}
	return ids
}

// Nodes returns a copy of all nodes in insertion order.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Validate checks that every edge references existing nodes. Graphs built
// through AddEdge always pass; the check guards graphs assembled by decoders.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if !g.HasNode(e.Source) || !g.HasNode(e.Target) {
			return fmt.Errorf("edge %d (%d -> %d): %w", e.ID, e.Source, e.Target, ErrInvalidEndpoint)
		}
	}
	return nil
}
