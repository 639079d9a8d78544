package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/relgraph/pkg/errors"
	"github.com/matzehuels/relgraph/pkg/graph"
)

// Format is a graph file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer graph format from %q (use .json, .yaml or .toml)", path)
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown graph format %q (must be one of: json, yaml, toml)", s)
}

// fileGraph is the on-disk shape shared by all encodings.
type fileGraph struct {
	Nodes []fileNode `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges []fileEdge `json:"edges" yaml:"edges" toml:"edges"`
}

type fileNode struct {
	ID   *int   `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Kind string `json:"kind" yaml:"kind" toml:"kind"`
}

type fileEdge struct {
	Source    int    `json:"source" yaml:"source" toml:"source"`
	Target    int    `json:"target" yaml:"target" toml:"target"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty"`
}

func toGraph(data fileGraph) (*graph.Graph, error) {
	g := graph.New()
	for i, n := range data.Nodes {
		if n.ID != nil && *n.ID != i {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "node %d: id %d does not match its position (ids are dense)", i, *n.ID)
		}
		kind, err := graph.ParseNodeKind(n.Kind)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "node %d", i)
		}
		g.AddNode(kind)
	}

	for i, e := range data.Edges {
		dir := graph.Undirected
		if e.Direction != "" {
			d, err := graph.ParseDirection(e.Direction)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "edge %d", i)
			}
			dir = d
		}
		if _, err := g.AddEdge(graph.NodeID(e.Source), graph.NodeID(e.Target), dir); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "edge %d", i)
		}
	}
	return g, nil
}

func fromGraph(g *graph.Graph) fileGraph {
	out := fileGraph{
		Nodes: make([]fileNode, 0, g.NodeCount()),
		Edges: make([]fileEdge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, fileNode{Kind: n.Kind.String()})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, fileEdge{
			Source:    int(e.Source),
			Target:    int(e.Target),
			Direction: e.Direction.String(),
		})
	}
	return out
}
