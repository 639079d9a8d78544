package io

import (
	"encoding/json"
	stdio "io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/relgraph/pkg/errors"
	"github.com/matzehuels/relgraph/pkg/graph"
)

// Read decodes a graph in the given format from r. Read does not close r.
//
// Errors carry the INVALID_GRAPH code for malformed input or edges that
// reference unknown nodes, and INVALID_FORMAT for unsupported formats.
func Read(r stdio.Reader, format Format) (*graph.Graph, error) {
	var data fileGraph
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&data); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "decode json")
		}
		if err := dec.Decode(&struct{}{}); err != stdio.EOF {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "decode json: unexpected data after the graph document")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&data); err != nil && err != stdio.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "decode yaml")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "decode toml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported graph format %q", format)
	}
	return toGraph(data)
}

// ReadFile reads a graph file, picking the format from its extension.
func ReadFile(path string) (*graph.Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, format)
}
