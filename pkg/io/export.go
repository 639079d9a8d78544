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

// Write encodes g in the given format to w.
func Write(g *graph.Graph, w stdio.Writer, format Format) error {
	data := fromGraph(g)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(data); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported graph format %q", format)
	}
	return nil
}

// WriteFile writes g to path, picking the format from its extension.
// The file is created with 0644 permissions.
func WriteFile(g *graph.Graph, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := Write(g, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
