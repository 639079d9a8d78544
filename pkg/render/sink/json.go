package sink

import (
	"encoding/json"

	"github.com/matzehuels/relgraph/pkg/errors"
	"github.com/matzehuels/relgraph/pkg/layout"
	"github.com/matzehuels/relgraph/pkg/scene"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	frame  layout.Frame
	id     string
	indent bool
}

// WithJSONFrame records the viewport the scene was laid out in.
func WithJSONFrame(f layout.Frame) JSONOption { return func(r *jsonRenderer) { r.frame = f } }

// WithJSONID records the render id in the output.
func WithJSONID(id string) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// Scene is the JSON document written by [RenderJSON].
type Scene struct {
	ID         string  `json:"id,omitempty"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Margin     float64 `json:"margin"`
	Primitives []any   `json:"primitives"`
}

type jsonEdge struct {
	Type scene.Kind `json:"type"`
	scene.EdgeSegment
}

type jsonCircle struct {
	Type scene.Kind `json:"type"`
	scene.Circle
}

type jsonLabel struct {
	Type scene.Kind `json:"type"`
	scene.Label
}

// RenderJSON exports prims with a type tag per entry, in scene order.
func RenderJSON(prims []scene.Primitive, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{frame: layout.DefaultFrame()}
	for _, opt := range opts {
		opt(&r)
	}

	out := Scene{
		ID:         r.id,
		Width:      r.frame.Width,
		Height:     r.frame.Height,
		Margin:     r.frame.Margin,
		Primitives: make([]any, 0, len(prims)),
	}
	for _, p := range prims {
		switch p := p.(type) {
		case scene.EdgeSegment:
			out.Primitives = append(out.Primitives, jsonEdge{Type: p.Kind(), EdgeSegment: p})
		case scene.Circle:
			out.Primitives = append(out.Primitives, jsonCircle{Type: p.Kind(), Circle: p})
		case scene.Label:
			out.Primitives = append(out.Primitives, jsonLabel{Type: p.Kind(), Label: p})
		}
	}

	var (
		data []byte
		err  error
	)
	if r.indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode scene")
	}
	return data, nil
}
