package render

import (
	"strings"

	"github.com/matzehuels/relgraph/pkg/errors"
)

// Format is an output artifact format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
)

// Formats lists every output format in a stable order.
var Formats = []Format{FormatSVG, FormatJSON, FormatDOT, FormatPNG, FormatPDF}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// NeedsConverter reports whether producing the format shells out to rsvg-convert.
func (f Format) NeedsConverter() bool { return f == FormatPNG || f == FormatPDF }

// ParseFormat validates a single format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.ValidateChoice(errors.ErrCodeInvalidFormat, "format", s, formatNames())
}

// ParseFormats parses a list of names, accepting comma-separated entries and
// dropping duplicates while keeping the first occurrence order.
func ParseFormats(names []string) ([]Format, error) {
	var out []Format
	seen := make(map[Format]bool)
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			f, err := ParseFormat(part)
			if err != nil {
				return nil, err
			}
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return out, nil
}

func formatNames() []string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return names
}

// Renderer selects how SVG output (and the PNG/PDF derived from it) is drawn.
type Renderer string

const (
	// RendererNative draws scene primitives directly.
	RendererNative Renderer = "native"
	// RendererGraphviz lays pinned nodes out with Graphviz neato.
	RendererGraphviz Renderer = "graphviz"
)

// Renderers lists the available renderers.
var Renderers = []Renderer{RendererNative, RendererGraphviz}

// ParseRenderer validates a renderer name. The empty string selects
// [RendererNative].
func ParseRenderer(s string) (Renderer, error) {
	switch r := Renderer(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RendererNative, nil
	case RendererNative, RendererGraphviz:
		return r, nil
	}
	return "", errors.ValidateChoice(errors.ErrCodeInvalidRenderer, "renderer", s,
		[]string{string(RendererNative), string(RendererGraphviz)})
}
