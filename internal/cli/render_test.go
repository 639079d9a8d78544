package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/relgraph/pkg/errors"
	"github.com/matzehuels/relgraph/pkg/graph"
	graphio "github.com/matzehuels/relgraph/pkg/io"
	"github.com/matzehuels/relgraph/pkg/pipeline"
	"github.com/matzehuels/relgraph/pkg/render"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derived from input", "", "graphs/team.yaml", "graphs/team"},
		{"stdin input", "", "-", appName},
		{"known extension stripped", "out/graph.svg", "in.json", "out/graph"},
		{"unknown extension kept", "out/graph.v2", "in.json", "out/graph.v2"},
		{"no extension", "out/graph", "in.json", "out/graph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	svg, png := render.FormatSVG, render.FormatPNG

	single := outputPaths("figure.svg", "g.json", []render.Format{svg})
	if single[svg] != "figure.svg" {
		t.Errorf("single format path = %q, want figure.svg", single[svg])
	}

	multi := outputPaths("figure.svg", "g.json", []render.Format{svg, png})
	if multi[svg] != "figure.svg" || multi[png] != "figure.png" {
		t.Errorf("multi format paths = %v", multi)
	}

	derived := outputPaths("", "g.json", []render.Format{png})
	if derived[png] != "g.png" {
		t.Errorf("derived path = %q, want g.png", derived[png])
	}
}

func TestRenderFlagsOverlayConfig(t *testing.T) {
	var flags renderFlags
	cmd := &cobra.Command{Use: "x"}
	flags.register(cmd)
	if err := cmd.ParseFlags([]string{"--width", "800", "-f", "svg,json", "--renderer", "graphviz"}); err != nil {
		t.Fatal(err)
	}

	base := pipeline.Options{Width: 500, Height: 400, Margin: pipeline.Float(20), Formats: []string{"dot"}}
	opts := flags.options(cmd, base)

	if opts.Width != 800 {
		t.Errorf("Width = %g, want flag value 800", opts.Width)
	}
	if opts.Height != 400 || *opts.Margin != 20 {
		t.Errorf("unset flags should keep config values, got height %g margin %g", opts.Height, *opts.Margin)
	}
	if len(opts.Formats) != 2 || opts.Formats[0] != "svg" || opts.Formats[1] != "json" {
		t.Errorf("Formats = %v, want [svg json]", opts.Formats)
	}
	if opts.Renderer != "graphviz" {
		t.Errorf("Renderer = %q, want graphviz", opts.Renderer)
	}
	if opts.Scale != pipeline.DefaultScale {
		t.Errorf("Scale = %g, want %g", opts.Scale, pipeline.DefaultScale)
	}
}

func TestMarginFlagZeroIsKept(t *testing.T) {
	var flags frameFlags
	cmd := &cobra.Command{Use: "x"}
	flags.register(cmd)
	if err := cmd.ParseFlags([]string{"--margin", "0"}); err != nil {
		t.Fatal(err)
	}

	opts := pipeline.Options{Margin: pipeline.Float(50)}
	flags.apply(cmd, &opts)
	opts.SetDefaults()

	if opts.Margin == nil || *opts.Margin != 0 {
		t.Fatalf("Margin = %v, want explicit 0", opts.Margin)
	}
	if r := opts.Frame().Radius(); r != 250 {
		t.Errorf("Radius = %g, want 250", r)
	}
}

func TestReadGraph(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "g.yaml")
	if err := graphio.WriteFile(graph.Demo(), yamlPath); err != nil {
		t.Fatal(err)
	}

	g, err := readGraph(yamlPath, "")
	if err != nil {
		t.Fatalf("readGraph by extension: %v", err)
	}
	if g.NodeCount() != 6 || g.EdgeCount() != 5 {
		t.Errorf("got %d nodes, %d edges; want 6, 5", g.NodeCount(), g.EdgeCount())
	}

	// An explicit encoding overrides an unhelpful extension.
	txtPath := filepath.Join(dir, "g.txt")
	data, _ := os.ReadFile(yamlPath)
	if err := os.WriteFile(txtPath, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readGraph(txtPath, "yaml"); err != nil {
		t.Errorf("readGraph with --input-format: %v", err)
	}
	if _, err := readGraph(txtPath, ""); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown extension error = %v, want INVALID_FORMAT", err)
	}
	if _, err := readGraph(filepath.Join(dir, "missing.json"), "json"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
}
