package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/relgraph/pkg/errors"
	"github.com/matzehuels/relgraph/pkg/graph"
	graphio "github.com/matzehuels/relgraph/pkg/io"
	"github.com/matzehuels/relgraph/pkg/pipeline"
	"github.com/matzehuels/relgraph/pkg/render"
)

// stdioPath selects stdin for input and stdout for output.
const stdioPath = "-"

// frameFlags are the layout and geometry flags shared by render, layout and
// demo. Unset flags keep the config file's values.
type frameFlags struct {
	width, height, margin float64
	nodeRadius, clearance float64
}

func (f *frameFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "canvas width (default from config, 500)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "canvas height (default from config, 500)")
	cmd.Flags().Float64Var(&f.margin, "margin", 0, "distance between the circle and the canvas edge (default 50)")
	cmd.Flags().Float64Var(&f.nodeRadius, "node-radius", 0, "node disc radius (default 10)")
	cmd.Flags().Float64Var(&f.clearance, "clearance", 0, "gap between an edge end and the node center (default 15)")
}

func (f *frameFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	set := func(name string, dst *float64, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("width", &opts.Width, f.width)
	set("height", &opts.Height, f.height)
	if cmd.Flags().Changed("margin") {
		opts.Margin = pipeline.Float(f.margin)
	}
	set("node-radius", &opts.NodeRadius, f.nodeRadius)
	set("clearance", &opts.Clearance, f.clearance)
}

// renderFlags extends frameFlags with output selection.
type renderFlags struct {
	frameFlags
	output   string
	formats  []string
	renderer string
	scale    float64
	border   bool
	noCache  bool
	refresh  bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	f.frameFlags.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringSliceVarP(&f.formats, "format", "f", nil, "output format(s): svg (default), json, dot, png, pdf")
	cmd.Flags().StringVar(&f.renderer, "renderer", "", "svg renderer: native (default), graphviz")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&f.border, "border", false, "frame the native svg with a 1px border (default from config)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even when cached")
}

// options merges config defaults with the flags the user set.
func (f *renderFlags) options(cmd *cobra.Command, base pipeline.Options) pipeline.Options {
	opts := base
	f.frameFlags.apply(cmd, &opts)
	if len(f.formats) > 0 {
		opts.Formats = f.formats
	}
	if f.renderer != "" {
		opts.Renderer = f.renderer
	}
	opts.Scale = f.scale
	if cmd.Flags().Changed("border") {
		opts.Border = f.border
	}
	opts.Refresh = f.refresh
	return opts
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags       renderFlags
		inputFormat string
	)

	cmd := &cobra.Command{
		Use:   "render <graph-file>",
		Short: "Render a graph file to SVG, JSON, DOT, PNG or PDF",
		Long: `Render a graph file (JSON, YAML or TOML) as a circular node-link diagram.

Use - to read the graph from stdin together with --input-format. Artifacts are
cached by graph content and options; --refresh forces a new render.`,
		Example: `  relgraph render graph.yaml
  relgraph render graph.json -f svg,png -o out/graph
  cat graph.toml | relgraph render - --input-format toml -o - > graph.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(args[0], inputFormat)
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), g, args[0], flags.options(cmd, cfg.PipelineOptions()), &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "graph encoding when reading stdin or an unknown extension: json, yaml, toml")

	return cmd
}

// readGraph loads a graph from path, or from stdin when path is "-". The
// encoding comes from format when given, else from the file extension.
func readGraph(path, format string) (*graph.Graph, error) {
	if path == stdioPath {
		f := graphio.FormatJSON
		if format != "" {
			parsed, err := graphio.ParseFormat(format)
			if err != nil {
				return nil, err
			}
			f = parsed
		}
		return graphio.Read(os.Stdin, f)
	}
	if format == "" {
		return graphio.ReadFile(path)
	}
	f, err := graphio.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	in, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer in.Close()
	return graphio.Read(in, f)
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, g *graph.Graph, input string, opts pipeline.Options, flags *renderFlags) error {
	logger := loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	formats, _ := render.ParseFormats(opts.Formats)
	if flags.output == stdioPath && len(formats) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "-o - needs exactly one format (got %d)", len(formats))
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	logger.Infof("Rendering %s", displayName(input))
	prog := newProgress(logger)

	var spin *spinner
	if needsConverter(formats) {
		spin = newSpinner(ctx, "Rasterizing with rsvg-convert...")
		spin.Start()
	}
	result, err := runner.Execute(ctx, g, opts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(formats)))

	if flags.output == stdioPath {
		_, err := os.Stdout.Write(result.Artifacts[string(formats[0])])
		return err
	}

	paths := outputPaths(flags.output, input, formats)
	for _, f := range formats {
		if err := writeArtifact(paths[f], result.Artifacts[string(f)]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", displayName(input))
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.AllHit())
	for _, f := range formats {
		printFile(paths[f])
	}
	return nil
}

func needsConverter(formats []render.Format) bool {
	for _, f := range formats {
		if f.NeedsConverter() {
			return true
		}
	}
	return false
}

// outputPaths maps each format to its destination. A single format with an
// explicit output uses that path as is; otherwise every format lands next
// to a base path as <base>.<format>.
func outputPaths(output, input string, formats []render.Format) map[render.Format]string {
	paths := make(map[render.Format]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + string(f)
	}
	return paths
}

// basePath strips a known output extension from output, or derives the base
// from the input file name when output is empty.
func basePath(output, input string) string {
	if output == "" {
		if input == stdioPath || input == "" {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

func displayName(input string) string {
	if input == stdioPath {
		return "stdin"
	}
	return input
}
