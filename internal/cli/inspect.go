package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/relgraph/pkg/graph"
	"github.com/matzehuels/relgraph/pkg/pipeline"
	"github.com/matzehuels/relgraph/pkg/scene"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		flags       frameFlags
		inputFormat string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <graph-file>",
		Short: "Summarize a graph and its edge geometry",
		Long: `Summarize a graph: node kinds, edges, directions and the clipped segment
each edge is drawn as. With -i, browse the edges interactively.`,
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
			opts := cfg.PipelineOptions()
			flags.apply(cmd, &opts)

			rows, prims, err := c.inspectRows(cmd.Context(), g, opts)
			if err != nil {
				return err
			}
			if interactive {
				_, err := tea.NewProgram(newEdgeBrowser(rows), tea.WithContext(cmd.Context())).Run()
				return err
			}
			printInspect(cmd.OutOrStdout(), g, rows, prims)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "graph encoding: json, yaml, toml")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse edges interactively")

	return cmd
}

// edgeRow pairs a stored edge with the segment drawn for it. Drawn is false
// when an endpoint has no position.
type edgeRow struct {
	Edge    graph.Edge
	Segment scene.EdgeSegment
	Drawn   bool
}

// inspectRows lays out and assembles g, returning one row per edge and the
// assembled scene.
func (c *CLI) inspectRows(ctx context.Context, g *graph.Graph, opts pipeline.Options) ([]edgeRow, []scene.Primitive, error) {
	opts.SetDefaults()
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	positions, _, err := runner.Layout(ctx, g, opts)
	if err != nil {
		return nil, nil, err
	}
	prims := scene.Assemble(g, positions,
		scene.WithNodeRadius(opts.NodeRadius),
		scene.WithClearance(opts.Clearance))
	segments := make(map[graph.EdgeID]scene.EdgeSegment)
	for _, p := range prims {
		if seg, ok := p.(scene.EdgeSegment); ok {
			segments[seg.Edge] = seg
		}
	}

	edges := g.Edges()
	rows := make([]edgeRow, len(edges))
	for i, e := range edges {
		seg, ok := segments[e.ID]
		rows[i] = edgeRow{Edge: e, Segment: seg, Drawn: ok}
	}
	return rows, prims, nil
}

func printInspect(w io.Writer, g *graph.Graph, rows []edgeRow, prims []scene.Primitive) {
	var values, rels int
	for _, n := range g.Nodes() {
		if n.Kind == graph.KindRelationship {
			rels++
		} else {
			values++
		}
	}

	fmt.Fprintln(w, StyleTitle.Render("Graph"))
	fmt.Fprintf(w, "  %s %s  %s %s  %s %d\n",
		styleValueNode.Render("values"), strconv.Itoa(values),
		styleRelNode.Render("relationships"), strconv.Itoa(rels),
		StyleDim.Render("edges"), g.EdgeCount())
	if r, ok := scene.Bounds(prims); ok {
		fmt.Fprintf(w, "  %s (%s, %s) to (%s, %s)\n", StyleDim.Render("extent"),
			coord(r.Min.X), coord(r.Min.Y), coord(r.Max.X), coord(r.Max.Y))
	}
	if len(rows) == 0 {
		return
	}

	t := newTable("Edge", "From", "To", "Direction", "Arrows", "Length", "Rotation")
	for _, r := range rows {
		length, rot := "-", "-"
		if r.Drawn {
			length, rot = coord(r.Segment.Length), coord(r.Segment.RotationDeg)+"°"
		}
		t.Row(
			strconv.Itoa(int(r.Edge.ID)),
			strconv.Itoa(int(r.Edge.Source)),
			strconv.Itoa(int(r.Edge.Target)),
			r.Edge.Direction.String(),
			arrowGlyph(r.Edge.Direction),
			length,
			rot,
		)
	}
	fmt.Fprintln(w, t.Render())
}

// arrowGlyph draws the arrowhead placement between source and target.
func arrowGlyph(d graph.Direction) string {
	switch start, end := d.Arrows(); {
	case start && end:
		return "<->"
	case end:
		return "-->"
	case start:
		return "<--"
	}
	return "---"
}
