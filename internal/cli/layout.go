package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/relgraph/pkg/graph"
	"github.com/matzehuels/relgraph/pkg/layout"
	"github.com/matzehuels/relgraph/pkg/pipeline"
)

// layoutNode is one row of `layout --json`.
type layoutNode struct {
	ID   graph.NodeID   `json:"id"`
	Kind graph.NodeKind `json:"kind"`
	X    float64        `json:"x"`
	Y    float64        `json:"y"`
}

type layoutOutput struct {
	Frame layout.Frame `json:"frame"`
	Nodes []layoutNode `json:"nodes"`
}

// layoutCommand creates the layout command, which prints node positions
// without rendering.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags       frameFlags
		inputFormat string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "layout <graph-file>",
		Short: "Print the circular node positions for a graph",
		Long: `Print where each node lands on the layout circle.

Node i of n sits at angle 2πi/n, starting at 3 o'clock and running clockwise
in screen coordinates. --json emits the frame and positions for other tools.`,
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
			return c.runLayout(cmd.Context(), g, opts, asJSON, cmd.OutOrStdout())
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "graph encoding: json, yaml, toml")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, g *graph.Graph, opts pipeline.Options, asJSON bool, w io.Writer) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	positions, frame, err := runner.Layout(ctx, g, opts)
	if err != nil {
		return err
	}

	nodes := make([]layoutNode, 0, len(positions))
	for _, n := range g.Nodes() {
		p, ok := positions[n.ID]
		if !ok {
			continue
		}
		nodes = append(nodes, layoutNode{ID: n.ID, Kind: n.Kind, X: p.X, Y: p.Y})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(layoutOutput{Frame: frame, Nodes: nodes})
	}

	center := frame.Center()
	fmt.Fprintln(w, StyleTitle.Render("Layout"))
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("canvas %gx%g  center (%g, %g)  radius %g",
		frame.Width, frame.Height, center.X, center.Y, frame.Radius())))

	t := newTable("Node", "Kind", "X", "Y")
	for _, n := range nodes {
		t.Row(strconv.Itoa(int(n.ID)), kindCell(n.Kind), coord(n.X), coord(n.Y))
	}
	fmt.Fprintln(w, t.Render())
	return nil
}

func kindCell(k graph.NodeKind) string {
	if k == graph.KindRelationship {
		return styleRelNode.Render(k.String())
	}
	return styleValueNode.Render(k.String())
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
