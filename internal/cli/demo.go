package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/relgraph/pkg/graph"
	graphio "github.com/matzehuels/relgraph/pkg/io"
)

// demoCommand creates the demo command, which renders or exports the
// built-in six-node sample graph.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		flags  renderFlags
		export string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the built-in demo graph",
		Long: `Render the built-in demo graph: values v1, v2, v3 alternating with
relationships r1, r2, r3 around the circle, joined by one edge of every
direction.

--export writes the graph itself (JSON, YAML or TOML by extension) so it can
be edited and passed to 'render'.`,
		Example: `  relgraph demo
  relgraph demo -f svg,json -o demo
  relgraph demo --export demo.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := graph.Demo()
			if export != "" {
				if err := graphio.WriteFile(g, export); err != nil {
					return err
				}
				printSuccess("Exported demo graph")
				printFile(export)
				return nil
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if flags.output == "" {
				flags.output = "demo"
			}
			return c.runRender(cmd.Context(), g, "demo", flags.options(cmd, cfg.PipelineOptions()), &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&export, "export", "", "write the demo graph to a .json, .yaml or .toml file instead of rendering")

	return cmd
}
