package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/relgraph/internal/server"
	"github.com/matzehuels/relgraph/pkg/observability"
)

// serveCommand creates the serve command, which runs the HTTP render service
// until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Routes:
  GET  /healthz            status and build info
  GET  /demo.{format}      the demo graph in svg, json, dot, png or pdf
  POST /render?format=svg  render a posted graph (JSON, YAML or TOML body)

The cache backend comes from the config file; set backend = "redis" to share
artifacts between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			observability.SetServerHooks(observability.NewLogHooks(c.Logger))
			srv := server.New(runner, c.Logger, server.WithDefaults(cfg.PipelineOptions()))

			printInfo("Serving on %s", addr)
			printDetail("cache: %s", cfg.Cache.Backend)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
