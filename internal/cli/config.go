package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/relgraph/pkg/buildinfo"
	"github.com/matzehuels/relgraph/pkg/config"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Locate, create or show the config file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			written, err := config.Init(path, force)
			if err != nil {
				return err
			}
			if !written {
				printWarning("Config already exists (use --force to overwrite)")
				printFile(path)
				return nil
			}
			printSuccess("Wrote default config")
			printFile(path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			printKeyValue("version", buildinfo.Version)
			printKeyValue("canvas", fmt.Sprintf("%gx%g margin %g", cfg.Frame.Width, cfg.Frame.Height, cfg.Frame.Margin))
			printKeyValue("edges", fmt.Sprintf("radius %g clearance %g", cfg.Edges.NodeRadius, cfg.Edges.Clearance))
			printKeyValue("formats", fmt.Sprint(cfg.Render.Formats))
			printKeyValue("renderer", cfg.Render.Renderer)
			printKeyValue("border", fmt.Sprint(cfg.Render.Border))
			printKeyValue("cache", fmt.Sprintf("%s (ttl %s)", cfg.Cache.Backend, cfg.Cache.TTL))
			printKeyValue("server", cfg.Server.Addr)
			return nil
		},
	}
}
