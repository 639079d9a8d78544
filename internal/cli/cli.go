package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/relgraph/pkg/buildinfo"
	"github.com/matzehuels/relgraph/pkg/cache"
	"github.com/matzehuels/relgraph/pkg/config"
	"github.com/matzehuels/relgraph/pkg/observability"
	"github.com/matzehuels/relgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "relgraph"

	// redisPrefix namespaces keys written by the CLI and the server.
	redisPrefix = appName + ":"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Relgraph draws value/relationship graphs on a circle",
		Long: `Relgraph renders bipartite value/relationship graphs as circular node-link
diagrams. Nodes sit evenly on a circle; edges are clipped short of both discs
and carry arrowheads according to their direction.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetPipelineHooks(observability.NewLogHooks(c.Logger))
			observability.SetCacheHooks(observability.NewLogHooks(c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/relgraph/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads the config file once per invocation. An explicit --config
// path that does not exist is still fine: the defaults apply.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	c.config = cfg
	return cfg, nil
}

// resolveConfigPath returns --config or the default config path.
func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.Path()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	ch, err := newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(ch, cache.NewScopedKeyer(nil, buildinfo.Version+":"), c.Logger)
	runner.TTL = cfg.Cache.TTL.Duration
	return runner, nil
}

func newCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cfg.Cache.RedisURL, cache.WithRedisPrefix(redisPrefix))
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, falling back to the XDG
// standard (~/.cache/relgraph/).
func cacheDir(cfg *config.Config) (string, error) {
	if cfg != nil && cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
