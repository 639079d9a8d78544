package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/relgraph/pkg/cache"
	"github.com/matzehuels/relgraph/pkg/config"
)

// cacheCommand groups the artifact cache subcommands.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local artifact cache",
	}
	cmd.AddCommand(
		&cobra.Command{Use: "clear", Short: "Remove all cached artifacts", Args: cobra.NoArgs, RunE: c.runCacheClear},
		&cobra.Command{Use: "path", Short: "Print the cache directory path", Args: cobra.NoArgs, RunE: c.runCachePath},
		&cobra.Command{Use: "stats", Short: "Show the cache backend and entry count", Args: cobra.NoArgs, RunE: c.runCacheStats},
	)
	return cmd
}

// fileCache opens the configured file cache. It returns nil without error
// when the directory does not exist yet.
func (c *CLI) fileCache() (*cache.FileCache, *config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return nil, cfg, fmt.Errorf("resolve cache dir: %w", err)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, cfg, nil
	}
	fc, err := cache.NewFileCache(dir)
	return fc, cfg, err
}

func (c *CLI) runCacheClear(cmd *cobra.Command, _ []string) error {
	fc, cfg, err := c.fileCache()
	if err != nil {
		return err
	}
	if cfg.Cache.Backend == config.BackendRedis {
		printWarning("Redis entries expire on their own (ttl %s); nothing cleared", cfg.Cache.TTL)
		return nil
	}
	if fc == nil {
		printInfo("Cache is empty")
		return nil
	}
	n, err := fc.Clear()
	if err != nil {
		return err
	}
	printSuccess("Cleared %d cached entries", n)
	printDetail("Directory: %s", fc.Dir())
	return nil
}

func (c *CLI) runCachePath(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return fmt.Errorf("resolve cache dir: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), dir)
	return nil
}

func (c *CLI) runCacheStats(cmd *cobra.Command, _ []string) error {
	fc, cfg, err := c.fileCache()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fprintKeyValue(w, "Backend", cfg.Cache.Backend)
	fprintKeyValue(w, "TTL", cfg.Cache.TTL.String())
	if cfg.Cache.Backend != config.BackendFile {
		return nil
	}
	entries := 0
	if fc != nil {
		if entries, err = fc.Len(); err != nil {
			return err
		}
	}
	fprintKeyValue(w, "Entries", fmt.Sprint(entries))
	return nil
}
