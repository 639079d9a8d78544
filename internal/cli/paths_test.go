package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/relgraph/pkg/config"
)

func TestCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir(config.Default())
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)

	dir, err := cacheDir(nil)
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(custom, appName); dir != want {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, want)
	}
}

func TestCacheDirFromConfig(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cfg := config.Default()
	cfg.Cache.Dir = "/srv/relgraph-cache"

	dir, err := cacheDir(cfg)
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != cfg.Cache.Dir {
		t.Errorf("cacheDir() = %q, want configured %q", dir, cfg.Cache.Dir)
	}
}
