package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/relgraph/pkg/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Frame.Width != 500 || cfg.Edges.Clearance != 15 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Cache.Backend != BackendFile || cfg.Cache.TTL.Duration != 168*time.Hour {
		t.Errorf("cache defaults = %+v", cfg.Cache)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[frame]
width = 800.0

[edges]
clearance = 20.0

[render]
formats = ["svg", "json"]
renderer = "graphviz"

[cache]
backend = "none"
ttl = "1h"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Frame.Width != 800 || cfg.Frame.Height != 500 {
		t.Errorf("Frame = %+v, want width 800 and default height", cfg.Frame)
	}
	if cfg.Edges.Clearance != 20 || cfg.Edges.NodeRadius != 10 {
		t.Errorf("Edges = %+v", cfg.Edges)
	}
	if cfg.Render.Renderer != "graphviz" || len(cfg.Render.Formats) != 2 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Cache.Backend != BackendNone || cfg.Cache.TTL.Duration != time.Hour {
		t.Errorf("Cache = %+v", cfg.Cache)
	}

	opts := cfg.PipelineOptions()
	if opts.Width != 800 || opts.Clearance != 20 || opts.Renderer != "graphviz" {
		t.Errorf("PipelineOptions = %+v", opts)
	}
}

func TestLoadZeroMarginAndBorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[frame]\nmargin = 0.0\n\n[render]\nborder = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	opts := cfg.PipelineOptions()
	opts.SetDefaults()
	if opts.Margin == nil || *opts.Margin != 0 {
		t.Errorf("Margin = %v, want explicit 0", opts.Margin)
	}
	if r := opts.Frame().Radius(); r != 250 {
		t.Errorf("Radius = %v, want 250", r)
	}
	if !opts.Border {
		t.Error("Border = false, want true from [render] border")
	}
	if Default().Render.Border {
		t.Error("border should be off by default")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[frame\nwidth = 1"},
		{"unknown key", "[frame]\ndepth = 3.0"},
		{"negative width", "[frame]\nwidth = -10.0"},
		{"bad format", "[render]\nformats = [\"gif\"]"},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"bad ttl", "[cache]\nttl = \"soon\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := Default()
	cfg.Server.Addr = "127.0.0.1:9000"
	cfg.Cache.TTL = Duration{30 * time.Minute}

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Server.Addr != "127.0.0.1:9000" || got.Cache.TTL.Duration != 30*time.Minute {
		t.Errorf("round trip = %+v", got)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	wrote, err := Init(path, false)
	if err != nil || !wrote {
		t.Fatalf("first Init = %v, %v", wrote, err)
	}
	wrote, err = Init(path, false)
	if err != nil || wrote {
		t.Errorf("second Init without force = %v, %v, want no write", wrote, err)
	}
	wrote, err = Init(path, true)
	if err != nil || !wrote {
		t.Errorf("forced Init = %v, %v", wrote, err)
	}
}

func TestPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "relgraph", "config.toml"); path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}
