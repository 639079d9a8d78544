// Package config loads the relgraph TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/relgraph/config.toml (falling back to
// ~/.config/relgraph/config.toml). Every key is optional; missing keys keep
// their defaults.
//
//	[frame]
//	width = 500.0
//	height = 500.0
//	margin = 50.0
//
//	[edges]
//	node_radius = 10.0
//	clearance = 15.0
//
//	[render]
//	formats = ["svg"]
//	renderer = "native"
//	border = false     # 1px black frame around the native svg
//
//	[cache]
//	backend = "file"   # file, redis or none
//	redis_url = "redis://localhost:6379/0"
//	ttl = "168h"
//
//	[server]
//	addr = ":8080"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/relgraph/pkg/errors"
	"github.com/matzehuels/relgraph/pkg/geometry"
	"github.com/matzehuels/relgraph/pkg/layout"
	"github.com/matzehuels/relgraph/pkg/pipeline"
	"github.com/matzehuels/relgraph/pkg/render"
)

const appName = "relgraph"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds relgraph configuration.
type Config struct {
	Frame  layout.Frame `toml:"frame"`
	Edges  EdgesConfig  `toml:"edges"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// EdgesConfig controls edge geometry.
type EdgesConfig struct {
	NodeRadius float64 `toml:"node_radius"`
	Clearance  float64 `toml:"clearance"`
}

// RenderConfig selects default outputs.
type RenderConfig struct {
	Formats  []string `toml:"formats"`
	Renderer string   `toml:"renderer"`
	Border   bool     `toml:"border"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir,omitempty"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// ServerConfig controls the HTTP render service.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a Go duration string ("168h").
type Duration struct{ time.Duration }

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText writes the duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Frame: layout.DefaultFrame(),
		Edges: EdgesConfig{
			NodeRadius: geometry.DefaultNodeRadius,
			Clearance:  geometry.DefaultClearance,
		},
		Render: RenderConfig{
			Formats:  append([]string(nil), pipeline.DefaultFormats...),
			Renderer: string(render.RendererNative),
		},
		Cache: CacheConfig{
			Backend:  BackendFile,
			RedisURL: "redis://localhost:6379/0",
			TTL:      Duration{7 * 24 * time.Hour},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Dir returns the relgraph config directory path.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "locate home directory")
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path returns the default config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config at path. A missing file yields the defaults; a file
// that does not parse or fails validation is an INVALID_CONFIG error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the config from [Path].
func LoadDefault() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Save writes cfg to path, creating parent directories.
func Save(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create config dir")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// Init writes the defaults to path unless a file already exists there. It
// reports whether a file was written.
func Init(path string, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	return true, Save(Default(), path)
}

// Validate checks value ranges and choices.
func (c *Config) Validate() error {
	wrap := func(err error) error {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	opts := c.PipelineOptions()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return wrap(err)
	}
	if err := errors.ValidateChoice(errors.ErrCodeInvalidConfig, "cache backend", c.Cache.Backend,
		[]string{BackendFile, BackendRedis, BackendNone}); err != nil {
		return err
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative (got %s)", c.Cache.TTL)
	}
	return nil
}

// PipelineOptions converts the config into pipeline options.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Width:      c.Frame.Width,
		Height:     c.Frame.Height,
		Margin:     pipeline.Float(c.Frame.Margin),
		NodeRadius: c.Edges.NodeRadius,
		Clearance:  c.Edges.Clearance,
		Formats:    append([]string(nil), c.Render.Formats...),
		Renderer:   c.Render.Renderer,
		Border:     c.Render.Border,
	}
}
