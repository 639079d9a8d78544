package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/relgraph/pkg/cache"
	"github.com/matzehuels/relgraph/pkg/errors"
	"github.com/matzehuels/relgraph/pkg/graph"
	graphio "github.com/matzehuels/relgraph/pkg/io"
	"github.com/matzehuels/relgraph/pkg/layout"
	"github.com/matzehuels/relgraph/pkg/observability"
	"github.com/matzehuels/relgraph/pkg/render"
	"github.com/matzehuels/relgraph/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use it so caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the artifact lifetime; zero means [cache.TTLArtifact].
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → assemble → render pipeline.
func (r *Runner) Execute(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "graph is required")
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "invalid graph")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hash, err := GraphHash(g)
	if err != nil {
		return nil, err
	}
	result := &Result{
		ID:        uuid.NewString(),
		GraphHash: hash,
		Frame:     opts.Frame(),
		Artifacts: make(map[string][]byte, len(opts.formats)),
	}
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	// Stage 1: Layout
	layoutStart := time.Now()
	result.Positions = r.layout(ctx, g, hash, &opts)
	result.Stats.LayoutTime = time.Since(layoutStart)

	// Stage 2: Assemble
	assembleStart := time.Now()
	result.Scene = scene.Assemble(g, result.Positions,
		scene.WithNodeRadius(opts.NodeRadius),
		scene.WithClearance(opts.Clearance),
		scene.WithLogger(opts.Logger),
	)
	result.Stats.AssembleTime = time.Since(assembleStart)
	result.Stats.Primitives = len(result.Scene)
	observability.Pipeline().OnAssembleComplete(ctx, len(result.Scene), result.Stats.AssembleTime)

	opts.Logger.Debug("assembled scene",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"primitives", len(result.Scene))

	// Stage 3: Render
	renderStart := time.Now()
	st := frameState{graph: g, positions: result.Positions, scene: result.Scene}
	names := formatStrings(opts.formats)
	observability.Pipeline().OnRenderStart(ctx, names)
	err = r.renderAll(ctx, st, &opts, result)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, names, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("rendered",
		"id", result.ID,
		"formats", names,
		"cached", len(result.CacheInfo.Hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout computes positions only, without assembling or rendering.
func (r *Runner) Layout(ctx context.Context, g *graph.Graph, opts Options) (layout.Positions, layout.Frame, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	for _, d := range []struct {
		name string
		v    float64
	}{{"width", opts.Width}, {"height", opts.Height}} {
		if err := errors.ValidateDimension(d.name, d.v); err != nil {
			return nil, layout.Frame{}, err
		}
	}
	if err := errors.ValidateNonNegative("margin", opts.margin()); err != nil {
		return nil, layout.Frame{}, err
	}
	hash, err := GraphHash(g)
	if err != nil {
		return nil, layout.Frame{}, err
	}
	return r.layout(ctx, g, hash, &opts), opts.Frame(), nil
}

// layout returns the cached positions for g in the options' frame, placing
// and storing them on a miss.
func (r *Runner) layout(ctx context.Context, g *graph.Graph, hash string, opts *Options) layout.Positions {
	observability.Pipeline().OnLayoutStart(ctx, g.NodeCount())
	start := time.Now()
	defer func() {
		observability.Pipeline().OnLayoutComplete(ctx, g.NodeCount(), time.Since(start))
	}()

	key := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts())
	if !opts.Refresh {
		if positions, ok := r.cachedLayout(ctx, key, opts); ok {
			return positions
		}
	}

	positions := opts.Frame().Place(g)
	data, err := json.Marshal(positions)
	if err != nil {
		opts.Logger.Warn("encode layout", "err", err)
		return positions
	}
	if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
		opts.Logger.Warn("cache write failed", "kind", "layout", "err", err)
		return positions
	}
	observability.Cache().OnCacheSet(ctx, "layout", len(data))
	return positions
}

func (r *Runner) cachedLayout(ctx context.Context, key string, opts *Options) (layout.Positions, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		opts.Logger.Warn("cache read failed", "kind", "layout", "err", err)
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "layout")
		return nil, false
	}
	var positions layout.Positions
	if err := json.Unmarshal(data, &positions); err != nil {
		opts.Logger.Warn("discarding unreadable cached layout", "err", err)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "layout")
	return positions, true
}

func (r *Runner) renderAll(ctx context.Context, st frameState, opts *Options, result *Result) error {
	for _, format := range opts.formats {
		if err := ctx.Err(); err != nil {
			return err
		}

		key := r.Keyer.ArtifactKey(result.GraphHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "err", err)
			}
			if hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				result.Artifacts[string(format)] = data
				result.CacheInfo.Hits = append(result.CacheInfo.Hits, string(format))
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}

		data, err := renderFormat(ctx, st, opts, format)
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[string(format)] = data
		result.CacheInfo.Misses = append(result.CacheInfo.Misses, string(format))

		if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL == 0 {
		return cache.TTLArtifact
	}
	return r.TTL
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// GraphHash returns the content hash of g: the SHA-256 of its canonical
// JSON file encoding.
func GraphHash(g *graph.Graph) (string, error) {
	var buf bytes.Buffer
	if err := graphio.Write(g, &buf, graphio.FormatJSON); err != nil {
		return "", err
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, buf.Bytes()); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash graph")
	}
	return cache.Hash(compact.Bytes()), nil
}

func formatStrings(formats []render.Format) []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}
