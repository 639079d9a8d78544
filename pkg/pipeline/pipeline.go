// Package pipeline provides the layout → assemble → render pipeline shared by
// the CLI and the HTTP service.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Layout: place every node on a circle fitted into the frame
//  2. Assemble: resolve edge geometry and emit scene primitives
//  3. Render: write the scene in each requested format
//
// Rendered artifacts are cached by graph content and every option that
// affects them, so repeated requests for the same drawing skip rendering.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, g, pipeline.Options{
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/relgraph/pkg/cache"
	"github.com/matzehuels/relgraph/pkg/errors"
	"github.com/matzehuels/relgraph/pkg/geometry"
	"github.com/matzehuels/relgraph/pkg/layout"
	"github.com/matzehuels/relgraph/pkg/render"
	"github.com/matzehuels/relgraph/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// MaxDimension bounds the frame so a request cannot ask for a huge raster.
	MaxDimension = 10000.0
)

// DefaultFormats is used when no format is requested.
var DefaultFormats = []string{string(render.FormatSVG)}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options. A nil Margin means [layout.DefaultMargin]; an explicit
	// zero fits the circle to the canvas edge.
	Width  float64  `json:"width,omitempty"`
	Height float64  `json:"height,omitempty"`
	Margin *float64 `json:"margin,omitempty"`

	// Edge geometry options
	NodeRadius float64 `json:"node_radius,omitempty"`
	Clearance  float64 `json:"clearance,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Renderer string   `json:"renderer,omitempty"`
	Scale    float64  `json:"scale,omitempty"`

	// Border frames the native SVG canvas with a 1px black rectangle.
	Border bool `json:"border,omitempty"`

	// Refresh skips cache reads; fresh artifacts are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	formats  []render.Format
	renderer render.Renderer
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID uniquely identifies this run.
	ID string

	// GraphHash is the content hash of the input graph.
	GraphHash string

	// Frame is the viewport the layout was fitted into.
	Frame layout.Frame

	// Positions holds the circular layout.
	Positions layout.Positions

	// Scene is the assembled primitive list.
	Scene []scene.Primitive

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	Primitives   int
	LayoutTime   time.Duration
	AssembleTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks artifact cache hits.
type CacheInfo struct {
	Hits   []string // Formats served from cache
	Misses []string // Formats rendered in this run
}

// AllHit reports whether every artifact came from the cache.
func (c CacheInfo) AllHit() bool { return len(c.Misses) == 0 && len(c.Hits) > 0 }

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields from the package defaults.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = layout.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = layout.DefaultHeight
	}
	if o.Margin == nil {
		o.Margin = Float(layout.DefaultMargin)
	}
	if o.NodeRadius == 0 {
		o.NodeRadius = geometry.DefaultNodeRadius
	}
	if o.Clearance == 0 {
		o.Clearance = geometry.DefaultClearance
	}
	if len(o.Formats) == 0 {
		o.Formats = append([]string(nil), DefaultFormats...)
	}
	if o.Renderer == "" {
		o.Renderer = string(render.RendererNative)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks dimensions, formats and renderer. Call [Options.SetDefaults]
// first. Errors carry INVALID_* codes.
func (o *Options) Validate() error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"width", o.Width}, {"height", o.Height}} {
		if err := errors.ValidateDimension(d.name, d.v); err != nil {
			return err
		}
		if d.v > MaxDimension {
			return errors.New(errors.ErrCodeInvalidInput, "%s must be at most %g (got %g)", d.name, MaxDimension, d.v)
		}
	}
	for _, d := range []struct {
		name string
		v    float64
	}{{"margin", o.margin()}, {"node_radius", o.NodeRadius}, {"clearance", o.Clearance}, {"scale", o.Scale}} {
		if err := errors.ValidateNonNegative(d.name, d.v); err != nil {
			return err
		}
	}

	formats, err := render.ParseFormats(o.Formats)
	if err != nil {
		return err
	}
	if len(formats) == 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "at least one format is required")
	}
	renderer, err := render.ParseRenderer(o.Renderer)
	if err != nil {
		return err
	}
	o.formats, o.renderer = formats, renderer
	return nil
}

// ValidateAndSetDefaults applies defaults and validates in one step.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// Frame returns the layout viewport.
func (o *Options) Frame() layout.Frame {
	return layout.Frame{Width: o.Width, Height: o.Height, Margin: o.margin()}
}

func (o *Options) margin() float64 {
	if o.Margin == nil {
		return layout.DefaultMargin
	}
	return *o.Margin
}

// Float returns a pointer to v, for optional fields such as [Options.Margin].
func Float(v float64) *float64 { return &v }

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Width: o.Width, Height: o.Height, Margin: o.margin()}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format render.Format) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Layout:     o.LayoutKeyOpts(),
		NodeRadius: o.NodeRadius,
		Clearance:  o.Clearance,
		Format:     string(format),
	}
	// Only SVG-derived formats depend on the renderer and border.
	switch format {
	case render.FormatSVG, render.FormatPNG, render.FormatPDF:
		opts.Renderer = string(o.renderer)
		opts.Border = o.Border && o.renderer == render.RendererNative
	}
	if format == render.FormatPNG {
		opts.Format = string(format) + "@" + formatScale(o.Scale)
	}
	return opts
}
