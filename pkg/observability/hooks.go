// Package observability provides hooks for metrics, tracing, and logging.
//
// The render pipeline, the artifact cache and the HTTP service emit events
// through small hook interfaces. Nothing here depends on a metrics backend;
// callers register an implementation at startup and libraries call whatever
// is registered.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so there are no import
// cycles and different backends can be swapped in.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(observability.NewLogHooks(logger))
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, g.NodeCount())
//	// ... compute positions ...
//	observability.Pipeline().OnLayoutComplete(ctx, g.NodeCount(), time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the render pipeline.
type PipelineHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, nodeCount int)
	OnLayoutComplete(ctx context.Context, nodeCount int, duration time.Duration)

	// OnAssembleComplete fires once the scene primitives exist.
	OnAssembleComplete(ctx context.Context, primitives int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP render service.
type ServerHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the status written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration)             {}
func (NoopPipelineHooks) OnAssembleComplete(context.Context, int, time.Duration)           {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

// registry holds the active hooks. Setters run at startup; getters run on
// every event, so reads take the shared lock only.
var registry = struct {
	sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
	server   ServerHooks
}{
	pipeline: NoopPipelineHooks{},
	cache:    NoopCacheHooks{},
	server:   NoopServerHooks{},
}

// SetPipelineHooks registers pipeline hooks. Call it before the first
// render; a nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	registry.Lock()
	registry.pipeline = h
	registry.Unlock()
}

// SetCacheHooks registers cache hooks; a nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	registry.Lock()
	registry.cache = h
	registry.Unlock()
}

// SetServerHooks registers HTTP service hooks; a nil h is ignored.
func SetServerHooks(h ServerHooks) {
	if h == nil {
		return
	}
	registry.Lock()
	registry.server = h
	registry.Unlock()
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	registry.RLock()
	defer registry.RUnlock()
	return registry.pipeline
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	registry.RLock()
	defer registry.RUnlock()
	return registry.cache
}

// Server returns the registered HTTP service hooks.
func Server() ServerHooks {
	registry.RLock()
	defer registry.RUnlock()
	return registry.server
}

// Reset restores the no-op hooks. Tests call it in cleanup.
func Reset() {
	registry.Lock()
	defer registry.Unlock()
	registry.pipeline = NoopPipelineHooks{}
	registry.cache = NoopCacheHooks{}
	registry.server = NoopServerHooks{}
}
