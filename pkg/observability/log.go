package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. It implements
// [PipelineHooks], [CacheHooks] and [ServerHooks].
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnLayoutStart(_ context.Context, nodeCount int) {
	h.logger.Debug("layout start", "nodes", nodeCount)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, nodeCount int, d time.Duration) {
	h.logger.Debug("layout done", "nodes", nodeCount, "took", d)
}

func (h *LogHooks) OnAssembleComplete(_ context.Context, primitives int, d time.Duration) {
	h.logger.Debug("scene assembled", "primitives", primitives, "took", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "took", d, "err", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ ServerHooks   = (*LogHooks)(nil)
)
