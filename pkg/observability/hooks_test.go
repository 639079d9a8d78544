package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnLayoutStart(ctx, 6)
	p.OnLayoutComplete(ctx, 6, time.Millisecond)
	p.OnAssembleComplete(ctx, 17, time.Millisecond)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	// Server hooks
	s := NoopServerHooks{}
	s.OnRequest(ctx, "POST", "/render")
	s.OnResponse(ctx, "POST", "/render", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customServer := &testServerHooks{}
	SetServerHooks(customServer)
	if Server() != customServer {
		t.Error("SetServerHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnLayoutStart(ctx, 6)
	h.OnCacheHit(ctx, "artifact")
	h.OnRenderComplete(ctx, []string{"png"}, time.Millisecond, errors.New("no converter"))

	out := buf.String()
	for _, want := range []string{"layout start", "nodes=6", "cache hit", "render failed", "no converter"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))
	h.OnCacheMiss(context.Background(), "artifact")
	if buf.Len() != 0 {
		t.Errorf("info-level logger should drop debug events, got %q", buf.String())
	}
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testServerHooks struct{ NoopServerHooks }
