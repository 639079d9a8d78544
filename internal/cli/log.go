// Package cli implements the relgraph command-line interface.
//
// # Commands
//
//   - render: draw a graph file to SVG, JSON, DOT, PNG or PDF
//   - layout: print the circular node positions for a graph
//   - inspect: summarize a graph, or browse it interactively with -i
//   - demo: render or export the built-in demo graph
//   - serve: run the HTTP render service
//   - cache: clear or locate the artifact cache
//   - config: locate or initialize the config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// surfaces pipeline and cache events. The logger travels on the command's
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs a message with the time elapsed since it was created.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered 3 formats (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
