// Package server exposes the render pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz              build info and status
//	GET  /demo.{format}        the built-in demo graph
//	POST /render?format=svg    render a graph posted as JSON, YAML or TOML
//
// Every render response carries X-Render-ID (a fresh UUID per run),
// X-Graph-Hash and X-Cache (hit or miss). Errors are JSON objects with a
// machine-readable code; INVALID_* codes map to 400, NOT_FOUND codes to 404,
// everything else to 500.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/relgraph/pkg/observability"
	"github.com/matzehuels/relgraph/pkg/pipeline"
)

const (
	defaultMaxBody      = 1 << 20
	defaultTimeout      = 30 * time.Second
	shutdownGracePeriod = 10 * time.Second
)

// Server serves render requests.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults pipeline.Options
	maxBody  int64
	timeout  time.Duration
	router   chi.Router
}

// Option configures a [Server].
type Option func(*Server)

// WithDefaults sets the options requests start from; query parameters
// override them.
func WithDefaults(opts pipeline.Options) Option { return func(s *Server) { s.defaults = opts } }

// WithMaxBody limits the request body size in bytes.
func WithMaxBody(n int64) Option { return func(s *Server) { s.maxBody = n } }

// WithTimeout bounds the time spent on one request.
func WithTimeout(d time.Duration) Option { return func(s *Server) { s.timeout = d } }

// New creates a server backed by runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:  runner,
		logger:  logger,
		maxBody: defaultMaxBody,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.handleHealth)
	r.Get("/demo.{format}", s.handleDemo)
	r.Post("/render", s.handleRender)
	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleMethodNotAllowed)
	return r
}

// logRequests reports each request to the logger and the server hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		took := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, took)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"took", took,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
