package server

import (
	"encoding/json"
	stderrors "errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/relgraph/pkg/buildinfo"
	"github.com/matzehuels/relgraph/pkg/errors"
	"github.com/matzehuels/relgraph/pkg/graph"
	graphio "github.com/matzehuels/relgraph/pkg/io"
	"github.com/matzehuels/relgraph/pkg/pipeline"
	"github.com/matzehuels/relgraph/pkg/render"
	"github.com/matzehuels/relgraph/pkg/render/sink"
)

// Response headers set on render responses.
const (
	HeaderRenderID  = "X-Render-ID"
	HeaderGraphHash = "X-Graph-Hash"
	HeaderCache     = "X-Cache"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeNotFound, err, "no demo for this format"))
		return
	}
	s.render(w, r, graph.Demo(), format)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(queryOr(r, "format", string(render.FormatSVG)))
	if err != nil {
		s.writeError(w, err)
		return
	}

	encoding, err := bodyFormat(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	defer body.Close()
	g, err := graphio.Read(body, encoding)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", s.maxBody))
			return
		}
		s.writeError(w, err)
		return
	}
	s.render(w, r, g, format)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, g *graph.Graph, format render.Format) {
	opts, err := s.requestOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts.Formats = []string{string(format)}
	opts.Logger = s.logger

	res, err := s.runner.Execute(r.Context(), g, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	body := res.Artifacts[string(format)]
	if format == render.FormatJSON {
		// The cached scene has no id; stamp this run's.
		body, err = sink.RenderJSON(res.Scene, sink.WithJSONFrame(res.Frame), sink.WithJSONID(res.ID), sink.WithJSONIndent())
		if err != nil {
			s.writeError(w, err)
			return
		}
	}

	h := w.Header()
	h.Set("Content-Type", format.ContentType())
	h.Set(HeaderRenderID, res.ID)
	h.Set(HeaderGraphHash, res.GraphHash)
	if res.CacheInfo.AllHit() {
		h.Set(HeaderCache, "hit")
	} else {
		h.Set(HeaderCache, "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// requestOptions overlays query parameters on the server defaults.
func (s *Server) requestOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	opts.Formats = nil

	q := r.URL.Query()
	var margin float64
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"margin", &margin},
		{"node_radius", &opts.NodeRadius},
		{"clearance", &opts.Clearance},
		{"scale", &opts.Scale},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s must be a number (got %q)", p.name, v)
		}
		*p.dst = f
		if p.dst == &margin {
			opts.Margin = &margin
		}
	}
	if v := q.Get("renderer"); v != "" {
		opts.Renderer = v
	}
	if v := q.Get("border"); v != "" {
		opts.Border = truthy(v)
	}
	if v := q.Get("refresh"); v != "" {
		opts.Refresh = truthy(v)
	}
	return opts, nil
}

// bodyFormat picks the graph decoder from the Content-Type header; JSON is
// the default.
func bodyFormat(r *http.Request) (graphio.Format, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return graphio.FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "bad Content-Type")
	}
	switch mt {
	case "application/json", "text/json":
		return graphio.FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return graphio.FormatYAML, nil
	case "application/toml", "text/toml":
		return graphio.FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported Content-Type %q", mt)
}

func truthy(v string) bool { return v == "1" || strings.EqualFold(v, "true") }

func queryOr(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
		Code:    errors.ErrCodeInvalidInput,
		Message: r.Method + " not allowed on " + r.URL.Path,
	})
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= 500 {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, ErrorResponse{Code: code, Message: errors.UserMessage(err)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
