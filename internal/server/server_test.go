package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/relgraph/pkg/pipeline"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(newMemCache(), nil, logger)
	ts := httptest.NewServer(New(runner, logger, opts...).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Status string `json:"status"`
		Build  struct {
			Version string `json:"version"`
		} `json:"build"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Build.Version == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestDemo(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/demo.svg", "image/svg+xml", `<marker id="arrowhead"`},
		{"/demo.json", "application/json", `"primitives"`},
		{"/demo.dot", "text/vnd.graphviz", "layout=neato"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, body %s", resp.StatusCode, body)
			}
			if got := resp.Header.Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if _, err := uuid.Parse(resp.Header.Get(HeaderRenderID)); err != nil {
				t.Errorf("%s = %q is not a uuid", HeaderRenderID, resp.Header.Get(HeaderRenderID))
			}
			if !strings.Contains(string(body), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}
}

func TestDemoJSONQueryOptions(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		query  string
		margin float64
		radius float64
	}{
		{"", 50, 10},
		{"?margin=0", 0, 10},
		{"?margin=20&node_radius=4", 20, 4},
	}
	for _, tt := range tests {
		t.Run("query"+tt.query, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/demo.json" + tt.query)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}

			var doc struct {
				ID         string  `json:"id"`
				Margin     float64 `json:"margin"`
				Primitives []struct {
					Type string  `json:"type"`
					R    float64 `json:"r"`
				} `json:"primitives"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
				t.Fatal(err)
			}
			if doc.ID == "" || doc.ID != resp.Header.Get(HeaderRenderID) {
				t.Errorf("id = %q, want %s %q", doc.ID, HeaderRenderID, resp.Header.Get(HeaderRenderID))
			}
			if doc.Margin != tt.margin {
				t.Errorf("margin = %v, want %v", doc.Margin, tt.margin)
			}
			for _, p := range doc.Primitives {
				if p.Type == "circle" && p.R != tt.radius {
					t.Fatalf("circle r = %v, want %v", p.R, tt.radius)
				}
			}
		})
	}
}

func TestDemoBorder(t *testing.T) {
	ts := newTestServer(t)
	for _, tt := range []struct {
		query string
		rect  bool
	}{{"", false}, {"?border=true", true}, {"?border=0", false}} {
		resp, err := http.Get(ts.URL + "/demo.svg" + tt.query)
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if got := strings.Contains(string(body), "<rect "); got != tt.rect {
			t.Errorf("%q: border drawn = %v, want %v", tt.query, got, tt.rect)
		}
	}
}

func TestDemoUnknownFormat(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/demo.gif")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRenderPostedGraph(t *testing.T) {
	ts := newTestServer(t)
	graphJSON := `{"nodes":[{"kind":"value"},{"kind":"relationship"}],
		"edges":[{"source":0,"target":1,"direction":"value_to_rel"}]}`

	resp, err := http.Post(ts.URL+"/render?format=svg&width=300&height=300", "application/json", strings.NewReader(graphJSON))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), `viewBox="0 0 300 300"`) {
		t.Errorf("width/height query not applied:\n%s", body)
	}
	if resp.Header.Get(HeaderCache) != "miss" {
		t.Errorf("first render %s = %q, want miss", HeaderCache, resp.Header.Get(HeaderCache))
	}

	again, err := http.Post(ts.URL+"/render?format=svg&width=300&height=300", "application/json", strings.NewReader(graphJSON))
	if err != nil {
		t.Fatal(err)
	}
	again.Body.Close()
	if again.Header.Get(HeaderCache) != "hit" {
		t.Errorf("second render %s = %q, want hit", HeaderCache, again.Header.Get(HeaderCache))
	}
	if again.Header.Get(HeaderRenderID) == resp.Header.Get(HeaderRenderID) {
		t.Error("render ids should differ between requests")
	}
}

func TestRenderYAMLBody(t *testing.T) {
	ts := newTestServer(t)
	body := "nodes:\n  - kind: value\nedges: []\n"
	resp, err := http.Post(ts.URL+"/render?format=json", "application/yaml", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRenderErrors(t *testing.T) {
	ts := newTestServer(t, WithMaxBody(64))

	tests := []struct {
		name        string
		query       string
		contentType string
		body        string
		status      int
		code        string
	}{
		{"bad json", "", "application/json", "{", 400, "INVALID_GRAPH"},
		{"dangling edge", "", "application/json", `{"nodes":[],"edges":[{"source":0,"target":1}]}`, 400, "INVALID_GRAPH"},
		{"bad format", "?format=gif", "application/json", `{"nodes":[]}`, 400, "INVALID_FORMAT"},
		{"bad number", "?width=wide", "application/json", `{"nodes":[]}`, 400, "INVALID_INPUT"},
		{"bad renderer", "?renderer=cairo", "application/json", `{"nodes":[]}`, 400, "INVALID_RENDERER"},
		{"bad content type", "", "text/csv", "a,b", 400, "INVALID_FORMAT"},
		{"too large", "", "application/json", `{"nodes":[` + strings.Repeat(`{"kind":"value"},`, 10) + `{"kind":"value"}]}`, 400, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/render"+tt.query, tt.contentType, bytes.NewBufferString(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var e ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if string(e.Code) != tt.code {
				t.Errorf("code = %q, want %q (%s)", e.Code, tt.code, e.Message)
			}
		})
	}
}

func TestNotFoundAndMethod(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/render")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /render status = %d, want 405", resp.StatusCode)
	}
}
