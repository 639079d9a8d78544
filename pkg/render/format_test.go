package render

import (
	"context"
	"testing"

	"github.com/matzehuels/relgraph/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{"JSON", FormatJSON, false},
		{" dot ", FormatDOT, false},
		{"png", FormatPNG, false},
		{"pdf", FormatPDF, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatsDedup(t *testing.T) {
	got, err := ParseFormats([]string{"svg,json", "svg", " ", "pdf"})
	if err != nil {
		t.Fatal(err)
	}
	want := []Format{FormatSVG, FormatJSON, FormatPDF}
	if len(got) != len(want) {
		t.Fatalf("ParseFormats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseFormats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	_, err = ParseFormats([]string{"svg,bmp"})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormats(bmp) error = %v, want INVALID_FORMAT", err)
	}
}

func TestParseRenderer(t *testing.T) {
	if r, err := ParseRenderer(""); err != nil || r != RendererNative {
		t.Errorf("ParseRenderer(\"\") = %q, %v", r, err)
	}
	if r, err := ParseRenderer("Graphviz"); err != nil || r != RendererGraphviz {
		t.Errorf("ParseRenderer(Graphviz) = %q, %v", r, err)
	}
	if _, err := ParseRenderer("cairo"); !errors.Is(err, errors.ErrCodeInvalidRenderer) {
		t.Errorf("ParseRenderer(cairo) error = %v, want INVALID_RENDERER", err)
	}
}

func TestContentType(t *testing.T) {
	if got := FormatSVG.ContentType(); got != "image/svg+xml" {
		t.Errorf("svg content type = %q", got)
	}
	if got := Format("x").ContentType(); got != "application/octet-stream" {
		t.Errorf("unknown content type = %q", got)
	}
	if !FormatPNG.NeedsConverter() || FormatSVG.NeedsConverter() {
		t.Error("only png and pdf need the converter")
	}
}

func TestConvertUnsupported(t *testing.T) {
	_, err := ConvertContext(context.Background(), []byte("<svg/>"), FormatJSON, 1)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ConvertContext(json) error = %v, want UNSUPPORTED", err)
	}
}

func TestConvertMissingBinary(t *testing.T) {
	old := rsvgBinary
	rsvgBinary = "relgraph-no-such-converter"
	defer func() { rsvgBinary = old }()

	_, err := ConvertContext(context.Background(), []byte("<svg/>"), FormatPDF, 1)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ConvertContext without converter error = %v, want UNSUPPORTED", err)
	}
}
