package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/matzehuels/relgraph/pkg/errors"
)

// rsvgBinary is the converter looked up on PATH.
var rsvgBinary = "rsvg-convert"

// ConvertContext converts SVG bytes to PDF or PNG, killing the converter if
// ctx is done. Scale only applies to PNG.
func ConvertContext(ctx context.Context, svg []byte, format Format, scale float64) ([]byte, error) {
	var extra []string
	switch format {
	case FormatPDF:
	case FormatPNG:
		if scale <= 0 {
			scale = 1
		}
		extra = []string{"-z", fmt.Sprintf("%.2f", scale)}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "cannot convert svg to %s", format)
	}
	return rsvgConvert(ctx, svg, string(format), extra...)
}

// ConverterAvailable reports whether rsvg-convert is on PATH.
func ConverterAvailable() bool {
	_, err := exec.LookPath(rsvgBinary)
	return err == nil
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if !ConverterAvailable() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, rsvgBinary, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
