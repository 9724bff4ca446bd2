package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/qdrawlabs/qdraw/pkg/errors"
)

// rsvgBinary is the external converter behind PNG and PDF output. SVG
// is the engine's native format; raster and print formats are derived
// from it rather than drawn a second time.
const rsvgBinary = "rsvg-convert"

// ToPNG rasterizes rendered SVG markup to PNG. The scale factor
// multiplies the SVG canvas dimensions, so 2.0 doubles the pixel size.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvg(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// ToPDF converts rendered SVG markup to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return rsvg(svg, "pdf")
}

// rsvg pipes the SVG through rsvg-convert, which ships with librsvg
// (brew install librsvg on macOS, apt install librsvg2-bin on Linux).
func rsvg(svg []byte, format string, extra ...string) ([]byte, error) {
	if _, err := exec.LookPath(rsvgBinary); err != nil {
		return nil, errors.New(errors.ErrCodeInternal,
			"%s output requires librsvg (brew install librsvg / apt install librsvg2-bin)", format)
	}

	cmd := exec.Command(rsvgBinary, append([]string{"-f", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", rsvgBinary, stderr.String())
	}
	return stdout.Bytes(), nil
}
