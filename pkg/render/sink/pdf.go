package sink

import (
	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/render"
	"github.com/qdrawlabs/qdraw/pkg/render/styles"
)

// RenderPDF renders the circuit as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(c *circuit.Circuit, st styles.Style) ([]byte, error) {
	svg, err := RenderSVG(c, st)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}
