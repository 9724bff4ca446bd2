package sink

import (
	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/render"
	"github.com/qdrawlabs/qdraw/pkg/render/styles"
)

// DefaultPNGScale is the default raster scale factor (2x resolution).
const DefaultPNGScale = 2.0

// RenderPNG renders the circuit as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(c *circuit.Circuit, st styles.Style, scale float64) ([]byte, error) {
	svg, err := RenderSVG(c, st)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
