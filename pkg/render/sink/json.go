package sink

import (
	"encoding/json"

	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/render"
	"github.com/qdrawlabs/qdraw/pkg/render/styles"
)

// geometry is the JSON document describing a rendered diagram: canvas
// dimensions plus every primitive in emission order.
type geometry struct {
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Ops    []render.Op `json:"ops"`
}

// RenderJSON exports the exact geometry of every visual element as a
// pretty-printed JSON document. The op order matches the draw order, so
// two renders of the same circuit and style produce identical bytes.
func RenderJSON(c *circuit.Circuit, st styles.Style) ([]byte, error) {
	rec := render.NewRecorder()
	if err := render.Draw(c, st, rec); err != nil {
		return nil, err
	}

	out := geometry{Ops: rec.Ops()}
	for _, op := range rec.Ops() {
		if op.Kind == render.OpResize {
			out.Width, out.Height = op.Width, op.Height
			break
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
