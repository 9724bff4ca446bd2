package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/render"
	"github.com/qdrawlabs/qdraw/pkg/render/styles"
)

// SVG is a render.Surface that buffers SVG markup. Elements appear in
// draw-call order, which is also their paint order.
type SVG struct {
	buf           bytes.Buffer
	width, height float64
}

// NewSVG creates an empty SVG surface.
func NewSVG() *SVG { return &SVG{} }

// Resize opens the svg element with the given dimensions.
func (s *SVG) Resize(width, height float64) error {
	s.width, s.height = width, height
	fmt.Fprintf(&s.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	return nil
}

// DrawLine implements render.Surface.
func (s *SVG) DrawLine(x1, y1, x2, y2 float64, color string, width float64) error {
	fmt.Fprintf(&s.buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		x1, y1, x2, y2, escapeXML(color), width)
	return nil
}

// DrawRect implements render.Surface.
func (s *SVG) DrawRect(x, y, w, h float64, fill, stroke string, strokeWidth float64) error {
	fmt.Fprintf(&s.buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="%.2f"/>`+"\n",
		x, y, w, h, escapeXML(fill), escapeXML(stroke), strokeWidth)
	return nil
}

// DrawCircle implements render.Surface. An empty stroke omits the outline.
func (s *SVG) DrawCircle(cx, cy, diameter float64, fill, stroke string, strokeWidth float64) error {
	if stroke == "" {
		fmt.Fprintf(&s.buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
			cx, cy, diameter/2, escapeXML(fill))
		return nil
	}
	fmt.Fprintf(&s.buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.2f"/>`+"\n",
		cx, cy, diameter/2, escapeXML(fill), escapeXML(stroke), strokeWidth)
	return nil
}

// DrawText implements render.Surface. Text is centered on (x, y).
func (s *SVG) DrawText(content string, x, y, fontSize float64, fontFamily, color string) error {
	fmt.Fprintf(&s.buf, `  <text x="%.2f" y="%.2f" font-size="%.2f" font-family="%s" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		x, y, fontSize, escapeXML(fontFamily), escapeXML(color), escapeXML(content))
	return nil
}

// Bytes returns the complete SVG document.
func (s *SVG) Bytes() []byte {
	out := make([]byte, 0, s.buf.Len()+8)
	out = append(out, s.buf.Bytes()...)
	return append(out, "</svg>\n"...)
}

// Ensure SVG implements Surface.
var _ render.Surface = (*SVG)(nil)

// RenderSVG draws the circuit with the given style and returns the SVG
// document bytes.
func RenderSVG(c *circuit.Circuit, st styles.Style) ([]byte, error) {
	surf := NewSVG()
	if err := render.Draw(c, st, surf); err != nil {
		return nil, err
	}
	return surf.Bytes(), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
