package render

import (
	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/render/styles"
)

// Fixed glyph dimensions for the control-target gate. These are part of
// the diagram's visual identity and are independent of the style config.
const (
	controlDiameter = 8.0  // filled control disc
	targetDiameter  = 20.0 // open target circle
	plusHalfLength  = 5.0  // half-length of each plus-sign segment
)

// rotationFontShrink de-emphasizes rotation labels relative to plain
// gate labels so the angle text does not dominate the box.
const rotationFontShrink = 2.0

// Draw renders the circuit onto the surface using the given style.
//
// The call sequence is deterministic: one Resize, then one baseline per
// qubit in index order, then the gates in insertion order, each gate's
// shape parts in a fixed sub-order. The gate at sequence position j is
// placed in column j+1; no two gates share a column.
//
// Draw stops at the first surface error and returns it unmodified. It
// performs no cleanup of primitives already emitted; whole-diagram
// atomicity is the caller's concern.
func Draw(c *circuit.Circuit, st styles.Style, surf Surface) error {
	gates := c.Gates()

	width := st.GateSpacing * float64(len(gates)+1)
	height := st.QubitSpacing * float64(c.NumQubits()+1)
	if err := surf.Resize(width, height); err != nil {
		return err
	}

	for i := 0; i < c.NumQubits(); i++ {
		y := baselineY(st, i)
		if err := surf.DrawLine(0, y, width, y, st.LineColor, st.LineWidth); err != nil {
			return err
		}
	}

	for j, g := range gates {
		x := st.GateSpacing * float64(j+1)
		if err := drawGate(surf, st, g, x); err != nil {
			return err
		}
	}
	return nil
}

// baselineY is the single source of truth for the vertical position of a
// qubit line. Gate placement reuses it so boxes and glyphs stay centered
// on their baselines.
func baselineY(st styles.Style, qubit int) float64 {
	return st.QubitSpacing * float64(qubit+1)
}

func drawGate(surf Surface, st styles.Style, g circuit.Gate, x float64) error {
	switch g.Kind() {
	case circuit.KindSingleBox:
		return drawBox(surf, st, g, x, st.FontSize)
	case circuit.KindRotationBox:
		return drawBox(surf, st, g, x, st.FontSize-rotationFontShrink)
	case circuit.KindControlTarget:
		return drawControlTarget(surf, st, g, x)
	}
	return nil
}

// drawBox renders a labeled rectangle centered on the gate's qubit line.
func drawBox(surf Surface, st styles.Style, g circuit.Gate, x, fontSize float64) error {
	cy := baselineY(st, g.Targets()[0])
	top := cy - st.GateHeight/2
	left := x - st.GateWidth/2

	if err := surf.DrawRect(left, top, st.GateWidth, st.GateHeight, st.GateFill, st.GateStroke, st.GateStrokeWidth); err != nil {
		return err
	}
	return surf.DrawText(g.Label(), x, cy, fontSize, st.FontFamily, st.FontColor)
}

// drawControlTarget renders the three-part conditional-flip glyph:
// control disc, vertical connector, and target circle with a plus sign.
// The connector is drawn whether the control sits above or below the target.
func drawControlTarget(surf Surface, st styles.Style, g circuit.Gate, x float64) error {
	targets := g.Targets()
	y1 := baselineY(st, targets[0]) // control
	y2 := baselineY(st, targets[1]) // target

	if err := surf.DrawCircle(x, y1, controlDiameter, st.GateStroke, "", 0); err != nil {
		return err
	}
	if err := surf.DrawLine(x, y1, x, y2, st.LineColor, st.LineWidth); err != nil {
		return err
	}
	if err := surf.DrawCircle(x, y2, targetDiameter, "white", st.GateStroke, st.GateStrokeWidth); err != nil {
		return err
	}
	if err := surf.DrawLine(x-plusHalfLength, y2, x+plusHalfLength, y2, st.GateStroke, st.GateStrokeWidth); err != nil {
		return err
	}
	return surf.DrawLine(x, y2-plusHalfLength, x, y2+plusHalfLength, st.GateStroke, st.GateStrokeWidth)
}
