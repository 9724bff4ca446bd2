package render

// Surface is the drawing backend contract the engine renders to.
//
// The engine only ever calls this fixed primitive set, in a deterministic
// order, after a single Resize. Coordinates are in user units with the
// origin at the top-left and y increasing downward. Text is always
// anchored at its horizontal and vertical center.
//
// Implementations report failures through the returned error; the engine
// stops at the first failure and propagates it unmodified, without
// attempting cleanup of primitives already emitted.
type Surface interface {
	// Resize sets the canvas dimensions. Called exactly once, before any
	// drawing.
	Resize(width, height float64) error

	// DrawLine draws a straight line segment.
	DrawLine(x1, y1, x2, y2 float64, color string, width float64) error

	// DrawRect draws a filled and stroked rectangle anchored at its
	// top-left corner.
	DrawRect(x, y, w, h float64, fill, stroke string, strokeWidth float64) error

	// DrawCircle draws a circle of the given diameter centered at (cx, cy).
	// An empty stroke means no outline.
	DrawCircle(cx, cy, diameter float64, fill, stroke string, strokeWidth float64) error

	// DrawText draws content centered horizontally and vertically on (x, y).
	DrawText(content string, x, y, fontSize float64, fontFamily, color string) error
}
