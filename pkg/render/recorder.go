package render

// OpKind identifies a recorded primitive call.
type OpKind string

// Recorded primitive kinds.
const (
	OpResize OpKind = "resize"
	OpLine   OpKind = "line"
	OpRect   OpKind = "rect"
	OpCircle OpKind = "circle"
	OpText   OpKind = "text"
)

// Op is one captured primitive call with every argument it received.
// Unused fields are zero for kinds that don't carry them.
type Op struct {
	Kind OpKind `json:"kind"`

	// Resize
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Line
	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	// Rect and circle geometry
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	W        float64 `json:"w,omitempty"`
	H        float64 `json:"h,omitempty"`
	CX       float64 `json:"cx,omitempty"`
	CY       float64 `json:"cy,omitempty"`
	Diameter float64 `json:"diameter,omitempty"`

	// Paint
	Color       string  `json:"color,omitempty"`
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	LineWidth   float64 `json:"line_width,omitempty"`

	// Text
	Content    string  `json:"content,omitempty"`
	FontSize   float64 `json:"font_size,omitempty"`
	FontFamily string  `json:"font_family,omitempty"`
}

// Recorder is a Surface that captures the primitive call sequence in
// memory instead of drawing. The JSON sink uses it to export exact
// geometry, and tests use it to assert on the engine's output.
type Recorder struct {
	ops []Op
}

// NewRecorder creates an empty recording surface.
func NewRecorder() *Recorder { return &Recorder{} }

// Ops returns the captured calls in emission order.
func (r *Recorder) Ops() []Op { return r.ops }

// Resize implements Surface.
func (r *Recorder) Resize(width, height float64) error {
	r.ops = append(r.ops, Op{Kind: OpResize, Width: width, Height: height})
	return nil
}

// DrawLine implements Surface.
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, color string, width float64) error {
	r.ops = append(r.ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: color, LineWidth: width})
	return nil
}

// DrawRect implements Surface.
func (r *Recorder) DrawRect(x, y, w, h float64, fill, stroke string, strokeWidth float64) error {
	r.ops = append(r.ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Fill: fill, Stroke: stroke, StrokeWidth: strokeWidth})
	return nil
}

// DrawCircle implements Surface.
func (r *Recorder) DrawCircle(cx, cy, diameter float64, fill, stroke string, strokeWidth float64) error {
	r.ops = append(r.ops, Op{Kind: OpCircle, CX: cx, CY: cy, Diameter: diameter, Fill: fill, Stroke: stroke, StrokeWidth: strokeWidth})
	return nil
}

// DrawText implements Surface.
func (r *Recorder) DrawText(content string, x, y, fontSize float64, fontFamily, color string) error {
	r.ops = append(r.ops, Op{Kind: OpText, Content: content, X: x, Y: y, FontSize: fontSize, FontFamily: fontFamily, Color: color})
	return nil
}

// Ensure Recorder implements Surface.
var _ Surface = (*Recorder)(nil)
