// Package styles defines the visual parameters for circuit diagrams.
//
// A Style is a flat set of twelve geometric and color knobs, all of which
// always have a defined value. Callers start from Default and apply an
// Overrides value on top; the merge is total and override-wins. Values
// are not range-checked: negative spacing or a zero font size produce
// degenerate but well-defined geometry.
package styles

// Style holds every visual parameter the render engine reads.
type Style struct {
	QubitSpacing    float64 // vertical distance between qubit baselines
	GateSpacing     float64 // horizontal distance between gate columns
	GateWidth       float64 // gate box width
	GateHeight      float64 // gate box height
	LineColor       string  // baseline and connector color
	LineWidth       float64 // baseline and connector stroke width
	GateFill        string  // gate box fill color
	GateStroke      string  // gate box stroke color
	GateStrokeWidth float64 // gate box stroke width
	FontSize        float64 // label font size (rotation labels draw 2 smaller)
	FontFamily      string  // label font family
	FontColor       string  // label text color
}

// Default returns the stock diagram style.
func Default() Style {
	return Style{
		QubitSpacing:    50,
		GateSpacing:     60,
		GateWidth:       40,
		GateHeight:      40,
		LineColor:       "black",
		LineWidth:       1,
		GateFill:        "white",
		GateStroke:      "black",
		GateStrokeWidth: 1,
		FontSize:        14,
		FontFamily:      "sans-serif",
		FontColor:       "black",
	}
}

// Overrides is a partial style: nil fields keep the base value.
// The tags let a TOML style file or a JSON API request supply any
// subset of knobs.
type Overrides struct {
	QubitSpacing    *float64 `toml:"qubit_spacing" json:"qubit_spacing,omitempty"`
	GateSpacing     *float64 `toml:"gate_spacing" json:"gate_spacing,omitempty"`
	GateWidth       *float64 `toml:"gate_width" json:"gate_width,omitempty"`
	GateHeight      *float64 `toml:"gate_height" json:"gate_height,omitempty"`
	LineColor       *string  `toml:"line_color" json:"line_color,omitempty"`
	LineWidth       *float64 `toml:"line_width" json:"line_width,omitempty"`
	GateFill        *string  `toml:"gate_fill" json:"gate_fill,omitempty"`
	GateStroke      *string  `toml:"gate_stroke" json:"gate_stroke,omitempty"`
	GateStrokeWidth *float64 `toml:"gate_stroke_width" json:"gate_stroke_width,omitempty"`
	FontSize        *float64 `toml:"font_size" json:"font_size,omitempty"`
	FontFamily      *string  `toml:"font_family" json:"font_family,omitempty"`
	FontColor       *string  `toml:"font_color" json:"font_color,omitempty"`
}

// Apply merges o over base and returns the result. Every field of the
// returned Style is defined: present overrides win, absent ones fall
// through to base.
func (o Overrides) Apply(base Style) Style {
	s := base
	if o.QubitSpacing != nil {
		s.QubitSpacing = *o.QubitSpacing
	}
	if o.GateSpacing != nil {
		s.GateSpacing = *o.GateSpacing
	}
	if o.GateWidth != nil {
		s.GateWidth = *o.GateWidth
	}
	if o.GateHeight != nil {
		s.GateHeight = *o.GateHeight
	}
	if o.LineColor != nil {
		s.LineColor = *o.LineColor
	}
	if o.LineWidth != nil {
		s.LineWidth = *o.LineWidth
	}
	if o.GateFill != nil {
		s.GateFill = *o.GateFill
	}
	if o.GateStroke != nil {
		s.GateStroke = *o.GateStroke
	}
	if o.GateStrokeWidth != nil {
		s.GateStrokeWidth = *o.GateStrokeWidth
	}
	if o.FontSize != nil {
		s.FontSize = *o.FontSize
	}
	if o.FontFamily != nil {
		s.FontFamily = *o.FontFamily
	}
	if o.FontColor != nil {
		s.FontColor = *o.FontColor
	}
	return s
}
