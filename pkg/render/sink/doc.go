// Package sink provides output backends for circuit diagrams.
//
// SVG is the native format: [SVG] implements render.Surface by buffering
// markup, and [RenderSVG] is the one-call convenience. PNG and PDF are
// derived from the SVG bytes via rsvg-convert. [RenderJSON] exports the
// exact primitive geometry instead of a picture, for external tooling
// and round-trip testing.
package sink
