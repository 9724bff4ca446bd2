// Package render turns a circuit model into primitive draw calls.
//
// The engine is a pure function of its three inputs: [Draw] reads a
// [circuit.Circuit] and a [styles.Style] and emits an ordered sequence of
// primitives (lines, rectangles, circles, text) to an injected [Surface].
// It holds no state between calls, performs no I/O of its own, and never
// mutates the circuit.
//
// Layout is deliberately simple: every gate occupies its own column in
// insertion order, columns are never compacted, and the canvas reserves
// one spacing unit of margin at each edge so nothing is ever clipped.
//
// Any backend implementing Surface is a valid target. The sink package
// provides SVG, PNG, PDF, and JSON geometry backends; [Recorder] captures
// the call sequence in memory for the JSON sink and for tests.
package render
