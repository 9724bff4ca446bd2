// Package pkg provides the core libraries for qdraw circuit diagram
// rendering.
//
// # Overview
//
// qdraw turns quantum circuit descriptions into diagram images. The pkg
// directory is organized into five main areas:
//
//  1. [circuit] - Domain model (qubits, the closed gate vocabulary)
//  2. [render] - Layout engine, drawing surfaces, styles, and sinks
//  3. [qasm] / [io] - OpenQASM 2.0 and JSON circuit formats
//  4. [cache] / [storage] - Artifact caching and diagram persistence
//  5. [buildinfo] / [errors] - Build metadata and coded errors
//
// # Architecture
//
// The typical data flow through qdraw:
//
//	OpenQASM / JSON source
//	         ↓
//	    [qasm] or [io] package (parse + validate)
//	         ↓
//	    [circuit] package (gate sequence, one gate per column)
//	         ↓
//	    [render] package (geometry → Surface primitives)
//	         ↓
//	    SVG/PNG/PDF/JSON output via [render/sink]
//
// # Quick Start
//
// Build a Bell pair circuit and render it to SVG:
//
//	import (
//	    "github.com/qdrawlabs/qdraw/pkg/circuit"
//	    "github.com/qdrawlabs/qdraw/pkg/render/sink"
//	    "github.com/qdrawlabs/qdraw/pkg/render/styles"
//	)
//
//	// 1. Build the circuit
//	c, _ := circuit.New(2)
//	h, _ := circuit.Hadamard(0)
//	cx, _ := circuit.CNOT(0, 1)
//	_ = c.Append(h)
//	_ = c.Append(cx)
//
//	// 2. Render to SVG with the default style
//	svg, _ := sink.RenderSVG(c, styles.Default())
//
// Custom drawing surfaces implement [render.Surface]; the engine in
// [render.Draw] emits the same primitive sequence to any backend.
//
// # Main Packages
//
//   - [circuit]: circuit model and gate constructors
//   - [render]: layout engine and the Surface contract
//   - [render/styles]: visual parameters and override merging
//   - [render/sink]: SVG, PNG, PDF, and JSON geometry outputs
//   - [render/dagviz]: gate-dependency view rendered through Graphviz
//   - [qasm]: OpenQASM 2.0 parsing and generation
//   - [io]: JSON circuit import/export
//   - [cache]: file, Redis, and null artifact caches
//   - [storage]: in-memory and MongoDB diagram persistence
//
// [circuit]: github.com/qdrawlabs/qdraw/pkg/circuit
// [render]: github.com/qdrawlabs/qdraw/pkg/render
// [render/styles]: github.com/qdrawlabs/qdraw/pkg/render/styles
// [render/sink]: github.com/qdrawlabs/qdraw/pkg/render/sink
// [render/dagviz]: github.com/qdrawlabs/qdraw/pkg/render/dagviz
// [qasm]: github.com/qdrawlabs/qdraw/pkg/qasm
// [io]: github.com/qdrawlabs/qdraw/pkg/io
// [cache]: github.com/qdrawlabs/qdraw/pkg/cache
// [storage]: github.com/qdrawlabs/qdraw/pkg/storage
package pkg
