// Package dagviz renders a circuit's gate-dependency graph through
// Graphviz. Two gates are dependent when they act on a shared qubit and
// no gate between them touches that qubit; the resulting DAG shows which
// gates could in principle run concurrently, complementing the strict
// one-gate-per-column timeline of the main diagram.
package dagviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/render"
)

// Options configures gate-dependency diagram rendering.
type Options struct {
	// Detailed includes the column number in node labels.
	Detailed bool
}

// ToDOT converts the circuit's gate dependencies to Graphviz DOT format.
// Node IDs are the gate's column position; edges follow qubit order.
func ToDOT(c *circuit.Circuit, opts Options) string {
	gates := c.Gates()

	var buf bytes.Buffer
	buf.WriteString("digraph circuit {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for j, g := range gates {
		label := g.Label()
		if opts.Detailed {
			label = fmt.Sprintf("%s\ncolumn %d", label, j+1)
		}
		attrs := fmt.Sprintf("label=%q", label)
		if g.Kind() == circuit.KindControlTarget {
			attrs += ", shape=circle, fillcolor=lightgrey"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(j), attrs)
	}

	buf.WriteString("\n")
	for _, e := range dependencyEdges(gates) {
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(e.from), nodeID(e.to))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(j int) string { return fmt.Sprintf("g%d", j) }

type edge struct{ from, to int }

// dependencyEdges links each gate to the previous gate on every qubit it
// touches. Duplicate edges (two gates sharing both qubits) collapse.
func dependencyEdges(gates []circuit.Gate) []edge {
	last := make(map[int]int) // qubit → index of last gate seen on it
	seen := make(map[edge]struct{})
	var edges []edge

	for j, g := range gates {
		for _, q := range g.Targets() {
			if prev, ok := last[q]; ok {
				e := edge{from: prev, to: j}
				if _, dup := seen[e]; !dup {
					seen[e] = struct{}{}
					edges = append(edges, e)
				}
			}
			last[q] = j
		}
	}
	return edges
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
