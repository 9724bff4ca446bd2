package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/qdrawlabs/qdraw/pkg/cache"
	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/errors"
	qio "github.com/qdrawlabs/qdraw/pkg/io"
	"github.com/qdrawlabs/qdraw/pkg/qasm"
	"github.com/qdrawlabs/qdraw/pkg/render/dagviz"
	"github.com/qdrawlabs/qdraw/pkg/render/sink"
	"github.com/qdrawlabs/qdraw/pkg/render/styles"
)

const (
	vizCircuit = "circuit" // timeline diagram, one gate per column
	vizDag     = "dag"     // gate-dependency graph via Graphviz

	artifactTTL = 7 * 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file path (or base path for multiple outputs)
	vizTypes  []string // visualization types: "circuit", "dag"
	formats   []string // output formats: "svg", "png", "pdf", "json"
	styleFile string   // TOML style file path
	pngScale  float64  // raster scale factor for PNG output
	detailed  bool     // include column numbers in dag node labels
	noCache   bool     // bypass the artifact cache
}

// newRenderCmd creates the render command for generating diagrams.
// It reads OpenQASM (.qasm) or circuit JSON (.json) input and supports
// two visualization types (circuit, dag) and four output formats
// (SVG, PNG, PDF, JSON geometry).
func newRenderCmd() *cobra.Command {
	var vizTypesStr, formatsStr string
	opts := renderOpts{pngScale: sink.DefaultPNGScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a circuit file to diagram(s)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.vizTypes = parseVizTypes(vizTypesStr)
			opts.formats = parseFormats(formatsStr)
			if err := validateVizTypes(opts.vizTypes); err != nil {
				return err
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single type/format) or base path (multiple)")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "visualization type(s): circuit (default), dag (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.styleFile, "style-file", "", "TOML file with style overrides")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "raster scale factor for PNG output")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include column numbers in dag labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// parseVizTypes parses the --type flag into a slice of visualization types.
// If empty, defaults to ["circuit"].
func parseVizTypes(s string) []string {
	if s == "" {
		return []string{vizCircuit}
	}
	return strings.Split(s, ",")
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true, "json": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'png', 'pdf', or 'json')", f)
		}
	}
	return nil
}

// validateVizTypes checks that all requested types are valid.
func validateVizTypes(types []string) error {
	for _, t := range types {
		if t != vizCircuit && t != vizDag {
			return fmt.Errorf("invalid type: %s (must be 'circuit' or 'dag')", t)
		}
	}
	return nil
}

// loadCircuit reads a circuit file, picking the parser by extension:
// .qasm for OpenQASM, anything else for the JSON document format.
func loadCircuit(path string) (*circuit.Circuit, error) {
	if strings.EqualFold(filepath.Ext(path), ".qasm") {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidQASM, err, "read %s", path)
		}
		return qasm.Parse(string(src))
	}
	return qio.ImportJSON(path)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the circuit from input, applies style overrides, and
// renders it to the requested type/format combinations.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	c, err := loadCircuit(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded circuit: %d qubits, %d gates", c.NumQubits(), c.Len())

	overrides := styles.Overrides{}
	if opts.styleFile != "" {
		overrides, err = loadStyleFile(opts.styleFile)
		if err != nil {
			return err
		}
		logger.Debugf("Loaded style overrides from %s", opts.styleFile)
	}
	st := overrides.Apply(styles.Default())

	artifacts := newCache(opts.noCache)
	defer artifacts.Close()

	r := &renderer{circuit: c, style: st, opts: opts, cache: artifacts}

	if len(opts.vizTypes) == 1 && len(opts.formats) == 1 {
		path := opts.output
		if path == "" {
			path = basePath("", input) + "." + opts.formats[0]
		}
		return r.renderAndWrite(ctx, opts.vizTypes[0], opts.formats[0], path)
	}

	base := basePath(opts.output, input)
	for _, vizType := range opts.vizTypes {
		for _, format := range opts.formats {
			var path string
			if len(opts.vizTypes) == 1 {
				path = fmt.Sprintf("%s.%s", base, format)
			} else {
				path = fmt.Sprintf("%s_%s.%s", base, vizType, format)
			}
			if err := r.renderAndWrite(ctx, vizType, format, path); err != nil {
				return fmt.Errorf("%s/%s: %w", vizType, format, err)
			}
		}
	}
	return nil
}

// renderer carries the loaded circuit and resolved style through the
// type/format matrix.
type renderer struct {
	circuit *circuit.Circuit
	style   styles.Style
	opts    *renderOpts
	cache   cache.Cache
}

func (r *renderer) renderAndWrite(ctx context.Context, vizType, format, path string) error {
	logger := loggerFromContext(ctx)
	track := newProgress(logger)

	sp := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s/%s", vizType, format))
	sp.Start()
	data, cached, err := r.render(ctx, vizType, format)
	sp.Stop()
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s/%s: %d bytes (cached=%t)", vizType, format, len(data), cached)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	track.done(fmt.Sprintf("Generated %s", path))
	printFile(path)
	return nil
}

// render produces the artifact bytes, consulting the cache first. The
// cache key covers the circuit content, visualization type, format, and
// style, so any change re-renders.
func (r *renderer) render(ctx context.Context, vizType, format string) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	key := cache.ArtifactKey(circuitHash(r.circuit), vizType+"/"+format, styleHash(r.style))
	if data, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		return data, true, nil
	} else if err != nil {
		logger.Warn("cache read failed", "err", err)
	}

	var data []byte
	var err error
	switch vizType {
	case vizDag:
		dot := dagviz.ToDOT(r.circuit, dagviz.Options{Detailed: r.opts.detailed})
		switch format {
		case "svg":
			data, err = dagviz.RenderSVG(dot)
		case "png":
			data, err = dagviz.RenderPNG(dot, r.opts.pngScale)
		case "pdf":
			data, err = dagviz.RenderPDF(dot)
		case "json":
			data = []byte(dot) // no geometry export for the dag view; emit DOT
		}
	default:
		switch format {
		case "svg":
			data, err = sink.RenderSVG(r.circuit, r.style)
		case "png":
			data, err = sink.RenderPNG(r.circuit, r.style, r.opts.pngScale)
		case "pdf":
			data, err = sink.RenderPDF(r.circuit, r.style)
		case "json":
			data, err = sink.RenderJSON(r.circuit, r.style)
		}
	}
	if err != nil {
		return nil, false, err
	}

	if err := r.cache.Set(ctx, key, data, artifactTTL); err != nil {
		logger.Warn("cache write failed", "err", err)
	}
	return data, false, nil
}

// circuitHash fingerprints the circuit via its QASM text.
func circuitHash(c *circuit.Circuit) string {
	return cache.Hash([]byte(qasm.Write(c)))
}

// styleHash fingerprints the resolved style.
func styleHash(st styles.Style) string {
	return cache.Hash([]byte(fmt.Sprintf("%+v", st)))
}
