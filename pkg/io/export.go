package io

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/errors"
)

type document struct {
	NumQubits int          `json:"num_qubits"`
	Gates     []gateRecord `json:"gates"`
}

type gateRecord struct {
	Type    string   `json:"type"`
	Target  int      `json:"target"`
	Control *int     `json:"control,omitempty"`
	Angle   *float64 `json:"angle,omitempty"`
}

// WriteJSON encodes a circuit as JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip
// processing.
func WriteJSON(c *circuit.Circuit, w io.Writer) error {
	out := document{
		NumQubits: c.NumQubits(),
		Gates:     make([]gateRecord, 0, c.Len()),
	}

	for _, g := range c.Gates() {
		out.Gates = append(out.Gates, encodeGate(g))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode")
	}
	return nil
}

func encodeGate(g circuit.Gate) gateRecord {
	switch g.Kind() {
	case circuit.KindControlTarget:
		targets := g.Targets()
		control := targets[0]
		return gateRecord{Type: "cx", Control: &control, Target: targets[1]}
	case circuit.KindRotationBox:
		rg := g.(circuit.RotationGate)
		angle := rg.Angle()
		return gateRecord{
			Type:   "r" + strings.ToLower(rg.Axis().String()),
			Target: rg.Targets()[0],
			Angle:  &angle,
		}
	default:
		return gateRecord{Type: strings.ToLower(g.Label()), Target: g.Targets()[0]}
	}
}

// ExportJSON writes a circuit to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(c *circuit.Circuit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(c, f)
}
