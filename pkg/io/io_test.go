package io

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/errors"
)

func bellCircuit(t *testing.T) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(2)
	if err != nil {
		t.Fatal(err)
	}
	h, _ := circuit.Hadamard(0)
	ry, _ := circuit.Rotation(circuit.AxisY, 1, math.Pi/4)
	cx, _ := circuit.CNOT(0, 1)
	for _, g := range []circuit.Gate{h, ry, cx} {
		if err := c.Append(g); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(bellCircuit(t), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	out := buf.String()

	contains := []string{
		`"num_qubits": 2`,
		`"type": "h"`,
		`"type": "ry"`,
		`"angle": 0.7853981633974483`,
		`"type": "cx"`,
		`"control": 0`,
	}
	for _, want := range contains {
		if !strings.Contains(out, want) {
			t.Errorf("WriteJSON() missing %q\nGot: %s", want, out)
		}
	}
}

func TestReadJSON(t *testing.T) {
	src := `{
  "num_qubits": 3,
  "gates": [
    {"type": "z", "target": 2},
    {"type": "rx", "target": 0, "angle": 3.141592653589793},
    {"type": "cx", "control": 2, "target": 0}
  ]
}`
	c, err := ReadJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if c.NumQubits() != 3 {
		t.Errorf("NumQubits() = %d, want 3", c.NumQubits())
	}

	gates := c.Gates()
	if len(gates) != 3 {
		t.Fatalf("len(Gates()) = %d, want 3", len(gates))
	}
	if gates[0].Label() != "Z" {
		t.Errorf("gate 0 label = %q, want Z", gates[0].Label())
	}
	rg, ok := gates[1].(circuit.RotationGate)
	if !ok || rg.Axis() != circuit.AxisX {
		t.Errorf("gate 1 = %v, want X rotation", gates[1])
	}
	if targets := gates[2].Targets(); targets[0] != 2 || targets[1] != 0 {
		t.Errorf("gate 2 targets = %v, want [2 0]", targets)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed", `{"num_qubits": 2, "gates": [`},
		{"zero qubits", `{"num_qubits": 0, "gates": []}`},
		{"unknown type", `{"num_qubits": 1, "gates": [{"type": "t", "target": 0}]}`},
		{"rotation without angle", `{"num_qubits": 1, "gates": [{"type": "rz", "target": 0}]}`},
		{"cx without control", `{"num_qubits": 2, "gates": [{"type": "cx", "target": 1}]}`},
		{"target out of range", `{"num_qubits": 1, "gates": [{"type": "h", "target": 4}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.src)); err == nil {
				t.Error("ReadJSON() succeeded, want error")
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	c := bellCircuit(t)

	var buf bytes.Buffer
	if err := WriteJSON(c, &buf); err != nil {
		t.Fatal(err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if got.NumQubits() != c.NumQubits() {
		t.Errorf("NumQubits() = %d, want %d", got.NumQubits(), c.NumQubits())
	}
	want := c.Gates()
	gates := got.Gates()
	if len(gates) != len(want) {
		t.Fatalf("len(Gates()) = %d, want %d", len(gates), len(want))
	}
	for i := range want {
		if gates[i].Label() != want[i].Label() {
			t.Errorf("gate %d label = %q, want %q", i, gates[i].Label(), want[i].Label())
		}
	}
}

func TestImportExportFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bell.json")
	c := bellCircuit(t)

	if err := ExportJSON(c, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if got.Len() != c.Len() {
		t.Errorf("Len() = %d, want %d", got.Len(), c.Len())
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("ImportJSON() succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}
