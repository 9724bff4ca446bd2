package cli

import (
	"strings"
	"testing"

	"github.com/qdrawlabs/qdraw/pkg/circuit"
)

func previewCircuit(t *testing.T, numQubits int, gates ...circuit.Gate) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(numQubits)
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range gates {
		if err := c.Append(g); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func TestBuildPreviewBoxGates(t *testing.T) {
	h, _ := circuit.Hadamard(0)
	z, _ := circuit.PauliZ(1)
	lines := buildPreview(previewCircuit(t, 2, h, z))

	// Two wire rows plus one connector row.
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "q0: ") || !strings.Contains(lines[0], "[H]") {
		t.Errorf("qubit 0 line = %q, want [H] on the q0 wire", lines[0])
	}
	if !strings.HasPrefix(lines[2], "q1: ") || !strings.Contains(lines[2], "[Z]") {
		t.Errorf("qubit 1 line = %q, want [Z] on the q1 wire", lines[2])
	}
	// Gates on different qubits still occupy distinct columns.
	if strings.Index(lines[0], "[H]") >= strings.Index(lines[2], "[Z]") {
		t.Error("[H] should be in an earlier column than [Z]")
	}
}

func TestBuildPreviewCNOT(t *testing.T) {
	cx, _ := circuit.CNOT(0, 2)
	lines := buildPreview(previewCircuit(t, 3, cx))

	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	if !strings.Contains(lines[0], glyphControl) {
		t.Errorf("control wire = %q, want %s", lines[0], glyphControl)
	}
	if !strings.Contains(lines[4], glyphTarget) {
		t.Errorf("target wire = %q, want %s", lines[4], glyphTarget)
	}
	// The connector passes through the rows between control and target.
	for _, i := range []int{1, 2, 3} {
		if !strings.Contains(lines[i], string(glyphSpan)) {
			t.Errorf("line %d = %q, want vertical connector", i, lines[i])
		}
	}
}

func TestBuildPreviewRotationLabel(t *testing.T) {
	ry, _ := circuit.Rotation(circuit.AxisY, 0, 0.7853981633974483)
	lines := buildPreview(previewCircuit(t, 1, ry))

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "[RY(45.0°)]") {
		t.Errorf("line = %q, want rotation label in degrees", lines[0])
	}
}

func TestBuildPreviewEmptyCircuit(t *testing.T) {
	lines := buildPreview(previewCircuit(t, 2))

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, i := range []int{0, 2} {
		if !strings.Contains(lines[i], string(glyphWire)) {
			t.Errorf("line %d = %q, want bare wire", i, lines[i])
		}
	}
}

func TestCenterOn(t *testing.T) {
	if got := centerOn("●", 3, '─'); got != "─●─" {
		t.Errorf("centerOn() = %q, want ─●─", got)
	}
	if got := centerOn("[H]", 3, '─'); got != "[H]" {
		t.Errorf("centerOn() = %q, want [H]", got)
	}
	if got := centerOn("x", 4, ' '); got != " x  " {
		t.Errorf("centerOn() = %q", got)
	}
}
