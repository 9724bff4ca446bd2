package qasm

import (
	"math"
	"strings"
	"testing"

	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/errors"
)

const bellQASM = `OPENQASM 2.0;
include "qelib1.inc";

qreg q[2];

h q[0];
cx q[0], q[1];
`

func TestParse(t *testing.T) {
	c, err := Parse(bellQASM)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.NumQubits() != 2 {
		t.Errorf("NumQubits() = %d, want 2", c.NumQubits())
	}

	gates := c.Gates()
	if len(gates) != 2 {
		t.Fatalf("len(Gates()) = %d, want 2", len(gates))
	}
	if gates[0].Label() != "H" || gates[0].Targets()[0] != 0 {
		t.Errorf("gate 0 = %s %v, want H on qubit 0", gates[0].Label(), gates[0].Targets())
	}
	if gates[1].Kind() != circuit.KindControlTarget {
		t.Errorf("gate 1 kind = %v, want control/target", gates[1].Kind())
	}
	if targets := gates[1].Targets(); targets[0] != 0 || targets[1] != 1 {
		t.Errorf("gate 1 targets = %v, want [0 1]", targets)
	}
}

func TestParseRotations(t *testing.T) {
	tests := []struct {
		stmt      string
		wantAxis  circuit.Axis
		wantAngle float64
	}{
		{"rx(pi) q[0];", circuit.AxisX, math.Pi},
		{"ry(pi/2) q[0];", circuit.AxisY, math.Pi / 2},
		{"rz(3*pi/4) q[0];", circuit.AxisZ, 3 * math.Pi / 4},
		{"rz(-pi/2) q[0];", circuit.AxisZ, -math.Pi / 2},
		{"rx(1.5707) q[0];", circuit.AxisX, 1.5707},
		{"ry(2pi) q[0];", circuit.AxisY, 2 * math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.stmt, func(t *testing.T) {
			c, err := Parse("qreg q[1];\n" + tt.stmt)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			rg, ok := c.Gates()[0].(circuit.RotationGate)
			if !ok {
				t.Fatalf("gate is %T, want circuit.RotationGate", c.Gates()[0])
			}
			if rg.Axis() != tt.wantAxis {
				t.Errorf("Axis() = %v, want %v", rg.Axis(), tt.wantAxis)
			}
			if math.Abs(rg.Angle()-tt.wantAngle) > 1e-9 {
				t.Errorf("Angle() = %v, want %v", rg.Angle(), tt.wantAngle)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"no qreg", "h q[0];"},
		{"duplicate qreg", "qreg q[2];\nqreg q[2];"},
		{"zero qubits", "qreg q[0];"},
		{"unknown gate", "qreg q[2];\nccx q[0], q[1];"},
		{"unknown single gate", "qreg q[1];\nt q[0];"},
		{"garbage statement", "qreg q[1];\nhello world"},
		{"target out of range", "qreg q[2];\nh q[5];"},
		{"control equals target", "qreg q[2];\ncx q[1], q[1];"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidQASM) {
				t.Errorf("error code = %v, want INVALID_QASM", errors.GetCode(err))
			}
		})
	}
}

func TestParseIgnoresCommentsAndHeaders(t *testing.T) {
	src := `// a bell pair
OPENQASM 2.0;
include "qelib1.inc";
qreg q[2];
// entangle
h q[0];
cx q[0], q[1];
`
	c, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestWrite(t *testing.T) {
	c, err := circuit.New(3)
	if err != nil {
		t.Fatal(err)
	}
	h, _ := circuit.Hadamard(0)
	ry, _ := circuit.Rotation(circuit.AxisY, 1, math.Pi/4)
	cx, _ := circuit.CNOT(0, 2)
	for _, g := range []circuit.Gate{h, ry, cx} {
		if err := c.Append(g); err != nil {
			t.Fatal(err)
		}
	}

	out := Write(c)
	contains := []string{
		"OPENQASM 2.0;",
		`include "qelib1.inc";`,
		"qreg q[3];",
		"h q[0];",
		"ry(pi/4) q[1];",
		"cx q[0], q[2];",
	}
	for _, want := range contains {
		if !strings.Contains(out, want) {
			t.Errorf("Write() missing %q\nGot: %s", want, out)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	c, err := circuit.New(2)
	if err != nil {
		t.Fatal(err)
	}
	h, _ := circuit.Hadamard(0)
	z, _ := circuit.PauliZ(1)
	rz, _ := circuit.Rotation(circuit.AxisZ, 0, 0.7)
	cx, _ := circuit.CNOT(1, 0)
	for _, g := range []circuit.Gate{h, z, rz, cx} {
		if err := c.Append(g); err != nil {
			t.Fatal(err)
		}
	}

	parsed, err := Parse(Write(c))
	if err != nil {
		t.Fatalf("Parse(Write()) error = %v", err)
	}
	if parsed.NumQubits() != c.NumQubits() {
		t.Errorf("NumQubits() = %d, want %d", parsed.NumQubits(), c.NumQubits())
	}

	want := c.Gates()
	got := parsed.Gates()
	if len(got) != len(want) {
		t.Fatalf("len(Gates()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Kind() != want[i].Kind() {
			t.Errorf("gate %d kind = %v, want %v", i, got[i].Kind(), want[i].Kind())
		}
		if got[i].Label() != want[i].Label() {
			t.Errorf("gate %d label = %q, want %q", i, got[i].Label(), want[i].Label())
		}
	}
}

func TestParseAngle(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"pi", math.Pi, true},
		{"-pi", -math.Pi, true},
		{"pi/2", math.Pi / 2, true},
		{"3*pi/4", 3 * math.Pi / 4, true},
		{"0.5", 0.5, true},
		{"1e-2", 0.01, true},
		{"", 0, false},
		{"tau", 0, false},
		{"pi/0", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseAngle(tt.in)
		if ok != tt.ok {
			t.Errorf("parseAngle(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("parseAngle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
