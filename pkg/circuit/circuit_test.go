package circuit

import (
	"testing"

	"github.com/qdrawlabs/qdraw/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		numQubits int
		wantErr   bool
	}{
		{"single qubit", 1, false},
		{"several qubits", 5, false},
		{"zero qubits", 0, true},
		{"negative qubits", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.numQubits)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidCircuit) {
					t.Errorf("New(%d) error = %v, want code %v", tt.numQubits, err, errors.ErrCodeInvalidCircuit)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d) error = %v", tt.numQubits, err)
			}
			if c.NumQubits() != tt.numQubits {
				t.Errorf("NumQubits() = %d, want %d", c.NumQubits(), tt.numQubits)
			}
		})
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	c, err := New(3)
	if err != nil {
		t.Fatal(err)
	}

	h, _ := Hadamard(0)
	x, _ := PauliX(1)
	cx, _ := CNOT(0, 2)

	for _, g := range []Gate{h, x, cx} {
		if err := c.Append(g); err != nil {
			t.Fatalf("Append(%s) error = %v", g.Label(), err)
		}
	}

	gates := c.Gates()
	if len(gates) != 3 {
		t.Fatalf("len(Gates()) = %d, want 3", len(gates))
	}
	wantLabels := []string{"H", "X", "CNOT"}
	for i, g := range gates {
		if g.Label() != wantLabels[i] {
			t.Errorf("gates[%d].Label() = %q, want %q", i, g.Label(), wantLabels[i])
		}
	}
}

func TestAppendOutOfRange(t *testing.T) {
	c, err := New(2)
	if err != nil {
		t.Fatal(err)
	}

	h, _ := Hadamard(2) // valid gate, but circuit only has qubits 0 and 1
	if err := c.Append(h); !errors.Is(err, errors.ErrCodeQubitOutOfRange) {
		t.Errorf("Append(H on qubit 2) error = %v, want code %v", err, errors.ErrCodeQubitOutOfRange)
	}

	cx, _ := CNOT(0, 5)
	if err := c.Append(cx); !errors.Is(err, errors.ErrCodeQubitOutOfRange) {
		t.Errorf("Append(CNOT 0→5) error = %v, want code %v", err, errors.ErrCodeQubitOutOfRange)
	}

	// Rejected gates must not be appended.
	if c.Len() != 0 {
		t.Errorf("Len() = %d after rejected appends, want 0", c.Len())
	}
}

func TestGatesReturnsCopy(t *testing.T) {
	c, _ := New(2)
	h, _ := Hadamard(0)
	if err := c.Append(h); err != nil {
		t.Fatal(err)
	}

	gates := c.Gates()
	gates[0] = nil

	if got := c.Gates()[0]; got == nil || got.Label() != "H" {
		t.Error("mutating the slice returned by Gates() changed the circuit")
	}
}
