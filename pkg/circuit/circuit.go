// Package circuit defines the quantum circuit model consumed by the
// rendering engine: a fixed number of qubit lines and an ordered,
// append-only sequence of gates.
//
// The model is purely data. Insertion order is load-bearing: the gate at
// sequence position j occupies diagram column j+1. Qubits are not
// materialized; a qubit is just a zero-based index in [0, NumQubits).
//
// All validation happens up front. Gate constructors reject malformed
// gates (negative indices, equal control/target, unknown rotation axis)
// and Append rejects gates that reference qubits outside the circuit, so
// a Circuit that was built without errors always renders cleanly.
package circuit

import (
	"github.com/qdrawlabs/qdraw/pkg/errors"
)

// Circuit is an ordered container of gates over a fixed set of qubits.
// The zero value is not usable; construct with New.
type Circuit struct {
	numQubits int
	gates     []Gate
}

// New creates a circuit with the given number of qubit lines.
// numQubits must be positive.
func New(numQubits int) (*Circuit, error) {
	if numQubits < 1 {
		return nil, errors.New(errors.ErrCodeInvalidCircuit, "circuit needs at least one qubit, got %d", numQubits)
	}
	return &Circuit{numQubits: numQubits}, nil
}

// NumQubits returns the number of qubit lines.
func (c *Circuit) NumQubits() int { return c.numQubits }

// Append adds a gate to the end of the sequence. It rejects gates whose
// target indices fall outside [0, NumQubits); gate-content validation
// belongs to the gate constructors and is not repeated here.
func (c *Circuit) Append(g Gate) error {
	for _, q := range g.Targets() {
		if q >= c.numQubits {
			return errors.New(errors.ErrCodeQubitOutOfRange,
				"gate %s targets qubit %d but circuit has %d qubits", g.Label(), q, c.numQubits)
		}
	}
	c.gates = append(c.gates, g)
	return nil
}

// Gates returns the gate sequence in insertion order. The returned slice
// is a copy; mutating it does not affect the circuit.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// Len returns the number of gates in the circuit.
func (c *Circuit) Len() int { return len(c.gates) }
