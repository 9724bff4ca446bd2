package circuit

import (
	"fmt"
	"math"

	"github.com/qdrawlabs/qdraw/pkg/errors"
)

// Kind classifies a gate by the drawing strategy it requires.
// The set is closed: renderers dispatch exhaustively over these three values.
type Kind int

const (
	// KindSingleBox is a labeled rectangle centered on one qubit line
	// (Hadamard and the Pauli gates).
	KindSingleBox Kind = iota
	// KindRotationBox is a labeled rectangle whose label embeds the
	// rotation axis and angle (Rx, Ry, Rz).
	KindRotationBox
	// KindControlTarget is the two-qubit conditional-flip glyph: control
	// disc, connector line, and target circle with a plus sign.
	KindControlTarget
)

// String returns the kind name used in serialized circuits and logs.
func (k Kind) String() string {
	switch k {
	case KindSingleBox:
		return "single-box"
	case KindRotationBox:
		return "rotation-box"
	case KindControlTarget:
		return "control-target"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Axis identifies a rotation axis for the Rx/Ry/Rz gates.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis letter ("X", "Y", or "Z").
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// valid reports whether a is one of the three recognized axes.
func (a Axis) valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// Gate is the capability contract every drawable gate satisfies.
// Kind selects the drawing strategy, Label is the text shown inside or near
// the drawn shape, and Targets lists the qubit indices the gate acts on in
// order (control first for two-qubit gates).
//
// Gates are immutable after construction; constructors perform all
// per-gate validation so that renderers never see a malformed gate.
type Gate interface {
	Kind() Kind
	Label() string
	Targets() []int
}

// boxGate is a single-qubit gate drawn as a labeled rectangle.
type boxGate struct {
	label string
	qubit int
}

func (g boxGate) Kind() Kind     { return KindSingleBox }
func (g boxGate) Label() string  { return g.label }
func (g boxGate) Targets() []int { return []int{g.qubit} }

// newBoxGate validates the qubit index shared by all single-qubit constructors.
func newBoxGate(label string, qubit int) (Gate, error) {
	if qubit < 0 {
		return nil, errors.New(errors.ErrCodeInvalidQubit, "%s gate: qubit index %d is negative", label, qubit)
	}
	return boxGate{label: label, qubit: qubit}, nil
}

// Hadamard creates a Hadamard gate on the given qubit.
func Hadamard(qubit int) (Gate, error) { return newBoxGate("H", qubit) }

// PauliX creates a Pauli-X gate on the given qubit.
func PauliX(qubit int) (Gate, error) { return newBoxGate("X", qubit) }

// PauliY creates a Pauli-Y gate on the given qubit.
func PauliY(qubit int) (Gate, error) { return newBoxGate("Y", qubit) }

// PauliZ creates a Pauli-Z gate on the given qubit.
func PauliZ(qubit int) (Gate, error) { return newBoxGate("Z", qubit) }

// RotationGate is a single-qubit rotation (Rx, Ry, Rz). It retains the
// angle in radians alongside the degree-formatted display label.
type RotationGate struct {
	axis  Axis
	qubit int
	angle float64 // radians
}

func (g RotationGate) Kind() Kind     { return KindRotationBox }
func (g RotationGate) Targets() []int { return []int{g.qubit} }

// Label formats the axis and angle in degrees with one decimal place,
// e.g. "RY(45.0°)" for a π/4 rotation about Y.
func (g RotationGate) Label() string {
	return fmt.Sprintf("R%s(%.1f°)", g.axis, g.angle*180/math.Pi)
}

// Axis returns the rotation axis.
func (g RotationGate) Axis() Axis { return g.axis }

// Angle returns the rotation magnitude in radians.
func (g RotationGate) Angle() float64 { return g.angle }

// Rotation creates a rotation gate about the given axis.
// The angle is in radians; the display label converts it to degrees.
func Rotation(axis Axis, qubit int, angle float64) (Gate, error) {
	if !axis.valid() {
		return nil, errors.New(errors.ErrCodeInvalidAxis, "rotation gate: unknown axis %d (must be X, Y, or Z)", int(axis))
	}
	if qubit < 0 {
		return nil, errors.New(errors.ErrCodeInvalidQubit, "R%s gate: qubit index %d is negative", axis, qubit)
	}
	return RotationGate{axis: axis, qubit: qubit, angle: angle}, nil
}

// cnotGate is the two-qubit conditional-flip gate.
type cnotGate struct {
	control, target int
}

func (g cnotGate) Kind() Kind     { return KindControlTarget }
func (g cnotGate) Label() string  { return "CNOT" }
func (g cnotGate) Targets() []int { return []int{g.control, g.target} }

// CNOT creates a controlled-NOT gate. The control qubit is listed first
// in Targets; control and target must differ and be non-negative.
func CNOT(control, target int) (Gate, error) {
	if control < 0 {
		return nil, errors.New(errors.ErrCodeInvalidQubit, "CNOT gate: control index %d is negative", control)
	}
	if target < 0 {
		return nil, errors.New(errors.ErrCodeInvalidQubit, "CNOT gate: target index %d is negative", target)
	}
	if control == target {
		return nil, errors.New(errors.ErrCodeInvalidGate, "CNOT gate: control and target are both qubit %d", control)
	}
	return cnotGate{control: control, target: target}, nil
}
