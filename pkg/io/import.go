package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/errors"
)

var axisFromType = map[string]circuit.Axis{
	"rx": circuit.AxisX,
	"ry": circuit.AxisY,
	"rz": circuit.AxisZ,
}

// ReadJSON decodes a JSON circuit from r.
//
// ReadJSON returns an error if the JSON is malformed, a gate type is
// unknown, a rotation lacks an angle, or a qubit index is out of range
// for the declared register. Errors carry the gate's position for
// context. The returned circuit is independent of r and can be modified
// safely after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*circuit.Circuit, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}

	c, err := circuit.New(data.NumQubits)
	if err != nil {
		return nil, err
	}
	for i, rec := range data.Gates {
		g, err := decodeGate(rec)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "gate %d", i)
		}
		if err := c.Append(g); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "gate %d", i)
		}
	}
	return c, nil
}

func decodeGate(rec gateRecord) (circuit.Gate, error) {
	switch rec.Type {
	case "h":
		return circuit.Hadamard(rec.Target)
	case "x":
		return circuit.PauliX(rec.Target)
	case "y":
		return circuit.PauliY(rec.Target)
	case "z":
		return circuit.PauliZ(rec.Target)
	case "rx", "ry", "rz":
		if rec.Angle == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "%s gate missing angle", rec.Type)
		}
		return circuit.Rotation(axisFromType[rec.Type], rec.Target, *rec.Angle)
	case "cx":
		if rec.Control == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "cx gate missing control")
		}
		return circuit.CNOT(*rec.Control, rec.Target)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown gate type %q", rec.Type)
}

// ImportJSON reads a JSON file at path and returns the decoded circuit.
// It returns the same validation errors as [ReadJSON] for malformed
// documents, with the file path added for context.
func ImportJSON(path string) (*circuit.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
