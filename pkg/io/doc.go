// Package io provides JSON import and export for circuits.
//
// # JSON Format
//
// The format is a single object with the qubit count and the gate list
// in column order:
//
//	{
//	  "num_qubits": 2,
//	  "gates": [
//	    {"type": "h", "target": 0},
//	    {"type": "ry", "target": 1, "angle": 0.7853981633974483},
//	    {"type": "cx", "control": 0, "target": 1}
//	  ]
//	}
//
// Gate types are the lowercase QASM names: h, x, y, z, rx, ry, rz, cx.
// Rotations carry an "angle" field in radians; cx carries both "control"
// and "target". Unknown types and out-of-range qubit indices are
// rejected at import, so a decoded circuit always satisfies the same
// invariants as one built through the circuit package constructors.
//
// Use [ImportJSON] / [ExportJSON] for file paths and [ReadJSON] /
// [WriteJSON] for streams. Exported circuits re-import identically.
package io
