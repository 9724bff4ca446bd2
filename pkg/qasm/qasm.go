// Package qasm reads and writes circuits in the OpenQASM 2.0 text
// format, restricted to the gate vocabulary the diagram engine knows:
// h, x, y, z, rx, ry, rz and cx on a single quantum register named q.
package qasm

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/qdrawlabs/qdraw/pkg/circuit"
	"github.com/qdrawlabs/qdraw/pkg/errors"
)

// paramPattern matches a rotation angle: plain numbers or pi expressions
// like "pi", "pi/2", "3*pi/4", "-pi".
const paramPattern = `-?(?:\d*\.?\d*\*?pi(?:/\d+\.?\d*)?|\d+\.?\d*(?:[eE][+\-]?\d+)?)`

// Pre-compiled regexps for QASM parsing.
var (
	qregRegex       = regexp.MustCompile(`^qreg\s+q\[(\d+)\];?$`)
	singleGateRegex = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	rotationRegex   = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex   = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	piExprRegex     = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)
)

// Parse reads OpenQASM 2.0 text and builds the circuit it describes.
// The qreg declaration fixes the qubit count; gate statements append in
// source order, one per column. Unknown statements are rejected rather
// than skipped so a mistyped gate never silently vanishes from the
// diagram.
func Parse(src string) (*circuit.Circuit, error) {
	var c *circuit.Circuit

	for lineNum, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}

		if matches := qregRegex.FindStringSubmatch(line); matches != nil {
			if c != nil {
				return nil, errors.New(errors.ErrCodeInvalidQASM, "line %d: duplicate qreg declaration", lineNum+1)
			}
			n, _ := strconv.Atoi(matches[1])
			var err error
			c, err = circuit.New(n)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidQASM, err, "line %d: bad qreg size", lineNum+1)
			}
			continue
		}
		if c == nil {
			return nil, errors.New(errors.ErrCodeInvalidQASM, "line %d: gate statement before qreg declaration", lineNum+1)
		}

		g, err := parseGate(line)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidQASM, err, "line %d", lineNum+1)
		}
		if err := c.Append(g); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidQASM, err, "line %d", lineNum+1)
		}
	}

	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidQASM, "no qreg declaration found")
	}
	return c, nil
}

func parseGate(line string) (circuit.Gate, error) {
	if matches := rotationRegex.FindStringSubmatch(line); matches != nil {
		name := strings.ToLower(matches[1])
		angle, ok := parseAngle(matches[2])
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidQASM, "bad angle expression %q", matches[2])
		}
		target, _ := strconv.Atoi(matches[3])

		var axis circuit.Axis
		switch name {
		case "rx":
			axis = circuit.AxisX
		case "ry":
			axis = circuit.AxisY
		case "rz":
			axis = circuit.AxisZ
		default:
			return nil, errors.New(errors.ErrCodeInvalidQASM, "unsupported gate %q", name)
		}
		return circuit.Rotation(axis, target, angle)
	}

	if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
		name := strings.ToLower(matches[1])
		if name != "cx" {
			return nil, errors.New(errors.ErrCodeInvalidQASM, "unsupported gate %q", name)
		}
		control, _ := strconv.Atoi(matches[2])
		target, _ := strconv.Atoi(matches[3])
		return circuit.CNOT(control, target)
	}

	if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
		name := strings.ToLower(matches[1])
		target, _ := strconv.Atoi(matches[2])
		switch name {
		case "h":
			return circuit.Hadamard(target)
		case "x":
			return circuit.PauliX(target)
		case "y":
			return circuit.PauliY(target)
		case "z":
			return circuit.PauliZ(target)
		}
		return nil, errors.New(errors.ErrCodeInvalidQASM, "unsupported gate %q", name)
	}

	return nil, errors.New(errors.ErrCodeInvalidQASM, "unrecognized statement %q", line)
}

// parseAngle parses a rotation angle: plain numbers or pi expressions
// like "pi", "pi/2", "3*pi/4", "-pi/2".
func parseAngle(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}

	matches := piExprRegex.FindStringSubmatch(strings.ToLower(s))
	if matches == nil {
		return 0, false
	}

	coeff := 1.0
	if matches[2] != "" {
		var err error
		coeff, err = strconv.ParseFloat(matches[2], 64)
		if err != nil {
			return 0, false
		}
	}

	result := coeff * math.Pi
	if matches[3] != "" {
		denom, err := strconv.ParseFloat(matches[3], 64)
		if err != nil || denom == 0 {
			return 0, false
		}
		result /= denom
	}
	if matches[1] == "-" {
		result = -result
	}
	return result, true
}

// Write generates OpenQASM 2.0 text for the circuit. Rotation angles
// are written as plain radian numbers, which Parse accepts, so a
// write/parse cycle preserves the circuit.
func Write(c *circuit.Circuit) string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", c.NumQubits())

	for _, g := range c.Gates() {
		switch g.Kind() {
		case circuit.KindControlTarget:
			targets := g.Targets()
			fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", targets[0], targets[1])
		case circuit.KindRotationBox:
			rg := g.(circuit.RotationGate)
			fmt.Fprintf(&sb, "r%s(%s) q[%d];\n",
				strings.ToLower(rg.Axis().String()), formatAngle(rg.Angle()), rg.Targets()[0])
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(g.Label()), g.Targets()[0])
		}
	}
	return sb.String()
}

// formatAngle prefers exact pi fractions for readability and falls back
// to plain radians.
func formatAngle(angle float64) string {
	for _, frac := range []struct {
		val float64
		str string
	}{
		{math.Pi, "pi"},
		{-math.Pi, "-pi"},
		{math.Pi / 2, "pi/2"},
		{-math.Pi / 2, "-pi/2"},
		{math.Pi / 4, "pi/4"},
		{-math.Pi / 4, "-pi/4"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{2 * math.Pi, "2*pi"},
	} {
		if angle == frac.val {
			return frac.str
		}
	}
	return strconv.FormatFloat(angle, 'g', -1, 64)
}
