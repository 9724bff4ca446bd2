package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qdrawlabs/qdraw/pkg/circuit"
)

// Terminal glyphs for the preview grid.
const (
	glyphWire    = '─'
	glyphSpan    = '│'
	glyphControl = "●"
	glyphTarget  = "⊕"
)

// newPreviewCmd creates the preview command, which draws the circuit
// with Unicode glyphs directly in the terminal instead of producing an
// image file.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [file]",
		Short: "Draw a circuit in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCircuit(args[0])
			if err != nil {
				return err
			}

			fmt.Println()
			for _, line := range buildPreview(c) {
				fmt.Println("  " + stylePreviewLine(line))
			}
			fmt.Println()
			printDetail("%d qubits, %d gates", c.NumQubits(), c.Len())
			return nil
		},
	}
}

// buildPreview lays the circuit out as text: one wire row per qubit
// with connector rows between them, one gate per column. The returned
// lines carry no styling so they can be asserted against in tests.
func buildPreview(c *circuit.Circuit) []string {
	gates := c.Gates()
	numQubits := c.NumQubits()

	widths := make([]int, len(gates))
	for j, g := range gates {
		widths[j] = cellWidth(g)
	}

	// Rows alternate wire, connector, wire, ... so a CNOT spanning
	// non-adjacent qubits can draw its vertical line through the rows
	// in between.
	rows := make([][]string, 2*numQubits-1)
	for i := range rows {
		rows[i] = make([]string, len(gates))
		for j := range gates {
			if i%2 == 0 {
				rows[i][j] = strings.Repeat(string(glyphWire), widths[j])
			} else {
				rows[i][j] = strings.Repeat(" ", widths[j])
			}
		}
	}

	for j, g := range gates {
		switch g.Kind() {
		case circuit.KindControlTarget:
			targets := g.Targets()
			control, target := targets[0], targets[1]
			rows[2*control][j] = centerOn(glyphControl, widths[j], glyphWire)
			rows[2*target][j] = centerOn(glyphTarget, widths[j], glyphWire)
			lo, hi := control, target
			if lo > hi {
				lo, hi = hi, lo
			}
			for i := 2*lo + 1; i < 2*hi; i++ {
				fill := " "
				if i%2 == 0 {
					// A wire row crossed by the connector.
					fill = string(glyphWire)
				}
				rows[i][j] = centerOn(string(glyphSpan), widths[j], []rune(fill)[0])
			}
		default:
			rows[2*g.Targets()[0]][j] = centerOn("["+g.Label()+"]", widths[j], glyphWire)
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		if i%2 == 0 {
			lines[i] = fmt.Sprintf("q%d: %s%s", i/2, strings.Join(row, string(glyphWire)), string(glyphWire))
		} else {
			pad := strings.Repeat(" ", len(fmt.Sprintf("q%d: ", i/2)))
			lines[i] = pad + strings.Join(row, " ")
		}
	}
	return lines
}

// cellWidth returns the column width for a gate: wide enough for its
// label plus brackets, with a floor of 3 for the glyph-only kinds.
func cellWidth(g circuit.Gate) int {
	if g.Kind() == circuit.KindControlTarget {
		return 3
	}
	return len([]rune(g.Label())) + 2
}

// centerOn centers s within width, padding both sides with fill.
func centerOn(s string, width int, fill rune) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), right)
}

// stylePreviewLine colors gate glyphs and dims the wires.
func stylePreviewLine(line string) string {
	var b strings.Builder
	for _, r := range line {
		switch r {
		case glyphWire, glyphSpan:
			b.WriteString(styleWire.Render(string(r)))
		case '●', '⊕', '[', ']':
			b.WriteString(styleGate.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
