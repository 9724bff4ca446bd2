package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// gateInfo describes one entry of the supported gate vocabulary.
type gateInfo struct {
	Name        string
	QASM        string
	Arity       int
	Description string
	Example     string
}

// gateCatalog is the closed set of gates the render engine understands.
var gateCatalog = []gateInfo{
	{"Hadamard", "h", 1, "Creates an equal superposition of |0⟩ and |1⟩", "h q[0];"},
	{"Pauli-X", "x", 1, "Bit flip: swaps |0⟩ and |1⟩", "x q[0];"},
	{"Pauli-Y", "y", 1, "Bit and phase flip around the Y axis", "y q[0];"},
	{"Pauli-Z", "z", 1, "Phase flip: negates the |1⟩ amplitude", "z q[0];"},
	{"X rotation", "rx", 1, "Rotates the qubit around the X axis by an angle", "rx(pi/2) q[0];"},
	{"Y rotation", "ry", 1, "Rotates the qubit around the Y axis by an angle", "ry(pi/4) q[0];"},
	{"Z rotation", "rz", 1, "Rotates the qubit around the Z axis by an angle", "rz(pi) q[0];"},
	{"CNOT", "cx", 2, "Flips the target qubit when the control is |1⟩", "cx q[0], q[1];"},
}

// newGatesCmd creates the gates command, which lists the supported gate
// vocabulary as a table or browses it interactively.
func newGatesCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "gates",
		Short: "List the supported gate vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return runGateBrowser()
			}
			printGateTable()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse gates interactively")
	return cmd
}

func printGateTable() {
	rows := make([][]string, len(gateCatalog))
	for i, g := range gateCatalog {
		rows[i] = []string{g.Name, g.QASM, fmt.Sprintf("%d", g.Arity), g.Description}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Gate", "QASM", "Qubits", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
			}
			if col == 1 {
				return StyleHighlight.Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
		})

	fmt.Println(t)
}

// =============================================================================
// GateListModel - Interactive gate browser
// =============================================================================

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// GateListModel is the bubbletea model for interactive gate browsing.
type GateListModel struct {
	Gates  []gateInfo
	Cursor int
}

// NewGateListModel creates a gate browser over the full catalog.
func NewGateListModel() GateListModel {
	return GateListModel{Gates: gateCatalog}
}

func (m GateListModel) Init() tea.Cmd {
	return nil
}

func (m GateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Gates)-1 {
				m.Cursor++
			}
		}
	}
	return m, nil
}

func (m GateListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Gate Vocabulary"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	for i, g := range m.Gates {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(fmt.Sprintf("%-12s", g.Name)) + listDimStyle.Render(g.QASM))
		b.WriteString("\n")
	}

	selected := m.Gates[m.Cursor]
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(selected.Description))
	b.WriteString("\n")
	b.WriteString(StyleValue.Render("example: ") + StyleHighlight.Render(selected.Example))
	b.WriteString("\n")

	return b.String()
}

// runGateBrowser runs the interactive browser until the user quits.
func runGateBrowser() error {
	_, err := tea.NewProgram(NewGateListModel()).Run()
	return err
}
