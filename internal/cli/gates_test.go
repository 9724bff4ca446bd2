package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/qdrawlabs/qdraw/pkg/qasm"
)

func TestGateCatalogExamplesParse(t *testing.T) {
	// Every example statement in the catalog must be accepted by the
	// QASM parser, so the docs never drift from the implementation.
	for _, g := range gateCatalog {
		t.Run(g.QASM, func(t *testing.T) {
			if _, err := qasm.Parse("qreg q[2];\n" + g.Example); err != nil {
				t.Errorf("example %q does not parse: %v", g.Example, err)
			}
		})
	}
}

func TestGateListModelNavigation(t *testing.T) {
	m := NewGateListModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(GateListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(GateListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.Cursor)
	}

	// Cursor clamps at the top.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(GateListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 (clamped)", m.Cursor)
	}
}

func TestGateListModelQuit(t *testing.T) {
	m := NewGateListModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestGateListModelView(t *testing.T) {
	view := NewGateListModel().View()

	for _, want := range []string{"Gate Vocabulary", "Hadamard", "CNOT"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	// The selected gate's example is shown.
	if !strings.Contains(view, gateCatalog[0].Example) {
		t.Error("view missing selected gate example")
	}
}
