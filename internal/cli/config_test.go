package cli

import (
	"testing"

	"github.com/qdrawlabs/qdraw/pkg/errors"
	"github.com/qdrawlabs/qdraw/pkg/render/styles"
)

func TestLoadStyleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "style.toml", `
qubit_spacing = 70
gate_fill = "#eeeeff"
font_family = "monospace"
`)

	o, err := loadStyleFile(path)
	if err != nil {
		t.Fatalf("loadStyleFile() error = %v", err)
	}

	st := o.Apply(styles.Default())
	if st.QubitSpacing != 70 {
		t.Errorf("QubitSpacing = %v, want 70", st.QubitSpacing)
	}
	if st.GateFill != "#eeeeff" {
		t.Errorf("GateFill = %q, want #eeeeff", st.GateFill)
	}
	if st.FontFamily != "monospace" {
		t.Errorf("FontFamily = %q, want monospace", st.FontFamily)
	}
	// Untouched knobs keep defaults.
	if st.GateSpacing != styles.Default().GateSpacing {
		t.Errorf("GateSpacing = %v, want default", st.GateSpacing)
	}
}

func TestLoadStyleFileUnknownKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "style.toml", "gate_colour = \"red\"\n")

	_, err := loadStyleFile(path)
	if err == nil {
		t.Fatal("loadStyleFile() accepted unknown key")
	}
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("error code = %v, want INVALID_STYLE", errors.GetCode(err))
	}
}

func TestLoadStyleFileMissing(t *testing.T) {
	_, err := loadStyleFile(t.TempDir() + "/nope.toml")
	if err == nil {
		t.Fatal("loadStyleFile() succeeded for missing file")
	}
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("error code = %v, want INVALID_STYLE", errors.GetCode(err))
	}
}

func TestLoadStyleFileMalformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "style.toml", "qubit_spacing = [broken\n")
	if _, err := loadStyleFile(path); err == nil {
		t.Fatal("loadStyleFile() accepted malformed TOML")
	}
}
