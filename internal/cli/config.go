package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/qdrawlabs/qdraw/pkg/errors"
	"github.com/qdrawlabs/qdraw/pkg/render/styles"
)

// loadStyleFile reads a TOML style file into a partial style. Any knob
// absent from the file keeps its default. Unknown keys are rejected so
// a typo never silently falls back to the default look.
//
// Example file:
//
//	qubit_spacing = 60
//	gate_fill = "#ffeecc"
//	font_family = "monospace"
func loadStyleFile(path string) (styles.Overrides, error) {
	var o styles.Overrides
	meta, err := toml.DecodeFile(path, &o)
	if err != nil {
		return styles.Overrides{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "load style file %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return styles.Overrides{}, errors.New(errors.ErrCodeInvalidStyle,
			"style file %s: unknown key %q", path, undecoded[0].String())
	}
	return o, nil
}
