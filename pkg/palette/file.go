package palette

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// paletteFile is the on-disk TOML layout:
//
//	[palettes]
//	dusk = ["#0B1D51", "3A1C71", "#D7456F"]
type paletteFile struct {
	Palettes map[string][]string `toml:"palettes"`
}

// LoadFile reads a palette table from a TOML file. Colors are normalized with
// [ParseColor]; empty groups are rejected.
func LoadFile(path string) (Groups, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML palette table.
func Parse(data []byte) (Groups, error) {
	var f paletteFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse palette file: %w", err)
	}
	if len(f.Palettes) == 0 {
		return nil, fmt.Errorf("palette file defines no [palettes]")
	}

	groups := make(Groups, len(f.Palettes))
	for name, raw := range f.Palettes {
		if len(raw) == 0 {
			return nil, fmt.Errorf("palette %q is empty", name)
		}
		cs, err := ParseColors(raw)
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", name, err)
		}
		groups[name] = cs
	}
	return groups, nil
}
