package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Override replaces extracted metadata for a single file. Empty fields
// keep the extracted value.
type Override struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

type overridesFile struct {
	Overrides map[string]Override `toml:"overrides"`
}

// loadOverrides reads the sidecar overrides file. A missing file means no
// overrides; an unparseable one is fatal.
func loadOverrides(path string) (map[string]Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var f overridesFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return f.Overrides, nil
}
