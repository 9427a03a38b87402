// Package config reads the optional presets file that seeds variable
// values and the default output path.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultName is the presets file looked up in the working directory
// when no explicit path is given.
const DefaultName = ".relicense.yaml"

// File is the on-disk shape of a presets file.
type File struct {
	// Variables maps template variable names to preset values,
	// applied without prompting.
	Variables map[string]string `yaml:"variables"`
	// Output overrides the default destination path.
	Output string `yaml:"output"`
}

// Load reads path and parses it as YAML. A missing file is only an
// error when explicit is set; the default location is allowed to be
// absent.
func Load(path string, explicit bool) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return File{}, nil
		}
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f, nil
}
