package logging

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptions reads logger options from a YAML file. Recognized keys are
// file, level, scheme, and hide_level; absent keys keep their zero value.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read logging config: %w", err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse logging config: %w", err)
	}
	return opts, nil
}
