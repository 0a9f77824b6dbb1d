package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scriptFile is the on-disk shape of a `ptyshot run --script` file: a
// terminal size, an inter-input delay, and the ordered list of inputs
// to feed, each with an optional human-readable label used in the
// manifest and the printed result instead of the raw input name
// (capture file names are numbered by step only).
type scriptFile struct {
	Size    string       `yaml:"size"`
	DelayMs int          `yaml:"delay_ms"`
	Inputs  []scriptStep `yaml:"inputs"`
}

type scriptStep struct {
	Input string `yaml:"input"`
	Label string `yaml:"label,omitempty"`
}

func loadScript(path string) (*scriptFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ptyshot: failed to read script %q: %w", path, err)
	}
	var s scriptFile
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("ptyshot: failed to parse script %q: %w", path, err)
	}
	if len(s.Inputs) == 0 {
		return nil, fmt.Errorf("ptyshot: script %q declares no inputs", path)
	}
	return &s, nil
}
