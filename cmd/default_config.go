package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// Preset describes a named reference string in defaults.yaml.
type Preset struct {
	Description string         `yaml:"description"`
	Frames      int            `yaml:"frames"`
	Sequence    []trace.PageID `yaml:"sequence"`
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version  string            `yaml:"version"`
	Defaults DefaultConfig     `yaml:"defaults"`
	Presets  map[string]Preset `yaml:"presets"`
}

// DefaultConfig holds the fallback policy and frame count used when flags are not set.
type DefaultConfig struct {
	Policy string `yaml:"policy"`
	Frames int    `yaml:"frames"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing defaults YAML %s: %w", path, err)
	}
	return &cfg, nil
}
