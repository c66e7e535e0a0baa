package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// fileConfig mirrors the harness flags in YAML form. Pointer fields
// distinguish "absent" from zero; an explicitly set flag always wins over
// the file.
type fileConfig struct {
	Samples      *int    `yaml:"samples"`
	MinLen       *int    `yaml:"min_len"`
	MaxLen       *int    `yaml:"max_len"`
	Seed         *int64  `yaml:"seed"`
	Out          *string `yaml:"out"`
	Generator    *string `yaml:"generator"`
	NearDistance *int    `yaml:"near_distance"`
	TempDir      *string `yaml:"temp_dir"`
	TimeoutSec   *int    `yaml:"timeout_seconds"`
	StringLen    *int    `yaml:"string_len"`
}

func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}
