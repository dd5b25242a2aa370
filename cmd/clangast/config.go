package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reoring/clangast"
)

// config is the optional YAML file given with -config. Flags set on the
// command line win over it.
type config struct {
	Driver   string `yaml:"driver"`
	Format   string `yaml:"format"`
	MaxDepth int    `yaml:"maxDepth"`
	MaxBytes int64  `yaml:"maxBytes"`
	Language string `yaml:"language"`
}

func defaultConfig() config {
	return config{Driver: "jsoniter", Format: "yaml"}
}

func loadConfig(path string, cfg *config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c config) decodeOpt() (clangast.DecodeOpt, error) {
	d, ok := clangast.DriverByName(c.Driver)
	if !ok {
		return clangast.DecodeOpt{}, fmt.Errorf("unknown driver %q", c.Driver)
	}
	return clangast.DecodeOpt{MaxDepth: c.MaxDepth, MaxBytes: c.MaxBytes, Driver: d}, nil
}
