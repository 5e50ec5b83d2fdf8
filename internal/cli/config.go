package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file read with --config. Any value set on the
// command line wins over the file.
type Config struct {
	File    string `yaml:"file"`
	Trials  int    `yaml:"trials"`
	Workers int    `yaml:"workers"`
	Seed    int64  `yaml:"seed"`
	Exact   bool   `yaml:"exact"`
	Output  string `yaml:"output"`
}

// readConfig decodes a Config, rejecting unknown keys.
func readConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

// loadConfig reads the file at path.
func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := readConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// apply copies config values into input for every flag left at its default.
// It returns the graph file named by the config, if any.
func (c *Config) apply(input *Input, flags *pflag.FlagSet) string {
	if c.Trials != 0 && !flags.Changed("trials") {
		input.trials = c.Trials
	}
	if c.Workers != 0 && !flags.Changed("workers") {
		input.workers = c.Workers
	}
	if c.Seed != 0 && !flags.Changed("seed") {
		input.seed = c.Seed
	}
	if c.Exact && !flags.Changed("exact") {
		input.exact = true
	}
	if c.Output != "" && !flags.Changed("output") {
		input.output = c.Output
	}
	return c.File
}
