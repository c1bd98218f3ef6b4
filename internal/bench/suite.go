// Package bench runs YAML-defined minification benchmark suites and
// reports per-mode timing and throughput.
package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hydepwns/zmin-go/zmin"
)

// Suite is a named set of benchmark cases.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case benchmarks one input, either loaded from a file or generated
// deterministically, across one or more modes.
type Case struct {
	Name       string        `yaml:"name"`
	File       string        `yaml:"file,omitempty"`
	Generate   *GenerateSpec `yaml:"generate,omitempty"`
	Modes      []string      `yaml:"modes,omitempty"`
	Iterations int           `yaml:"iterations,omitempty"`
}

// GenerateSpec configures synthetic input generation.
type GenerateSpec struct {
	SizeMB float64 `yaml:"size_mb"`
	Depth  int     `yaml:"depth,omitempty"`
	Seed   int64   `yaml:"seed,omitempty"`
}

// defaultIterations is used when a case does not set iterations.
const defaultIterations = 5

// LoadSuite reads and parses a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return ParseSuite(data)
}

// ParseSuite parses and validates suite YAML.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}
	for i, c := range s.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case at index %d has no name", i)
		}
		if (c.File == "") == (c.Generate == nil) {
			return nil, fmt.Errorf("case %q must set exactly one of file or generate", c.Name)
		}
		if c.Generate != nil && c.Generate.SizeMB <= 0 {
			return nil, fmt.Errorf("case %q: generate.size_mb must be positive", c.Name)
		}
		if _, err := c.modes(); err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
	}
	return &s, nil
}

// modes resolves the case's mode names, defaulting to every mode.
func (c *Case) modes() ([]zmin.Mode, error) {
	if len(c.Modes) == 0 {
		return []zmin.Mode{zmin.Eco, zmin.Sport, zmin.Turbo}, nil
	}
	modes := make([]zmin.Mode, 0, len(c.Modes))
	for _, name := range c.Modes {
		m, err := zmin.ParseMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}

// iterations returns the configured iteration count or the default.
func (c *Case) iterations() int {
	if c.Iterations > 0 {
		return c.Iterations
	}
	return defaultIterations
}

// load produces the case's input bytes.
func (c *Case) load() ([]byte, error) {
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return nil, fmt.Errorf("read case input: %w", err)
		}
		return data, nil
	}
	return Generate(*c.Generate), nil
}
