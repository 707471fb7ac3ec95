// Package scenario loads the YAML files that describe a maze-search run:
// grid parameters plus the algorithms to execute. The structs double as the
// source for the machine-readable JSON schema emitted by the schema command.
package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes one maze-search run.
type Scenario struct {
	Size          int      `yaml:"size" json:"size" jsonschema:"title=Grid size,description=Side length of the square maze,minimum=1"`
	ObstacleRatio float64  `yaml:"obstacleRatio" json:"obstacleRatio" jsonschema:"title=Obstacle ratio,description=Fraction of cells filled with obstacles,minimum=0,maximum=1"`
	Seed          int64    `yaml:"seed" json:"seed" jsonschema:"title=Random seed,description=Seed for obstacle placement; the same seed reproduces the same maze"`
	Algorithms    []string `yaml:"algorithms,omitempty" json:"algorithms,omitempty" jsonschema:"title=Algorithms,description=Search variants to run; empty means all four"`
	MaxExpansions int      `yaml:"maxExpansions,omitempty" json:"maxExpansions,omitempty" jsonschema:"title=Expansion limit,description=Abort a search after this many node expansions; 0 means unlimited,minimum=0"`
}

// Read decodes a scenario from r without validating it.
func Read(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := new(Scenario)
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return s, nil
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := Read(file)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the ranges the grid constructor will enforce again later,
// so a bad file fails with a message naming the file rather than deep inside
// a run.
func (s *Scenario) Validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", s.Size)
	}
	if s.ObstacleRatio < 0 || s.ObstacleRatio > 1 {
		return fmt.Errorf("obstacleRatio must be in [0,1], got %v", s.ObstacleRatio)
	}
	if s.MaxExpansions < 0 {
		return fmt.Errorf("maxExpansions must not be negative, got %d", s.MaxExpansions)
	}
	return nil
}
