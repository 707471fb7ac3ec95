package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	in := `
size: 12
obstacleRatio: 0.25
seed: 42
algorithms:
  - astar
  - greedy
maxExpansions: 500
`
	s, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if s.Size != 12 || s.ObstacleRatio != 0.25 || s.Seed != 42 {
		t.Errorf("parsed %+v", s)
	}
	if len(s.Algorithms) != 2 || s.Algorithms[0] != "astar" || s.Algorithms[1] != "greedy" {
		t.Errorf("algorithms = %v", s.Algorithms)
	}
	if s.MaxExpansions != 500 {
		t.Errorf("maxExpansions = %d, want 500", s.MaxExpansions)
	}
}

func TestReadMalformed(t *testing.T) {
	if _, err := Read(strings.NewReader("size: [not an int")); err == nil {
		t.Error("malformed YAML parsed without error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		s    Scenario
		ok   bool
	}{
		{"valid", Scenario{Size: 5, ObstacleRatio: 0.3}, true},
		{"zero size", Scenario{Size: 0, ObstacleRatio: 0.3}, false},
		{"ratio too high", Scenario{Size: 5, ObstacleRatio: 1.5}, false},
		{"ratio negative", Scenario{Size: 5, ObstacleRatio: -0.2}, false},
		{"negative limit", Scenario{Size: 5, MaxExpansions: -1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yml")
	if err := os.WriteFile(path, []byte("size: 8\nobstacleRatio: 0.4\nseed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Size != 8 || s.ObstacleRatio != 0.4 || s.Seed != 7 {
		t.Errorf("loaded %+v", s)
	}

	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("loading a missing file succeeded")
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("size: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("loading an invalid scenario succeeded")
	}
}
