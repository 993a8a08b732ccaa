package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Sources is the YAML source configuration. A missing file falls back to
// defaults so a bare checkout still aggregates something useful.
type Sources struct {
	ConfsTech struct {
		Enabled bool     `yaml:"enabled"`
		Years   []int    `yaml:"years"`
		Topics  []string `yaml:"topics"`
	} `yaml:"confstech"`

	DBLP struct {
		Enabled     bool     `yaml:"enabled"`
		SearchTerms []string `yaml:"search_terms"`
	} `yaml:"dblp"`

	Sessionize struct {
		Enabled bool     `yaml:"enabled"`
		URLs    []string `yaml:"urls"`
	} `yaml:"sessionize"`

	// Priorities overrides the built-in source priority table.
	Priorities map[string]int `yaml:"priorities"`
}

// DefaultSources enables confs.tech and dblp for the current and next year.
func DefaultSources(now time.Time) *Sources {
	var s Sources
	s.ConfsTech.Enabled = true
	s.ConfsTech.Years = []int{now.Year(), now.Year() + 1}
	s.DBLP.Enabled = true
	return &s
}

// LoadSources reads the YAML source file. A missing file yields the
// defaults; a malformed file is an error.
func LoadSources(path string, now time.Time) (*Sources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSources(now), nil
		}
		return nil, fmt.Errorf("reading sources file: %w", err)
	}

	var s Sources
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if s.ConfsTech.Enabled && len(s.ConfsTech.Years) == 0 {
		s.ConfsTech.Years = []int{now.Year(), now.Year() + 1}
	}
	return &s, nil
}
