// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pattern holds the read-only database of reference food patterns
// the local matcher scores against. The builtin table covers common plated
// foods; a YAML file can replace it for tuning without a rebuild.
package pattern

import (
	"fmt"
	"math"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pbolem/nutriguide/internal/feature"
)

// Pattern is one reference food with its expected descriptor.
type Pattern struct {
	// Name is the lowercased food label (e.g. "pizza").
	Name string `yaml:"name"`

	// Category groups the food for generic fallback resolution.
	Category string `yaml:"category"`

	// ServingGrams is the typical serving size of the food.
	ServingGrams float64 `yaml:"serving_grams"`

	// Reference is the descriptor an ideal photo of the food produces.
	Reference feature.Descriptor `yaml:"reference"`
}

// Database is an immutable collection of patterns. Construct it once with
// Default or Load; concurrent reads need no locking.
type Database struct {
	patterns []Pattern
	byName   map[string]int
}

// Default returns the builtin pattern database.
func Default() *Database {
	db, err := newDatabase(builtin())
	if err != nil {
		// The builtin table is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return db
}

// Load reads a pattern database from a YAML file. The file holds a
// top-level "patterns" list in the Pattern shape.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern file: %w", err)
	}

	var doc struct {
		Patterns []Pattern `yaml:"patterns"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing pattern file %s: %w", path, err)
	}
	if len(doc.Patterns) == 0 {
		return nil, fmt.Errorf("pattern file %s has no patterns", path)
	}

	db, err := newDatabase(doc.Patterns)
	if err != nil {
		return nil, fmt.Errorf("pattern file %s: %w", path, err)
	}
	return db, nil
}

func newDatabase(patterns []Pattern) (*Database, error) {
	byName := make(map[string]int, len(patterns))
	for i, p := range patterns {
		if err := validate(p); err != nil {
			return nil, err
		}
		name := strings.ToLower(p.Name)
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("duplicate pattern %q", name)
		}
		patterns[i].Name = name
		byName[name] = i
	}
	return &Database{patterns: patterns, byName: byName}, nil
}

func validate(p Pattern) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("pattern with empty name")
	}
	if p.Category == "" {
		return fmt.Errorf("pattern %q has no category", p.Name)
	}
	sum := 0.0
	for band, ratio := range p.Reference.Colors {
		if ratio < 0 || ratio > 1 {
			return fmt.Errorf("pattern %q: band %s ratio %.3f outside [0,1]", p.Name, band, ratio)
		}
		sum += ratio
	}
	if math.Abs(sum-1) > 0.01 {
		return fmt.Errorf("pattern %q: color ratios sum to %.3f, want 1.0", p.Name, sum)
	}
	return nil
}

// Patterns returns the patterns in table order. Callers must not modify
// the returned slice.
func (db *Database) Patterns() []Pattern {
	return db.patterns
}

// Lookup finds a pattern by name, case-insensitively.
func (db *Database) Lookup(name string) (Pattern, bool) {
	i, ok := db.byName[strings.ToLower(name)]
	if !ok {
		return Pattern{}, false
	}
	return db.patterns[i], true
}

// Len reports the number of patterns.
func (db *Database) Len() int {
	return len(db.patterns)
}
