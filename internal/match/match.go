// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match ranks pattern-database entries against an extracted
// descriptor. Scoring is a weighted normalized distance mapped into a
// [0,1] confidence, with the color distribution carrying most of the
// weight.
package match

import (
	"math"
	"sort"

	"github.com/pbolem/nutriguide/internal/feature"
	"github.com/pbolem/nutriguide/internal/pattern"
)

// Feature weights. Color dominates because the band distribution separates
// foods far better than the coarse texture and shape classes.
const (
	weightColor   = 0.60
	weightTexture = 0.15
	weightShape   = 0.15
	weightTone    = 0.10
)

// Match pairs a pattern with the confidence that the descriptor shows it.
type Match struct {
	Pattern    pattern.Pattern
	Confidence float64
}

// Matcher scores descriptors against a fixed pattern database. It holds no
// mutable state and is safe for concurrent use.
type Matcher struct {
	db *pattern.Database
}

// New returns a Matcher over db.
func New(db *pattern.Database) *Matcher {
	return &Matcher{db: db}
}

// Rank scores every pattern against d and returns the matches ordered by
// descending confidence. Ties keep the database's table order, so equal
// inputs always rank identically. An empty database yields an empty slice.
func (m *Matcher) Rank(d feature.Descriptor) []Match {
	patterns := m.db.Patterns()
	matches := make([]Match, 0, len(patterns))
	for _, p := range patterns {
		matches = append(matches, Match{
			Pattern:    p,
			Confidence: confidence(d, p.Reference),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// Best returns the top-ranked match, or false when the database is empty.
func (m *Matcher) Best(d feature.Descriptor) (Match, bool) {
	ranked := m.Rank(d)
	if len(ranked) == 0 {
		return Match{}, false
	}
	return ranked[0], true
}

// confidence maps the weighted distance between a descriptor and a
// reference into [0,1]. Each component distance is itself in [0,1], so
// the weighted sum is too and the mapping is 1 minus the distance.
func confidence(got, want feature.Descriptor) float64 {
	d := weightColor*colorDistance(got, want) +
		weightTexture*classDistance(string(got.Texture), string(want.Texture)) +
		weightShape*classDistance(string(got.Shape), string(want.Shape)) +
		weightTone*toneDistance(got, want)
	return clamp01(1 - d)
}

// colorDistance is the total-variation distance between two band
// distributions: half the sum of absolute ratio differences. Identical
// distributions give 0, disjoint ones give 1.
func colorDistance(got, want feature.Descriptor) float64 {
	sum := 0.0
	for _, band := range feature.Bands() {
		sum += math.Abs(got.Ratio(band) - want.Ratio(band))
	}
	return sum / 2
}

func classDistance(got, want string) float64 {
	if got == want {
		return 0
	}
	return 1
}

// toneDistance compares brightness and contrast, each normalized by its
// practical range.
func toneDistance(got, want feature.Descriptor) float64 {
	db := math.Abs(got.Brightness-want.Brightness) / 255
	dc := math.Abs(got.Contrast-want.Contrast) / 128
	return clamp01((db + dc) / 2)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
