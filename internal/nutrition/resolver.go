// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nutrition

import (
	"strings"

	"github.com/pbolem/nutriguide/pkg/types"
)

// aliases maps common synonyms onto canonical record names.
var aliases = map[string]string{
	"hamburger":       "burger",
	"cheeseburger":    "burger",
	"beef burger":     "burger",
	"fries":           "french fries",
	"chips":           "french fries",
	"spaghetti":       "pasta",
	"fettuccine":      "pasta",
	"linguine":        "pasta",
	"ramen":           "noodles",
	"beef":            "steak",
	"ribeye":          "steak",
	"sirloin":         "steak",
	"chicken breast":  "grilled chicken",
	"roasted chicken": "grilled chicken",
	"green salad":     "salad",
	"caesar salad":    "salad",
	"garden salad":    "salad",
	"fruit salad":     "fruit bowl",
	"mixed fruit":     "fruit bowl",
	"white rice":      "rice",
	"brown rice":      "rice",
	"porridge":        "oatmeal",
	"toast":           "bread",
	"omelette":        "eggs",
	"scrambled eggs":  "eggs",
	"salmon":          "grilled fish",
}

// Suffixes the fuzzy stage strips before comparing names. Heuristic labels
// like "vegetable dish" keep their meaning through category keywords.
var genericSuffixes = []string{" dish", " plate", " bowl", " item", " food"}

// fuzzyThreshold is the minimum token-overlap similarity for a fuzzy hit.
const fuzzyThreshold = 0.5

// Resolver maps arbitrary labels onto nutrition records. It is built once
// from immutable tables and safe for concurrent use.
type Resolver struct {
	records  []types.NutritionRecord
	byName   map[string]int
	generics map[string]types.NutritionRecord
	tomato   types.NutritionRecord
	fallback types.NutritionRecord
}

// NewResolver builds a Resolver over the given canonical records plus the
// builtin generic records. Passing Records() gives the standard table.
func NewResolver(records []types.NutritionRecord) *Resolver {
	r := &Resolver{
		records:  records,
		byName:   make(map[string]int, len(records)),
		generics: make(map[string]types.NutritionRecord),
	}
	for i, rec := range records {
		r.byName[normalize(rec.Name)] = i
	}
	for _, g := range Generics() {
		switch g.Name {
		case "mixed plate":
			r.fallback = g
		case "tomato-based dish":
			r.tomato = g
		default:
			r.generics[g.Category] = g
		}
	}
	return r
}

// Resolve maps label to a nutrition record. The ladder is exact lookup,
// alias lookup, fuzzy name match, then a category generic; the final rung
// cannot miss, so Resolve is total over all strings.
func (r *Resolver) Resolve(label string) types.NutritionRecord {
	name := normalize(label)

	if i, ok := r.byName[name]; ok {
		return r.records[i]
	}

	if canonical, ok := aliases[name]; ok {
		if i, ok := r.byName[canonical]; ok {
			return r.records[i]
		}
	}

	if rec, ok := r.fuzzy(name); ok {
		return rec
	}

	return r.generic(name)
}

// fuzzy finds the best canonical record by token overlap after stripping
// generic suffixes. The first record in table order wins ties.
func (r *Resolver) fuzzy(name string) (types.NutritionRecord, bool) {
	stripped := stripSuffixes(name)
	if stripped == "" {
		return types.NutritionRecord{}, false
	}
	queryTokens := strings.Fields(stripped)

	bestScore := 0.0
	bestIdx := -1
	for i, rec := range r.records {
		score := tokenOverlap(queryTokens, strings.Fields(normalize(rec.Name)))
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx >= 0 && bestScore >= fuzzyThreshold {
		return r.records[bestIdx], true
	}
	return types.NutritionRecord{}, false
}

// generic maps a label onto a category record by keyword, defaulting to
// the mixed plate.
func (r *Resolver) generic(name string) types.NutritionRecord {
	keywords := []struct {
		word     string
		category string
	}{
		{"vegetable", "vegetable"},
		{"veggie", "vegetable"},
		{"salad", "vegetable"},
		{"fruit", "fruit"},
		{"berry", "fruit"},
		{"meat", "meat"},
		{"chicken", "meat"},
		{"pork", "meat"},
		{"fish", "meat"},
		{"rice", "rice"},
		{"grain", "grain"},
		{"wheat", "grain"},
		{"noodle", "grain"},
	}

	// Tomato-heavy labels get the tomato generic, not the plain
	// vegetable one.
	if strings.Contains(name, "tomato") {
		return r.tomato
	}

	for _, kw := range keywords {
		if strings.Contains(name, kw.word) {
			if g, ok := r.generics[kw.category]; ok {
				return g
			}
		}
	}
	return r.fallback
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func stripSuffixes(name string) string {
	for _, suffix := range genericSuffixes {
		name = strings.TrimSuffix(name, suffix)
	}
	return strings.TrimSpace(name)
}

// tokenOverlap is the share of matching tokens relative to the longer
// token list, in [0,1].
func tokenOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, tok := range a {
		set[tok] = true
	}
	shared := 0
	for _, tok := range b {
		if set[tok] {
			shared++
		}
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	return float64(shared) / float64(longer)
}
