// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package remote

import (
	"sort"
	"strings"
)

// canonical maps classifier output labels onto the food names the
// nutrition and pattern tables use. Classifier vocabularies tend to be
// finer grained than our records (ribeye vs steak), so several labels
// collapse onto one name.
var canonical = map[string]string{
	"pizza":           "pizza",
	"hamburger":       "burger",
	"cheeseburger":    "burger",
	"beef burger":     "burger",
	"hot dog":         "hot dog",
	"fries":           "french fries",
	"french fries":    "french fries",
	"chips":           "french fries",
	"grilled chicken": "grilled chicken",
	"chicken breast":  "grilled chicken",
	"roasted chicken": "grilled chicken",
	"steak":           "steak",
	"beef":            "steak",
	"ribeye":          "steak",
	"sirloin":         "steak",
	"fish":            "grilled fish",
	"salmon":          "grilled fish",
	"sushi":           "sushi",
	"sashimi":         "sushi",
	"pasta":           "pasta",
	"spaghetti":       "pasta",
	"fettuccine":      "pasta",
	"linguine":        "pasta",
	"ramen":           "noodles",
	"chow mein":       "noodles",
	"noodles":         "noodles",
	"salad":           "salad",
	"green salad":     "salad",
	"caesar salad":    "salad",
	"fruit salad":     "fruit bowl",
	"mixed fruit":     "fruit bowl",
	"smoothie":        "smoothie",
	"curry":           "curry",
	"fried rice":      "fried rice",
	"white rice":      "rice",
	"brown rice":      "rice",
	"rice":            "rice",
	"bread":           "bread",
	"toast":           "bread",
	"eggs":            "eggs",
	"fried egg":       "eggs",
	"omelette":        "eggs",
	"scrambled eggs":  "eggs",
	"pancakes":        "pancakes",
	"porridge":        "oatmeal",
	"oatmeal":         "oatmeal",
}

// NormalizeLabel maps a raw classifier label onto a canonical food name.
// Labels are lowercased and underscores become spaces before lookup; an
// exact alias match wins, then a containment match in either direction.
// Unknown labels pass through cleaned, so downstream resolution still has
// something to work with.
func NormalizeLabel(label string) string {
	cleaned := strings.TrimSpace(strings.ToLower(strings.ReplaceAll(label, "_", " ")))
	if cleaned == "" {
		return cleaned
	}

	if food, ok := canonical[cleaned]; ok {
		return food
	}
	for _, alias := range aliasOrder() {
		if strings.Contains(cleaned, alias) || strings.Contains(alias, cleaned) {
			return canonical[alias]
		}
	}
	return cleaned
}

// aliasOrder returns the alias keys longest first so the most specific
// alias wins, with a lexical tie-break to keep matching deterministic.
func aliasOrder() []string {
	aliases := make([]string, 0, len(canonical))
	for alias := range canonical {
		aliases = append(aliases, alias)
	}
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i]) != len(aliases[j]) {
			return len(aliases[i]) > len(aliases[j])
		}
		return aliases[i] < aliases[j]
	})
	return aliases
}
