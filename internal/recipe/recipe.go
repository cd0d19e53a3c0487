// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recipe produces static recipe suggestions for a resolved food
// category, lightly adjusted by free-text dietary notes. Generation never
// fails; unknown categories get the mixed-dish template.
package recipe

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pbolem/nutriguide/pkg/types"
)

// Generator serves recipe templates keyed by food category. Built once at
// startup; safe for concurrent use.
type Generator struct {
	byCategory map[string][]types.RecipeTemplate
	mixed      []types.RecipeTemplate
}

// NewGenerator returns a Generator over the builtin templates.
func NewGenerator() *Generator {
	return newGenerator(builtin())
}

// LoadGenerator reads templates from a YAML file holding a top-level
// "recipes" map of category name to template list.
func LoadGenerator(path string) (*Generator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe file: %w", err)
	}

	var doc struct {
		Recipes map[string][]types.RecipeTemplate `yaml:"recipes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing recipe file %s: %w", path, err)
	}
	if len(doc.Recipes) == 0 {
		return nil, fmt.Errorf("recipe file %s has no recipes", path)
	}
	return newGenerator(doc.Recipes), nil
}

func newGenerator(byCategory map[string][]types.RecipeTemplate) *Generator {
	g := &Generator{byCategory: byCategory}
	g.mixed = byCategory["mixed"]
	if len(g.mixed) == 0 {
		g.mixed = builtin()["mixed"]
	}
	return g
}

// Generate returns one to three templates for the category, adjusted by
// the dietary notes. Unknown categories fall back to the mixed templates,
// so the result is never empty.
func (g *Generator) Generate(category, notes string) []types.RecipeTemplate {
	templates, ok := g.byCategory[strings.ToLower(strings.TrimSpace(category))]
	if !ok || len(templates) == 0 {
		templates = g.mixed
	}
	if len(templates) > 3 {
		templates = templates[:3]
	}

	out := make([]types.RecipeTemplate, len(templates))
	for i, tmpl := range templates {
		out[i] = adjust(tmpl, notes)
	}
	return out
}

// adjust applies deterministic note-driven tweaks to a copy of tmpl. The
// tweaks are deliberately small: an ingredient swap for low-carb eaters, a
// protein swap for vegetarians, and a time cap for quick meals.
func adjust(tmpl types.RecipeTemplate, notes string) types.RecipeTemplate {
	out := tmpl
	out.Steps = append([]string(nil), tmpl.Steps...)
	out.Ingredients = append([]string(nil), tmpl.Ingredients...)

	n := strings.ToLower(notes)
	if strings.Contains(n, "low carb") || strings.Contains(n, "low-carb") {
		for i, ing := range out.Ingredients {
			if isCarbHeavy(ing) {
				out.Ingredients[i] = "cauliflower rice or leafy greens (instead of " + ing + ")"
				break
			}
		}
	}
	if strings.Contains(n, "vegetarian") || strings.Contains(n, "vegan") {
		for i, ing := range out.Ingredients {
			if isMeat(ing) {
				out.Ingredients[i] = "grilled tofu or tempeh (instead of " + ing + ")"
			}
		}
	}
	if strings.Contains(n, "quick") && out.TimeMinutes > 20 {
		out.TimeMinutes = 20
		out.Steps = append(out.Steps, "Shortcut: use pre-cooked or frozen components to stay under 20 minutes.")
	}
	return out
}

func isCarbHeavy(ingredient string) bool {
	ing := strings.ToLower(ingredient)
	for _, carb := range []string{"rice", "pasta", "noodle", "bread", "bun", "dough", "potato", "tortilla", "oats"} {
		if strings.Contains(ing, carb) {
			return true
		}
	}
	return false
}

func isMeat(ingredient string) bool {
	ing := strings.ToLower(ingredient)
	for _, meat := range []string{"chicken", "beef", "steak", "pork", "bacon", "fish", "salmon", "sausage", "ground meat"} {
		if strings.Contains(ing, meat) {
			return true
		}
	}
	return false
}
