// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateKnownCategories(t *testing.T) {
	g := NewGenerator()

	for _, category := range []string{"vegetable", "fruit", "meat", "grain", "rice", "mixed"} {
		recipes := g.Generate(category, "")
		if len(recipes) < 1 || len(recipes) > 3 {
			t.Errorf("Generate(%q) returned %d recipes, want 1..3", category, len(recipes))
		}
		for _, r := range recipes {
			if r.Title == "" || len(r.Steps) == 0 || len(r.Ingredients) == 0 {
				t.Errorf("Generate(%q) returned incomplete template %+v", category, r)
			}
			if r.TimeMinutes <= 0 || r.CostEstimateUSD <= 0 {
				t.Errorf("Generate(%q) template %q missing estimates", category, r.Title)
			}
		}
	}
}

func TestGenerateUnknownCategoryFallsBack(t *testing.T) {
	g := NewGenerator()

	recipes := g.Generate("alien cuisine", "")
	if len(recipes) == 0 {
		t.Fatal("unknown category returned no recipes")
	}

	mixed := g.Generate("mixed", "")
	if recipes[0].Title != mixed[0].Title {
		t.Errorf("fallback = %q, want mixed template %q", recipes[0].Title, mixed[0].Title)
	}
}

func TestMixedCategoryIncludesPizzaIngredient(t *testing.T) {
	g := NewGenerator()

	found := false
	for _, r := range g.Generate("mixed", "") {
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), "pizza") || strings.Contains(strings.ToLower(ing), "mozzarella") {
				found = true
			}
		}
	}
	if !found {
		t.Error("mixed category has no pizza-relevant ingredient")
	}
}

func TestLowCarbSwapsOneIngredient(t *testing.T) {
	g := NewGenerator()

	plain := g.Generate("grain", "")
	lowCarb := g.Generate("grain", "low carb please")

	swapped := false
	for i := range plain {
		for j := range plain[i].Ingredients {
			if plain[i].Ingredients[j] != lowCarb[i].Ingredients[j] {
				swapped = true
				if !strings.Contains(lowCarb[i].Ingredients[j], "instead of") {
					t.Errorf("swap text = %q", lowCarb[i].Ingredients[j])
				}
			}
		}
	}
	if !swapped {
		t.Error("low carb note changed no ingredient")
	}
}

func TestVegetarianSwapsMeat(t *testing.T) {
	g := NewGenerator()

	for _, r := range g.Generate("meat", "vegetarian") {
		for _, ing := range r.Ingredients {
			if isMeat(ing) && !strings.Contains(ing, "instead of") {
				t.Errorf("meat ingredient %q survived vegetarian note", ing)
			}
		}
	}
}

func TestQuickCapsTime(t *testing.T) {
	g := NewGenerator()

	for _, r := range g.Generate("meat", "something quick") {
		if r.TimeMinutes > 20 {
			t.Errorf("recipe %q takes %d minutes with quick note", r.Title, r.TimeMinutes)
		}
	}
}

func TestAdjustDoesNotMutateTemplates(t *testing.T) {
	g := NewGenerator()

	before := g.Generate("grain", "")[0].Ingredients[0]
	g.Generate("grain", "low carb")
	after := g.Generate("grain", "")[0].Ingredients[0]
	if before != after {
		t.Errorf("template mutated: %q became %q", before, after)
	}
}

func TestLoadGeneratorFromFile(t *testing.T) {
	doc := `recipes:
  vegetable:
    - title: Test Salad
      steps: ["wash", "chop", "toss"]
      time_minutes: 10
      cost_estimate_usd: 3
      ingredients: ["greens", "dressing"]
`
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadGenerator(path)
	if err != nil {
		t.Fatalf("LoadGenerator: %v", err)
	}

	recipes := g.Generate("vegetable", "")
	if len(recipes) != 1 || recipes[0].Title != "Test Salad" {
		t.Fatalf("Generate = %+v", recipes)
	}

	// Missing categories still fall back to the builtin mixed templates.
	if len(g.Generate("meat", "")) == 0 {
		t.Error("fallback for missing category is empty")
	}
}
