// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the nutriguide pipeline:
// detection candidates, nutrition records, recipe templates, and the
// configuration consumed by each stage.
package types

// CandidateSource identifies the strategy that produced a detection candidate.
type CandidateSource int

const (
	// SourceRemote indicates the remote classifier service.
	SourceRemote CandidateSource = iota
	// SourceLocalMatch indicates the pattern-database matcher.
	SourceLocalMatch
	// SourceColorHeuristic indicates the dominant-color heuristic.
	SourceColorHeuristic
	// SourceFallback indicates the terminal generic fallback.
	SourceFallback
)

func (s CandidateSource) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceLocalMatch:
		return "local_match"
	case SourceColorHeuristic:
		return "color_heuristic"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// DetectionCandidate is one strategy's guess at the food in an image.
// Exactly one candidate becomes the final result of a pipeline run.
type DetectionCandidate struct {
	// Label is the food name, lowercased (e.g. "pizza", "vegetable dish").
	Label string `json:"label" yaml:"label"`

	// Confidence is the strategy's score in [0,1].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Source records which strategy produced the candidate.
	Source CandidateSource `json:"source" yaml:"source"`
}

// NutritionRecord is the canonical nutrition entry for a food label.
// Records are loaded once at startup and never mutated.
type NutritionRecord struct {
	// Name is the canonical food name the record is keyed by.
	Name string `json:"name" yaml:"name"`

	// Category groups the food for generic fallback resolution
	// (e.g. "vegetable", "meat", "grain", "mixed").
	Category string `json:"category" yaml:"category"`

	// ServingGrams is the reference serving size in grams.
	ServingGrams float64 `json:"serving_grams" yaml:"serving_grams"`

	// Calories per serving (kcal).
	Calories float64 `json:"calories" yaml:"calories"`

	// Macros per serving, in grams.
	ProteinG float64 `json:"protein_g" yaml:"protein_g"`
	CarbsG   float64 `json:"carbs_g" yaml:"carbs_g"`
	FatG     float64 `json:"fat_g" yaml:"fat_g"`

	// Micros per serving. Fiber and sugar in grams, sodium and
	// cholesterol in milligrams.
	FiberG        float64 `json:"fiber_g" yaml:"fiber_g"`
	SugarG        float64 `json:"sugar_g" yaml:"sugar_g"`
	SodiumMg      float64 `json:"sodium_mg" yaml:"sodium_mg"`
	CholesterolMg float64 `json:"cholesterol_mg" yaml:"cholesterol_mg"`
}

// RecipeTemplate is a static recipe suggestion keyed by food category.
type RecipeTemplate struct {
	// Title names the recipe (e.g. "Protein Bowl").
	Title string `json:"title" yaml:"title"`

	// Steps are the preparation instructions, in order.
	Steps []string `json:"steps" yaml:"steps"`

	// TimeMinutes is the estimated preparation time.
	TimeMinutes int `json:"time_minutes" yaml:"time_minutes"`

	// CostEstimateUSD is the estimated ingredient cost.
	CostEstimateUSD float64 `json:"cost_estimate_usd" yaml:"cost_estimate_usd"`

	// Ingredients lists the ingredient lines.
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
}

// Recommendation is the pipeline's external result: the resolved label with
// its confidence, the canonical nutrition record, and recipe suggestions.
type Recommendation struct {
	Label      string             `json:"label" yaml:"label"`
	Confidence float64            `json:"confidence" yaml:"confidence"`
	Source     string             `json:"source" yaml:"source"`
	Nutrition  NutritionRecord    `json:"nutrition" yaml:"nutrition"`
	Recipes    []RecipeTemplate   `json:"recipes" yaml:"recipes"`
}
