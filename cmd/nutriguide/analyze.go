// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pbolem/nutriguide/internal/match"
	"github.com/pbolem/nutriguide/internal/nutrition"
	"github.com/pbolem/nutriguide/internal/pattern"
	"github.com/pbolem/nutriguide/internal/pipeline"
	"github.com/pbolem/nutriguide/internal/recipe"
	"github.com/pbolem/nutriguide/internal/remote"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [image file]",
	Short: "Identify the food in a photo and report nutrition and recipes",
	Long: `Analyze runs the identification pipeline on a JPEG or PNG photo.
The remote classifier is consulted first when an endpoint is configured;
otherwise identification falls back to the local pattern matcher and
color heuristics. The resolved food is reported with its canonical
nutrition record and recipe suggestions.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("notes", "", "dietary notes (e.g. \"low carb\", \"vegetarian\", \"quick\")")
	analyzeCmd.Flags().Bool("json", false, "output the full result as JSON")
	analyzeCmd.Flags().Bool("trace", false, "print the pipeline state trace")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	notes, _ := cmd.Flags().GetString("notes")
	asJSON, _ := cmd.Flags().GetBool("json")
	showTrace, _ := cmd.Flags().GetBool("trace")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}

	res, err := p.AnalyzeBytes(context.Background(), data, notes)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Recommendation)
	}

	rec := res.Recommendation
	fmt.Printf("Detected: %s (confidence %.2f, via %s)\n", rec.Label, rec.Confidence, rec.Source)
	fmt.Printf("Nutrition per %.0f g serving of %s:\n", rec.Nutrition.ServingGrams, rec.Nutrition.Name)
	fmt.Printf("  %.0f kcal, protein %.1f g, carbs %.1f g, fat %.1f g\n",
		rec.Nutrition.Calories, rec.Nutrition.ProteinG, rec.Nutrition.CarbsG, rec.Nutrition.FatG)
	fmt.Printf("  fiber %.1f g, sugar %.1f g, sodium %.0f mg, cholesterol %.0f mg\n",
		rec.Nutrition.FiberG, rec.Nutrition.SugarG, rec.Nutrition.SodiumMg, rec.Nutrition.CholesterolMg)

	fmt.Println("Recipes:")
	for _, r := range rec.Recipes {
		fmt.Printf("  - %s (%d min, ~$%.0f)\n", r.Title, r.TimeMinutes, r.CostEstimateUSD)
	}

	if showTrace {
		fmt.Println("Pipeline trace:")
		for _, step := range res.Trace {
			fmt.Printf("  %s: %s\n", step.State, step.Outcome)
		}
	}
	return nil
}

// buildPipeline wires the pipeline dependencies from configuration:
// pattern database (builtin or file), remote classifier, resolver, and
// recipe generator.
func buildPipeline() (*pipeline.Pipeline, error) {
	cfg := pipelineConfig()

	db := pattern.Default()
	if cfg.PatternFile != "" {
		var err error
		if db, err = pattern.Load(cfg.PatternFile); err != nil {
			return nil, err
		}
	}

	recipes := recipe.NewGenerator()
	if cfg.RecipeFile != "" {
		var err error
		if recipes, err = recipe.LoadGenerator(cfg.RecipeFile); err != nil {
			return nil, err
		}
	}

	return pipeline.New(pipeline.Deps{
		Classifier: remote.NewClient(cfg.Remote),
		Matcher:    match.New(db),
		Nutrition:  nutrition.NewResolver(nutrition.Records()),
		Recipes:    recipes,
		Thresholds: cfg.Thresholds,
		Warnings:   os.Stderr,
	}), nil
}
