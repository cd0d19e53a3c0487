// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pbolem/nutriguide/internal/nutrition"
	"github.com/pbolem/nutriguide/pkg/types"
)

var nutritionCmd = &cobra.Command{
	Use:   "nutrition [food name]",
	Short: "Look up the canonical nutrition record for a food",
	Long: `Nutrition queries the canonical food database. Lookup is by exact
name, then substring; with no match the resolver's alias and category
rules still produce a representative record, so the command always
answers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNutrition,
}

func init() {
	nutritionCmd.Flags().Bool("json", false, "output the record as JSON")
	nutritionCmd.Flags().Bool("list", false, "list all stored foods instead of looking one up")

	rootCmd.AddCommand(nutritionCmd)
}

func runNutrition(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	list, _ := cmd.Flags().GetBool("list")

	cfg := pipelineConfig()
	store, err := nutrition.NewStore(cfg.NutritionDB)
	if err != nil {
		return err
	}
	defer store.Close()

	if list {
		records, err := store.All()
		if err != nil {
			return err
		}
		for _, rec := range records {
			fmt.Printf("%-20s %-10s %6.0f kcal / %.0f g\n", rec.Name, rec.Category, rec.Calories, rec.ServingGrams)
		}
		return nil
	}

	name := strings.Join(args, " ")
	rec, found, err := store.Lookup(name)
	if err != nil {
		return err
	}
	if !found {
		// The store missed; the resolver is total and covers aliases and
		// category generics.
		rec = nutrition.NewResolver(nutrition.Records()).Resolve(name)
		fmt.Fprintf(os.Stderr, "no stored record for %q, resolved to %q\n", name, rec.Name)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	printRecord(rec)
	return nil
}

func printRecord(rec types.NutritionRecord) {
	fmt.Printf("%s (%s), per %.0f g serving:\n", rec.Name, rec.Category, rec.ServingGrams)
	fmt.Printf("  calories     %6.0f kcal\n", rec.Calories)
	fmt.Printf("  protein      %6.1f g\n", rec.ProteinG)
	fmt.Printf("  carbs        %6.1f g\n", rec.CarbsG)
	fmt.Printf("  fat          %6.1f g\n", rec.FatG)
	fmt.Printf("  fiber        %6.1f g\n", rec.FiberG)
	fmt.Printf("  sugar        %6.1f g\n", rec.SugarG)
	fmt.Printf("  sodium       %6.0f mg\n", rec.SodiumMg)
	fmt.Printf("  cholesterol  %6.0f mg\n", rec.CholesterolMg)
}
