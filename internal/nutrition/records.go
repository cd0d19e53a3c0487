// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nutrition resolves food labels to canonical nutrition records.
// Resolution is total: any string maps to some record, through exact and
// alias lookup, fuzzy name matching, and finally per-category generics.
package nutrition

import "github.com/pbolem/nutriguide/pkg/types"

// Records returns the builtin canonical table. Values are per reference
// serving, compiled from USDA survey data and rounded for presentation.
func Records() []types.NutritionRecord {
	return []types.NutritionRecord{
		{Name: "pizza", Category: "mixed", ServingGrams: 150, Calories: 400, ProteinG: 17, CarbsG: 49, FatG: 15, FiberG: 3, SugarG: 5, SodiumMg: 900, CholesterolMg: 30},
		{Name: "burger", Category: "meat", ServingGrams: 220, Calories: 540, ProteinG: 27, CarbsG: 41, FatG: 29, FiberG: 2, SugarG: 7, SodiumMg: 980, CholesterolMg: 85},
		{Name: "french fries", Category: "grain", ServingGrams: 120, Calories: 365, ProteinG: 4, CarbsG: 48, FatG: 17, FiberG: 4, SugarG: 0.5, SodiumMg: 250, CholesterolMg: 0},
		{Name: "hot dog", Category: "meat", ServingGrams: 150, Calories: 350, ProteinG: 12, CarbsG: 27, FatG: 21, FiberG: 1, SugarG: 5, SodiumMg: 1000, CholesterolMg: 45},
		{Name: "sushi", Category: "mixed", ServingGrams: 180, Calories: 310, ProteinG: 14, CarbsG: 55, FatG: 4, FiberG: 2, SugarG: 8, SodiumMg: 640, CholesterolMg: 20},
		{Name: "fried rice", Category: "rice", ServingGrams: 200, Calories: 330, ProteinG: 9, CarbsG: 52, FatG: 10, FiberG: 2, SugarG: 2, SodiumMg: 780, CholesterolMg: 60},
		{Name: "noodles", Category: "grain", ServingGrams: 200, Calories: 280, ProteinG: 9, CarbsG: 52, FatG: 4, FiberG: 3, SugarG: 1, SodiumMg: 320, CholesterolMg: 0},
		{Name: "curry", Category: "mixed", ServingGrams: 250, Calories: 320, ProteinG: 16, CarbsG: 22, FatG: 19, FiberG: 4, SugarG: 6, SodiumMg: 720, CholesterolMg: 45},
		{Name: "salad", Category: "vegetable", ServingGrams: 150, Calories: 120, ProteinG: 3, CarbsG: 10, FatG: 8, FiberG: 3, SugarG: 4, SodiumMg: 180, CholesterolMg: 0},
		{Name: "fruit bowl", Category: "fruit", ServingGrams: 150, Calories: 90, ProteinG: 1, CarbsG: 23, FatG: 0.4, FiberG: 3, SugarG: 17, SodiumMg: 5, CholesterolMg: 0},
		{Name: "smoothie", Category: "fruit", ServingGrams: 300, Calories: 180, ProteinG: 4, CarbsG: 38, FatG: 2, FiberG: 4, SugarG: 30, SodiumMg: 60, CholesterolMg: 5},
		{Name: "grilled chicken", Category: "meat", ServingGrams: 170, Calories: 280, ProteinG: 43, CarbsG: 0, FatG: 11, FiberG: 0, SugarG: 0, SodiumMg: 420, CholesterolMg: 130},
		{Name: "steak", Category: "meat", ServingGrams: 220, Calories: 460, ProteinG: 52, CarbsG: 0, FatG: 27, FiberG: 0, SugarG: 0, SodiumMg: 380, CholesterolMg: 150},
		{Name: "grilled fish", Category: "meat", ServingGrams: 180, Calories: 250, ProteinG: 40, CarbsG: 0, FatG: 9, FiberG: 0, SugarG: 0, SodiumMg: 320, CholesterolMg: 95},
		{Name: "eggs", Category: "meat", ServingGrams: 100, Calories: 155, ProteinG: 13, CarbsG: 1, FatG: 11, FiberG: 0, SugarG: 1, SodiumMg: 125, CholesterolMg: 375},
		{Name: "pancakes", Category: "grain", ServingGrams: 150, Calories: 340, ProteinG: 9, CarbsG: 55, FatG: 9, FiberG: 2, SugarG: 14, SodiumMg: 650, CholesterolMg: 70},
		{Name: "oatmeal", Category: "grain", ServingGrams: 250, Calories: 170, ProteinG: 6, CarbsG: 30, FatG: 3.5, FiberG: 4, SugarG: 1, SodiumMg: 115, CholesterolMg: 0},
		{Name: "rice", Category: "rice", ServingGrams: 200, Calories: 260, ProteinG: 5, CarbsG: 57, FatG: 0.6, FiberG: 1, SugarG: 0, SodiumMg: 2, CholesterolMg: 0},
		{Name: "pasta", Category: "grain", ServingGrams: 220, Calories: 350, ProteinG: 13, CarbsG: 62, FatG: 6, FiberG: 4, SugarG: 6, SodiumMg: 480, CholesterolMg: 5},
		{Name: "bread", Category: "grain", ServingGrams: 80, Calories: 210, ProteinG: 7, CarbsG: 39, FatG: 3, FiberG: 3, SugarG: 4, SodiumMg: 380, CholesterolMg: 0},
	}
}

// Generics returns the representative records used when a label resolves
// only to a category. The names double as the color-heuristic and fallback
// labels, so those labels hit this table exactly.
func Generics() []types.NutritionRecord {
	return []types.NutritionRecord{
		{Name: "vegetable dish", Category: "vegetable", ServingGrams: 200, Calories: 150, ProteinG: 5, CarbsG: 20, FatG: 6, FiberG: 5, SugarG: 7, SodiumMg: 300, CholesterolMg: 0},
		{Name: "meat dish", Category: "meat", ServingGrams: 200, Calories: 400, ProteinG: 35, CarbsG: 8, FatG: 25, FiberG: 1, SugarG: 2, SodiumMg: 600, CholesterolMg: 110},
		{Name: "grain dish", Category: "grain", ServingGrams: 200, Calories: 320, ProteinG: 10, CarbsG: 55, FatG: 7, FiberG: 4, SugarG: 3, SodiumMg: 400, CholesterolMg: 5},
		{Name: "rice dish", Category: "rice", ServingGrams: 200, Calories: 290, ProteinG: 7, CarbsG: 54, FatG: 5, FiberG: 2, SugarG: 1, SodiumMg: 450, CholesterolMg: 20},
		{Name: "tomato-based dish", Category: "vegetable", ServingGrams: 250, Calories: 220, ProteinG: 8, CarbsG: 30, FatG: 8, FiberG: 5, SugarG: 10, SodiumMg: 550, CholesterolMg: 10},
		{Name: "fruit dish", Category: "fruit", ServingGrams: 150, Calories: 100, ProteinG: 1, CarbsG: 25, FatG: 0.5, FiberG: 3, SugarG: 19, SodiumMg: 5, CholesterolMg: 0},
		{Name: "mixed plate", Category: "mixed", ServingGrams: 300, Calories: 450, ProteinG: 20, CarbsG: 45, FatG: 20, FiberG: 5, SugarG: 8, SodiumMg: 700, CholesterolMg: 60},
	}
}
