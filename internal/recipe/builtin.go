// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import "github.com/pbolem/nutriguide/pkg/types"

// builtin returns the template table. Categories match the pattern and
// nutrition tables; "mixed" doubles as the unknown-category fallback and
// includes a pizza entry since pizza is the most common mixed-category hit.
func builtin() map[string][]types.RecipeTemplate {
	return map[string][]types.RecipeTemplate{
		"vegetable": {
			{
				Title:           "Roasted Vegetable Medley",
				Steps:           []string{"Preheat oven to 220C.", "Chop vegetables into even chunks.", "Toss with olive oil, salt, and pepper.", "Roast 25 minutes, turning once."},
				TimeMinutes:     35,
				CostEstimateUSD: 6,
				Ingredients:     []string{"2 cups mixed vegetables", "2 tbsp olive oil", "salt and pepper", "fresh herbs"},
			},
			{
				Title:           "Crunchy Garden Salad",
				Steps:           []string{"Wash and dry the greens.", "Slice cucumber, tomato, and onion.", "Whisk a lemon vinaigrette.", "Toss and serve immediately."},
				TimeMinutes:     15,
				CostEstimateUSD: 5,
				Ingredients:     []string{"mixed salad greens", "1 cucumber", "2 tomatoes", "lemon vinaigrette"},
			},
		},
		"fruit": {
			{
				Title:           "Seasonal Fruit Bowl",
				Steps:           []string{"Rinse all fruit.", "Cut into bite-size pieces.", "Squeeze lime over the top.", "Chill 10 minutes before serving."},
				TimeMinutes:     15,
				CostEstimateUSD: 7,
				Ingredients:     []string{"3 cups seasonal fruit", "1 lime", "fresh mint"},
			},
			{
				Title:           "Berry Yogurt Smoothie",
				Steps:           []string{"Add berries, banana, and yogurt to a blender.", "Blend until smooth.", "Thin with milk to taste."},
				TimeMinutes:     10,
				CostEstimateUSD: 5,
				Ingredients:     []string{"1 cup frozen berries", "1 banana", "1 cup yogurt", "milk"},
			},
		},
		"meat": {
			{
				Title:           "Pan-Seared Protein Plate",
				Steps:           []string{"Season the meat generously.", "Sear over high heat, 4 minutes per side.", "Rest 5 minutes before slicing.", "Serve with a green side."},
				TimeMinutes:     25,
				CostEstimateUSD: 12,
				Ingredients:     []string{"400 g chicken or steak", "1 tbsp oil", "salt and pepper", "steamed greens"},
			},
			{
				Title:           "Sheet-Pan Chicken and Vegetables",
				Steps:           []string{"Preheat oven to 200C.", "Arrange chicken and vegetables on a sheet pan.", "Season and drizzle with oil.", "Bake 30 minutes."},
				TimeMinutes:     40,
				CostEstimateUSD: 10,
				Ingredients:     []string{"500 g chicken thighs", "2 cups vegetables", "2 tbsp olive oil", "paprika"},
			},
			{
				Title:           "Quick Beef Stir-Fry",
				Steps:           []string{"Slice beef thinly against the grain.", "Stir-fry beef over high heat, 2 minutes.", "Add vegetables and sauce.", "Serve over rice."},
				TimeMinutes:     20,
				CostEstimateUSD: 11,
				Ingredients:     []string{"300 g beef strips", "stir-fry vegetables", "soy-garlic sauce", "cooked rice"},
			},
		},
		"grain": {
			{
				Title:           "Weeknight Pasta with Tomato Sauce",
				Steps:           []string{"Boil pasta until al dente.", "Simmer tomato sauce with garlic.", "Toss pasta in the sauce.", "Finish with basil and cheese."},
				TimeMinutes:     25,
				CostEstimateUSD: 6,
				Ingredients:     []string{"250 g pasta", "2 cups tomato sauce", "2 cloves garlic", "basil and parmesan"},
			},
			{
				Title:           "Grain Bowl with Roasted Chickpeas",
				Steps:           []string{"Cook the grain of choice.", "Roast chickpeas until crisp.", "Assemble with greens and dressing."},
				TimeMinutes:     30,
				CostEstimateUSD: 7,
				Ingredients:     []string{"1 cup quinoa or farro", "1 can chickpeas", "baby spinach", "tahini dressing"},
			},
		},
		"rice": {
			{
				Title:           "Vegetable Fried Rice",
				Steps:           []string{"Cook and cool the rice.", "Stir-fry vegetables over high heat.", "Add rice and soy sauce.", "Push aside, scramble an egg, and fold in."},
				TimeMinutes:     20,
				CostEstimateUSD: 6,
				Ingredients:     []string{"2 cups cooked rice", "mixed vegetables", "2 eggs", "soy sauce"},
			},
			{
				Title:           "One-Pot Rice and Beans",
				Steps:           []string{"Saute onion and garlic.", "Add rice, beans, and stock.", "Simmer covered 18 minutes.", "Fluff and top with cilantro."},
				TimeMinutes:     30,
				CostEstimateUSD: 5,
				Ingredients:     []string{"1 cup rice", "1 can black beans", "onion and garlic", "vegetable stock"},
			},
		},
		"mixed": {
			{
				Title:           "Homemade Margherita Pizza",
				Steps:           []string{"Stretch the pizza dough.", "Spread tomato sauce thinly.", "Top with mozzarella and basil.", "Bake at 250C until blistered, about 10 minutes."},
				TimeMinutes:     30,
				CostEstimateUSD: 8,
				Ingredients:     []string{"1 ball pizza dough", "1/2 cup tomato sauce", "125 g mozzarella", "fresh basil"},
			},
			{
				Title:           "Balanced Dinner Plate",
				Steps:           []string{"Pick a protein, a grain, and two vegetables.", "Cook each simply with oil, salt, and heat.", "Plate in quarters: protein, grain, double vegetables."},
				TimeMinutes:     30,
				CostEstimateUSD: 9,
				Ingredients:     []string{"protein of choice", "1 cup cooked grain", "2 cups vegetables", "olive oil"},
			},
			{
				Title:           "Leftover Remix Bowl",
				Steps:           []string{"Reheat leftovers in a hot pan.", "Add a fresh element: greens or herbs.", "Top with a fried egg and hot sauce."},
				TimeMinutes:     15,
				CostEstimateUSD: 4,
				Ingredients:     []string{"any leftovers", "handful of greens", "1 egg", "hot sauce"},
			},
		},
	}
}
