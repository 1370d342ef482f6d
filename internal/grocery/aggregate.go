package grocery

import (
	"strings"

	"github.com/zeuskitchen/backend/internal/types"
)

// ingredientKey is the dedup key for grocery lines: lowercased name paired
// with the unit as written.
type ingredientKey struct {
	name string
	unit string
}

// ReferencedRecipeIDs collects the distinct recipe ids referenced by any
// filled slot, walking days in canonical week order and slots in serving
// order so the result is deterministic.
func ReferencedRecipeIDs(meals map[string]types.DayMeals) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, day := range types.WeekDays {
		dayMeals, ok := meals[day]
		if !ok {
			continue
		}
		for _, slot := range types.MealSlots {
			meal := dayMeals.Slot(slot)
			if meal == nil || meal.RecipeID == "" {
				continue
			}
			if _, dup := seen[meal.RecipeID]; dup {
				continue
			}
			seen[meal.RecipeID] = struct{}{}
			ids = append(ids, meal.RecipeID)
		}
	}
	return ids
}

// BuildList merges the ingredient lists of every recipe a meal plan
// references into one deduplicated, categorized shopping list. A plan with
// no filled slots yields an empty list, not an error.
//
// When two recipes want the same (name, unit) pair in different quantities
// the first-seen quantity stands; reconciling "2 cups" with "500 ml" is
// unit-aware summation, which this engine deliberately does not attempt.
func BuildList(meals map[string]types.DayMeals, ingredientsByRecipe map[string][]types.Ingredient, pantry map[string]struct{}) types.GroceryList {
	items := []types.GroceryItem{}
	seen := make(map[ingredientKey]struct{})

	for _, recipeID := range ReferencedRecipeIDs(meals) {
		for _, ing := range ingredientsByRecipe[recipeID] {
			lowered := strings.ToLower(ing.Name)
			key := ingredientKey{name: lowered, unit: ing.Unit}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			// Pantry overlap is exact lowered-name membership, no fuzzy
			// or substring matching.
			_, havePantry := pantry[lowered]

			items = append(items, types.GroceryItem{
				Name:         ing.Name,
				Quantity:     ing.Quantity,
				Unit:         ing.Unit,
				Category:     Categorize(ing.Name),
				HaveInPantry: havePantry,
			})
		}
	}

	// Single stable pass: category buckets preserve first-seen order.
	byCategory := make(map[string][]types.GroceryItem)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	return types.GroceryList{Items: items, ItemsByCategory: byCategory}
}
