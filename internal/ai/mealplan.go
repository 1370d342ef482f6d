package ai

import (
	"github.com/zeuskitchen/backend/internal/types"
)

// SynthesizeMealPlan validates a decoded model response into a weekly meal
// plan payload. Absent days and slots are simply omitted (the model may
// return a partial week); an unrecognized day key is a hard error. The
// suggested-recipes list is derived from the filled slots in week/slot
// order, one entry per distinct recipe title.
func SynthesizeMealPlan(root Node) (*types.GeneratedMealPlan, error) {
	if _, err := root.AsMapping(); err != nil {
		return nil, invalidType("response", "mapping")
	}

	weekRaw, ok := root.Get("week_plan")
	if !ok {
		return nil, missingField("week_plan")
	}
	weekMap, err := weekRaw.AsMapping()
	if err != nil {
		return nil, invalidType("week_plan", "mapping")
	}

	week := make(map[string]types.DayMeals, len(weekMap))
	for day, dayNode := range weekMap {
		if dayNode.IsNull() {
			continue
		}
		dayMeals, err := synthesizeDay(day, dayNode)
		if err != nil {
			return nil, err
		}
		week[day] = dayMeals
	}

	normalized, err := ValidateMealDays(week)
	if err != nil {
		return nil, err
	}

	plan := &types.GeneratedMealPlan{
		WeekPlan:         normalized,
		SuggestedRecipes: collectSuggestions(normalized),
	}

	if plan.GroceryList, err = synthesizeGroceryLines(root); err != nil {
		return nil, err
	}
	if plan.Tips, err = optionalStrings(root, "tips"); err != nil {
		return nil, err
	}

	return plan, nil
}

func synthesizeDay(day string, dayNode Node) (types.DayMeals, error) {
	var meals types.DayMeals
	if _, err := dayNode.AsMapping(); err != nil {
		return meals, invalidType(day, "mapping")
	}

	for _, slot := range types.MealSlots {
		slotNode, ok := dayNode.Get(string(slot))
		if !ok {
			continue
		}
		if _, err := slotNode.AsMapping(); err != nil {
			return meals, invalidType(day+"."+string(slot), "mapping")
		}

		// Generated plans name the recipe via recipe_name; stored plans
		// round-tripping through the same validator use recipe_title.
		title, err := optionalString(slotNode, "recipe_name")
		if err != nil {
			return meals, err
		}
		if title == "" {
			if title, err = optionalString(slotNode, "recipe_title"); err != nil {
				return meals, err
			}
		}
		if title == "" {
			return meals, missingField(day + "." + string(slot) + ".recipe_name")
		}

		meal := &types.MealPlanMeal{RecipeTitle: title}
		if meal.Description, err = optionalString(slotNode, "description"); err != nil {
			return meals, err
		}
		if meal.RecipeID, err = optionalString(slotNode, "recipe_id"); err != nil {
			return meals, err
		}
		if servings, ok, err := optionalInt(slotNode, "servings"); err != nil {
			return meals, err
		} else if ok {
			meal.Servings = servings
		}

		meals.SetSlot(slot, meal)
	}

	return meals, nil
}

// collectSuggestions walks the normalized week in canonical day and slot
// order and returns one entry per distinct recipe title, first seen first.
func collectSuggestions(week map[string]types.DayMeals) []types.MealPlanMeal {
	seen := make(map[string]struct{})
	var suggestions []types.MealPlanMeal
	for _, day := range types.WeekDays {
		dayMeals, ok := week[day]
		if !ok {
			continue
		}
		for _, slot := range types.MealSlots {
			meal := dayMeals.Slot(slot)
			if meal == nil {
				continue
			}
			if _, dup := seen[meal.RecipeTitle]; dup {
				continue
			}
			seen[meal.RecipeTitle] = struct{}{}
			suggestions = append(suggestions, *meal)
		}
	}
	return suggestions
}

func synthesizeGroceryLines(root Node) ([]types.GroceryItem, error) {
	raw, ok := root.Get("grocery_list")
	if !ok {
		return nil, nil
	}
	seq, err := raw.AsSequence()
	if err != nil {
		return nil, invalidType("grocery_list", "sequence")
	}

	items := make([]types.GroceryItem, 0, len(seq))
	for _, entry := range seq {
		if _, err := entry.AsMapping(); err != nil {
			return nil, invalidType("grocery_list", "sequence of mappings")
		}
		item := types.GroceryItem{}
		if item.Name, err = optionalString(entry, "item"); err != nil {
			return nil, err
		}
		if item.Name == "" {
			if item.Name, err = fieldString(entry, "name"); err != nil {
				return nil, err
			}
		}
		if item.Quantity, err = optionalString(entry, "quantity"); err != nil {
			return nil, err
		}
		if item.Unit, err = optionalString(entry, "unit"); err != nil {
			return nil, err
		}
		if item.Category, err = optionalString(entry, "category"); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
