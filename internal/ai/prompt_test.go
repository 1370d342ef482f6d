package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zeuskitchen/backend/internal/types"
)

func TestBuildRecipePrompt(t *testing.T) {
	maxPrep := 30
	req := types.AIRecipeRequest{
		PantryItems:         []string{"rice", "chicken"},
		CuisinePreference:   "Thai",
		DietaryRestrictions: []string{"gluten-free"},
		CookingSkill:        "beginner",
		MaxPrepTime:         &maxPrep,
		Servings:            2,
		MealType:            "Dinner",
	}

	prompt := BuildRecipePrompt(req)

	assert.Contains(t, prompt, "rice, chicken")
	assert.Contains(t, prompt, "Cuisine preference: Thai")
	assert.Contains(t, prompt, "Maximum prep time: 30 minutes")
	assert.Contains(t, prompt, "Servings: 2")
	assert.Contains(t, prompt, `"instructions"`)
	assert.Contains(t, prompt, `"difficulty": "Easy/Medium/Hard"`)

	t.Run("should be deterministic", func(t *testing.T) {
		assert.Equal(t, prompt, BuildRecipePrompt(req))
	})

	t.Run("should render fallbacks for empty preferences", func(t *testing.T) {
		p := BuildRecipePrompt(types.AIRecipeRequest{Servings: 4})
		assert.Contains(t, p, "None specified")
		assert.Contains(t, p, "Cuisine preference: Any")
		assert.Contains(t, p, "Maximum prep time: No limit")
		assert.Contains(t, p, "Cooking skill level: intermediate")
	})
}

func TestBuildMealPlanPrompt(t *testing.T) {
	req := types.AIMealPlanRequest{
		MealsPerDay:        []types.MealSlot{types.SlotBreakfast, types.SlotDinner},
		WeekStartDate:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Goals:              []string{"budget-friendly"},
		DietaryPreferences: []string{"vegetarian"},
		ServingsPerMeal:    3,
	}

	prompt := BuildMealPlanPrompt(req)

	assert.Contains(t, prompt, "breakfast, dinner")
	assert.Contains(t, prompt, "Week starting: 2025-06-02")
	assert.Contains(t, prompt, "budget-friendly")
	assert.Contains(t, prompt, "vegetarian")
	assert.Contains(t, prompt, `"week_plan"`)
	assert.Contains(t, prompt, `"grocery_list"`)

	t.Run("should be deterministic", func(t *testing.T) {
		assert.Equal(t, prompt, BuildMealPlanPrompt(req))
	})
}
