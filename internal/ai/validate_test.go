package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeuskitchen/backend/internal/types"
)

func baseRecipe() *types.RecipeData {
	return &types.RecipeData{
		Title:       "Test",
		Ingredients: []types.Ingredient{{Name: "salt", Quantity: "1", Unit: "tsp"}},
		Instructions: []types.InstructionStep{
			{Step: 1, Instruction: "Do the thing."},
		},
		Servings:   4,
		Difficulty: types.DifficultyMedium,
	}
}

func TestValidateRecipeData(t *testing.T) {
	t.Run("should accept a minimal valid recipe", func(t *testing.T) {
		assert.NoError(t, ValidateRecipeData(baseRecipe()))
	})

	t.Run("should reorder steps before checking consecutiveness", func(t *testing.T) {
		r := baseRecipe()
		r.Instructions = []types.InstructionStep{
			{Step: 3, Instruction: "c"},
			{Step: 1, Instruction: "a"},
			{Step: 2, Instruction: "b"},
		}

		require.NoError(t, ValidateRecipeData(r))
		assert.Equal(t, "a", r.Instructions[0].Instruction)
		assert.Equal(t, "c", r.Instructions[2].Instruction)
	})

	t.Run("should reject repeated step numbers", func(t *testing.T) {
		r := baseRecipe()
		r.Instructions = []types.InstructionStep{
			{Step: 1, Instruction: "a"},
			{Step: 1, Instruction: "b"},
		}

		var validationErr *ValidationError
		require.ErrorAs(t, ValidateRecipeData(r), &validationErr)
		assert.Equal(t, InvalidSteps, validationErr.Kind)
	})

	t.Run("should enforce field length bounds", func(t *testing.T) {
		r := baseRecipe()
		r.Ingredients[0].Name = strings.Repeat("x", MaxNameLen+1)

		var validationErr *ValidationError
		require.ErrorAs(t, ValidateRecipeData(r), &validationErr)
		assert.Equal(t, OutOfRange, validationErr.Kind)
	})

	t.Run("should reject empty ingredient names", func(t *testing.T) {
		r := baseRecipe()
		r.Ingredients[0].Name = "   "

		var validationErr *ValidationError
		require.ErrorAs(t, ValidateRecipeData(r), &validationErr)
		assert.Equal(t, MissingField, validationErr.Kind)
	})

	t.Run("should bound prep and cook time", func(t *testing.T) {
		r := baseRecipe()
		over := MaxMinutes + 1
		r.CookTime = &over

		var validationErr *ValidationError
		require.ErrorAs(t, ValidateRecipeData(r), &validationErr)
		assert.Equal(t, "cook_time", validationErr.Field)
	})

	t.Run("should reject an unknown difficulty", func(t *testing.T) {
		r := baseRecipe()
		r.Difficulty = "Extreme"

		var validationErr *ValidationError
		require.ErrorAs(t, ValidateRecipeData(r), &validationErr)
		assert.Equal(t, InvalidEnum, validationErr.Kind)
	})

	t.Run("should accept known meal types", func(t *testing.T) {
		r := baseRecipe()
		r.MealTypes = []string{"Breakfast", "Dinner", "Dessert"}

		assert.NoError(t, ValidateRecipeData(r))
	})

	t.Run("should reject an unknown meal type", func(t *testing.T) {
		r := baseRecipe()
		r.MealTypes = []string{"Dinner", "Brunch"}

		var validationErr *ValidationError
		require.ErrorAs(t, ValidateRecipeData(r), &validationErr)
		assert.Equal(t, InvalidEnum, validationErr.Kind)
		assert.Equal(t, "meal_type", validationErr.Field)
	})
}
