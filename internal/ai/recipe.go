package ai

import (
	"github.com/zeuskitchen/backend/internal/types"
)

// RecipeDefaults carries the request-supplied fallbacks applied when the
// model omits the corresponding field.
type RecipeDefaults struct {
	Servings int
	PrepTime *int
	CookTime *int
}

// SynthesizeRecipe validates and normalizes a decoded model response into a
// RecipeData value. The only repair rule is assigning missing step numbers
// as index+1; every other mismatch (wrong kind, unknown enum, out-of-range
// value) is a hard ValidationError. A partially valid recipe is never
// returned.
func SynthesizeRecipe(root Node, defaults RecipeDefaults) (*types.RecipeData, error) {
	if _, err := root.AsMapping(); err != nil {
		return nil, invalidType("response", "mapping")
	}

	// Required fields are checked up front so the error names the first
	// missing one, mirroring the direct-submission contract.
	for _, field := range []string{"title", "ingredients", "instructions"} {
		if _, ok := root.Get(field); !ok {
			return nil, missingField(field)
		}
	}

	title, err := fieldString(root, "title")
	if err != nil {
		return nil, err
	}
	description, err := optionalString(root, "description")
	if err != nil {
		return nil, err
	}

	ingredients, err := synthesizeIngredients(root)
	if err != nil {
		return nil, err
	}
	instructions, err := synthesizeInstructions(root)
	if err != nil {
		return nil, err
	}

	recipe := &types.RecipeData{
		Title:        title,
		Description:  description,
		Ingredients:  ingredients,
		Instructions: instructions,
		Servings:     defaults.Servings,
		PrepTime:     defaults.PrepTime,
		CookTime:     defaults.CookTime,
	}

	if servings, ok, err := optionalInt(root, "servings"); err != nil {
		return nil, err
	} else if ok {
		recipe.Servings = servings
	}
	if prep, ok, err := optionalInt(root, "prep_time"); err != nil {
		return nil, err
	} else if ok {
		recipe.PrepTime = &prep
	}
	if cook, ok, err := optionalInt(root, "cook_time"); err != nil {
		return nil, err
	} else if ok {
		recipe.CookTime = &cook
	}

	if recipe.CuisineType, err = optionalString(root, "cuisine_type"); err != nil {
		return nil, err
	}

	recipe.Difficulty = types.DifficultyMedium
	if raw, ok := root.Get("difficulty"); ok {
		s, err := raw.AsString()
		if err != nil {
			return nil, invalidType("difficulty", "string")
		}
		difficulty, ok := types.ParseDifficulty(s)
		if !ok {
			return nil, &ValidationError{Kind: InvalidEnum, Field: "difficulty", Message: "must be one of Easy, Medium, Hard"}
		}
		recipe.Difficulty = difficulty
	}

	if recipe.MealTypes, err = optionalStrings(root, "meal_type"); err != nil {
		return nil, err
	}
	if recipe.DietaryTags, err = optionalStrings(root, "dietary_tags"); err != nil {
		return nil, err
	}

	// Re-apply the full invariant set after field extraction. The tree may
	// satisfy the shape and still violate bounds or step numbering.
	if err := ValidateRecipeData(recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

func synthesizeIngredients(root Node) ([]types.Ingredient, error) {
	raw, _ := root.Get("ingredients")
	seq, err := raw.AsSequence()
	if err != nil {
		return nil, invalidType("ingredients", "sequence")
	}

	ingredients := make([]types.Ingredient, 0, len(seq))
	for _, entry := range seq {
		if _, err := entry.AsMapping(); err != nil {
			return nil, invalidType("ingredients", "sequence of mappings")
		}
		name, err := fieldString(entry, "name")
		if err != nil {
			return nil, err
		}
		quantity, err := optionalString(entry, "quantity")
		if err != nil {
			return nil, err
		}
		unit, err := optionalString(entry, "unit")
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, types.Ingredient{Name: name, Quantity: quantity, Unit: unit})
	}
	return ingredients, nil
}

func synthesizeInstructions(root Node) ([]types.InstructionStep, error) {
	raw, _ := root.Get("instructions")
	seq, err := raw.AsSequence()
	if err != nil {
		return nil, invalidType("instructions", "sequence")
	}

	instructions := make([]types.InstructionStep, 0, len(seq))
	for i, entry := range seq {
		if _, err := entry.AsMapping(); err != nil {
			return nil, invalidType("instructions", "sequence of mappings")
		}

		// Repair rule: a missing step number becomes index+1. A present
		// step of the wrong kind is still a hard failure.
		step := i + 1
		if rawStep, ok := entry.Get("step"); ok {
			if step, err = rawStep.AsInt(); err != nil {
				return nil, invalidType("step", "integer")
			}
		}

		text, err := fieldString(entry, "instruction")
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, types.InstructionStep{Step: step, Instruction: text})
	}
	return instructions, nil
}
