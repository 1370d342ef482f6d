package ai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeuskitchen/backend/internal/types"
)

// Field bounds shared by the synthesizer and the direct-submission path
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
	MaxNameLen        = 100
	MaxQuantityLen    = 50
	MaxUnitLen        = 20
	MaxInstructionLen = 500
	MinServings       = 1
	MaxServings       = 20
	MaxMinutes        = 480
)

// ValidateRecipeData checks the full set of recipe invariants. It is the
// single validator behind both synthesized and user-submitted recipes, so a
// recipe either passes completely or is never handed to storage.
//
// Instructions arriving out of order are reordered by step number before
// the consecutive-range check, so input ordering never matters.
func ValidateRecipeData(r *types.RecipeData) error {
	if strings.TrimSpace(r.Title) == "" {
		return missingField("title")
	}
	if len(r.Title) > MaxTitleLen {
		return &ValidationError{Kind: OutOfRange, Field: "title", Message: fmt.Sprintf("must be at most %d characters", MaxTitleLen)}
	}
	if len(r.Description) > MaxDescriptionLen {
		return &ValidationError{Kind: OutOfRange, Field: "description", Message: fmt.Sprintf("must be at most %d characters", MaxDescriptionLen)}
	}

	if len(r.Ingredients) == 0 {
		return &ValidationError{Kind: MissingField, Field: "ingredients", Message: "at least one ingredient is required"}
	}
	for i, ing := range r.Ingredients {
		field := fmt.Sprintf("ingredients[%d]", i)
		if strings.TrimSpace(ing.Name) == "" {
			return &ValidationError{Kind: MissingField, Field: field + ".name", Message: "ingredient name is required"}
		}
		if len(ing.Name) > MaxNameLen {
			return &ValidationError{Kind: OutOfRange, Field: field + ".name", Message: fmt.Sprintf("must be at most %d characters", MaxNameLen)}
		}
		if len(ing.Quantity) > MaxQuantityLen {
			return &ValidationError{Kind: OutOfRange, Field: field + ".quantity", Message: fmt.Sprintf("must be at most %d characters", MaxQuantityLen)}
		}
		if len(ing.Unit) > MaxUnitLen {
			return &ValidationError{Kind: OutOfRange, Field: field + ".unit", Message: fmt.Sprintf("must be at most %d characters", MaxUnitLen)}
		}
	}

	if len(r.Instructions) == 0 {
		return &ValidationError{Kind: MissingField, Field: "instructions", Message: "at least one instruction is required"}
	}
	sort.SliceStable(r.Instructions, func(i, j int) bool {
		return r.Instructions[i].Step < r.Instructions[j].Step
	})
	for i, inst := range r.Instructions {
		field := fmt.Sprintf("instructions[%d]", i)
		if inst.Step != i+1 {
			return &ValidationError{
				Kind:    InvalidSteps,
				Field:   "instructions",
				Message: fmt.Sprintf("steps must be numbered consecutively from 1, got %d at position %d", inst.Step, i+1),
			}
		}
		if strings.TrimSpace(inst.Instruction) == "" {
			return &ValidationError{Kind: MissingField, Field: field + ".instruction", Message: "instruction text is required"}
		}
		if len(inst.Instruction) > MaxInstructionLen {
			return &ValidationError{Kind: OutOfRange, Field: field + ".instruction", Message: fmt.Sprintf("must be at most %d characters", MaxInstructionLen)}
		}
	}

	if r.Servings < MinServings || r.Servings > MaxServings {
		return &ValidationError{Kind: OutOfRange, Field: "servings", Message: fmt.Sprintf("must be between %d and %d", MinServings, MaxServings)}
	}
	if r.PrepTime != nil && (*r.PrepTime < 0 || *r.PrepTime > MaxMinutes) {
		return &ValidationError{Kind: OutOfRange, Field: "prep_time", Message: fmt.Sprintf("must be between 0 and %d minutes", MaxMinutes)}
	}
	if r.CookTime != nil && (*r.CookTime < 0 || *r.CookTime > MaxMinutes) {
		return &ValidationError{Kind: OutOfRange, Field: "cook_time", Message: fmt.Sprintf("must be between 0 and %d minutes", MaxMinutes)}
	}

	if _, ok := types.ParseDifficulty(string(r.Difficulty)); !ok {
		return &ValidationError{Kind: InvalidEnum, Field: "difficulty", Message: "must be one of Easy, Medium, Hard"}
	}

	// Meal types are a closed enum, unlike dietary tags which stay free text.
	for _, mt := range r.MealTypes {
		if _, ok := types.ParseMealType(mt); !ok {
			return &ValidationError{Kind: InvalidEnum, Field: "meal_type", Message: "must be one of Breakfast, Lunch, Dinner, Snack, Dessert"}
		}
	}

	return nil
}

// ValidateMealDays checks every day key against the seven canonical
// weekday names, case-insensitively, and returns a copy of the map with
// keys normalized to lowercase. An unknown day is a hard error, never a
// silent drop. The same validator backs both model output and direct user
// input, so the two paths cannot drift apart.
func ValidateMealDays(meals map[string]types.DayMeals) (map[string]types.DayMeals, error) {
	normalized := make(map[string]types.DayMeals, len(meals))
	for day, dayMeals := range meals {
		key := strings.ToLower(strings.TrimSpace(day))
		if !isWeekDay(key) {
			return nil, &ValidationError{Kind: InvalidDay, Field: day, Message: "day must be one of the seven weekday names"}
		}
		normalized[key] = dayMeals
	}
	return normalized, nil
}

func isWeekDay(day string) bool {
	for _, d := range types.WeekDays {
		if day == d {
			return true
		}
	}
	return false
}
