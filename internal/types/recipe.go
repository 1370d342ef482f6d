package types

import (
	"time"

	"github.com/google/uuid"
)

// DifficultyLevel is the fixed difficulty scale for recipes
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "Easy"
	DifficultyMedium DifficultyLevel = "Medium"
	DifficultyHard   DifficultyLevel = "Hard"
)

// ParseDifficulty maps a raw string onto the difficulty scale.
// The second return value reports whether the input was recognized.
func ParseDifficulty(s string) (DifficultyLevel, bool) {
	switch DifficultyLevel(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return DifficultyLevel(s), true
	}
	return "", false
}

// MealType tags a recipe with the meals it suits
type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnack     MealType = "Snack"
	MealTypeDessert   MealType = "Dessert"
)

// ParseMealType maps a raw string onto the meal type enum.
func ParseMealType(s string) (MealType, bool) {
	switch MealType(s) {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeDessert:
		return MealType(s), true
	}
	return "", false
}

// Ingredient is a single recipe ingredient. Immutable once part of a recipe.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// InstructionStep is one numbered step of a recipe. A recipe's steps must
// form the consecutive range 1..N.
type InstructionStep struct {
	Step        int    `json:"step"`
	Instruction string `json:"instruction"`
}

// RecipeData is a fully validated recipe as produced by the synthesizer or
// submitted by a user, before it is handed to storage.
type RecipeData struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Ingredients  []Ingredient      `json:"ingredients"`
	Instructions []InstructionStep `json:"instructions"`
	Servings     int               `json:"servings"`
	PrepTime     *int              `json:"prep_time,omitempty"`
	CookTime     *int              `json:"cook_time,omitempty"`
	CuisineType  string            `json:"cuisine_type,omitempty"`
	Difficulty   DifficultyLevel   `json:"difficulty"`
	MealTypes    []string          `json:"meal_type"`
	DietaryTags  []string          `json:"dietary_tags"`
}

// RecipeResponse is the caller-facing shape of a stored recipe
type RecipeResponse struct {
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"user_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	ImageURL     string            `json:"image_url,omitempty"`
	Ingredients  []Ingredient      `json:"ingredients"`
	Instructions []InstructionStep `json:"instructions"`
	Servings     int               `json:"servings"`
	PrepTime     *int              `json:"prep_time,omitempty"`
	CookTime     *int              `json:"cook_time,omitempty"`
	CuisineType  string            `json:"cuisine_type,omitempty"`
	Difficulty   string            `json:"difficulty"`
	MealTypes    []string          `json:"meal_type"`
	DietaryTags  []string          `json:"dietary_tags"`
	IsGenerated  bool              `json:"is_generated"`
	LikesCount   int64             `json:"likes_count"`
	CreatedAt    time.Time         `json:"created_at"`
}
