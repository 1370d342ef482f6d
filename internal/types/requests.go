package types

import "time"

// CreateRecipeRequest is the request body for creating a recipe directly
type CreateRecipeRequest struct {
	Title        string            `json:"title" binding:"required,max=200"`
	Description  string            `json:"description" binding:"max=1000"`
	Ingredients  []Ingredient      `json:"ingredients" binding:"required"`
	Instructions []InstructionStep `json:"instructions" binding:"required"`
	Servings     int               `json:"servings"`
	PrepTime     *int              `json:"prep_time"`
	CookTime     *int              `json:"cook_time"`
	CuisineType  string            `json:"cuisine_type" binding:"max=50"`
	Difficulty   string            `json:"difficulty"`
	MealTypes    []string          `json:"meal_type"`
	DietaryTags  []string          `json:"dietary_tags"`
}

// UpdateRecipeRequest is the request body for updating a recipe. Nil fields
// are left untouched.
type UpdateRecipeRequest struct {
	Title        *string            `json:"title"`
	Description  *string            `json:"description"`
	Ingredients  []Ingredient       `json:"ingredients"`
	Instructions []InstructionStep  `json:"instructions"`
	Servings     *int               `json:"servings"`
	PrepTime     *int               `json:"prep_time"`
	CookTime     *int               `json:"cook_time"`
	CuisineType  *string            `json:"cuisine_type"`
	Difficulty   *string            `json:"difficulty"`
	MealTypes    []string           `json:"meal_type"`
	DietaryTags  []string           `json:"dietary_tags"`
}

// AIRecipeRequest carries the preferences a recipe is generated from
type AIRecipeRequest struct {
	PantryItems           []string `json:"pantry_items"`
	CuisinePreference     string   `json:"cuisine_preference"`
	DietaryRestrictions   []string `json:"dietary_restrictions"`
	CookingSkill          string   `json:"cooking_skill" binding:"omitempty,oneof=beginner intermediate advanced"`
	MaxPrepTime           *int     `json:"max_prep_time" binding:"omitempty,min=5,max=240"`
	Servings              int      `json:"servings" binding:"omitempty,min=1,max=12"`
	MealType              string   `json:"meal_type"`
	AdditionalPreferences string   `json:"additional_preferences" binding:"max=500"`
}

// AIMealPlanRequest carries the preferences a weekly plan is generated from
type AIMealPlanRequest struct {
	MealsPerDay        []MealSlot `json:"meals_per_day" binding:"required,min=1"`
	WeekStartDate      time.Time  `json:"week_start_date" binding:"required"`
	Goals              []string   `json:"goals"`
	DietaryPreferences []string   `json:"dietary_preferences"`
	CuisinePreferences []string   `json:"cuisine_preferences"`
	CookingSkill       string     `json:"cooking_skill" binding:"omitempty,oneof=beginner intermediate advanced"`
	PantryItems        []string   `json:"pantry_items"`
	ServingsPerMeal    int        `json:"servings_per_meal" binding:"omitempty,min=1,max=12"`
}

// CreateMealPlanRequest is the request body for creating a meal plan
type CreateMealPlanRequest struct {
	PlanName      string              `json:"plan_name" binding:"required,max=100"`
	WeekStartDate time.Time           `json:"week_start_date" binding:"required"`
	Meals         map[string]DayMeals `json:"meals" binding:"required"`
}

// UpdateMealPlanRequest is the request body for updating a meal plan
type UpdateMealPlanRequest struct {
	PlanName      *string             `json:"plan_name"`
	WeekStartDate *time.Time          `json:"week_start_date"`
	Meals         map[string]DayMeals `json:"meals"`
}

// AddMealSlotRequest assigns a recipe to one slot of a stored plan
type AddMealSlotRequest struct {
	Day      string `json:"day" binding:"required"`
	Slot     string `json:"slot" binding:"required"`
	RecipeID string `json:"recipe_id" binding:"required"`
	Servings int    `json:"servings" binding:"omitempty,min=1,max=20"`
}

// CreatePantryItemRequest adds an item to the user's pantry
type CreatePantryItemRequest struct {
	ItemName string `json:"item_name" binding:"required,max=100"`
	Quantity string `json:"quantity" binding:"max=50"`
	Unit     string `json:"unit" binding:"max=20"`
}
