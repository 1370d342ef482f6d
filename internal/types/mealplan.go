package types

import (
	"time"

	"github.com/google/uuid"
)

// MealSlot identifies one of the four meal slots in a day
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

// MealSlots lists the slots in serving order
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

// ValidSlot reports whether s names one of the four meal slots
func ValidSlot(s string) bool {
	switch MealSlot(s) {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	}
	return false
}

// WeekDays lists the canonical day keys in week order. Meal plan day keys
// are restricted to exactly these seven names.
var WeekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// MealPlanMeal assigns a recipe to a meal slot. Stored plans carry a
// RecipeID; AI-suggested slots carry only a title and description until the
// user saves the recipe.
type MealPlanMeal struct {
	RecipeID    string `json:"recipe_id,omitempty"`
	RecipeTitle string `json:"recipe_title"`
	Description string `json:"description,omitempty"`
	Servings    int    `json:"servings,omitempty"`
}

// DayMeals holds the slot assignments for a single day. Any slot may be nil.
type DayMeals struct {
	Breakfast *MealPlanMeal `json:"breakfast,omitempty"`
	Lunch     *MealPlanMeal `json:"lunch,omitempty"`
	Dinner    *MealPlanMeal `json:"dinner,omitempty"`
	Snack     *MealPlanMeal `json:"snack,omitempty"`
}

// Slot returns the assignment for the named slot, or nil
func (d DayMeals) Slot(slot MealSlot) *MealPlanMeal {
	switch slot {
	case SlotBreakfast:
		return d.Breakfast
	case SlotLunch:
		return d.Lunch
	case SlotDinner:
		return d.Dinner
	case SlotSnack:
		return d.Snack
	}
	return nil
}

// SetSlot replaces the assignment for the named slot
func (d *DayMeals) SetSlot(slot MealSlot, meal *MealPlanMeal) {
	switch slot {
	case SlotBreakfast:
		d.Breakfast = meal
	case SlotLunch:
		d.Lunch = meal
	case SlotDinner:
		d.Dinner = meal
	case SlotSnack:
		d.Snack = meal
	}
}

// MealPlanResponse is the caller-facing shape of a stored meal plan
type MealPlanResponse struct {
	ID            uuid.UUID           `json:"id"`
	UserID        uuid.UUID           `json:"user_id"`
	PlanName      string              `json:"plan_name"`
	WeekStartDate time.Time           `json:"week_start_date"`
	Meals         map[string]DayMeals `json:"meals"`
	CreatedAt     time.Time           `json:"created_at"`
}

// GeneratedMealPlan is the payload assembled from a model response: the
// week grid plus the extras the model returns alongside it.
type GeneratedMealPlan struct {
	WeekPlan         map[string]DayMeals `json:"week_plan"`
	SuggestedRecipes []MealPlanMeal      `json:"suggested_recipes"`
	GroceryList      []GroceryItem       `json:"grocery_list"`
	Tips             []string            `json:"tips"`
}
