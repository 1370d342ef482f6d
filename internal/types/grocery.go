package types

import (
	"time"

	"github.com/google/uuid"
)

// GroceryItem is one line of an aggregated shopping list. Uniqueness is on
// the (lowercased name, unit) pair; the quantity is the first one seen for
// that pair, not a sum.
type GroceryItem struct {
	Name         string `json:"name"`
	Quantity     string `json:"quantity"`
	Unit         string `json:"unit"`
	Category     string `json:"category"`
	HaveInPantry bool   `json:"have_in_pantry"`
}

// GroceryList pairs the flat first-seen-order list with its per-category
// buckets. Bucket order within a category follows the flat list.
type GroceryList struct {
	Items           []GroceryItem            `json:"items"`
	ItemsByCategory map[string][]GroceryItem `json:"items_by_category"`
}

// GroceryListResponse is the caller-facing grocery list for a meal plan
type GroceryListResponse struct {
	MealPlanID      uuid.UUID                `json:"meal_plan_id"`
	MealPlanName    string                   `json:"meal_plan_name"`
	WeekStartDate   time.Time                `json:"week_start_date"`
	Items           []GroceryItem            `json:"items"`
	ItemsByCategory map[string][]GroceryItem `json:"items_by_category"`
}
