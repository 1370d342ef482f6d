package ai

import (
	"fmt"
	"strings"

	"github.com/zeuskitchen/backend/internal/types"
)

// recipeFormat is the structured-object shape the model is asked to return
// for a single recipe.
const recipeFormat = `{
    "title": "Recipe Name",
    "description": "Brief description of the dish",
    "ingredients": [
        {"name": "ingredient name", "quantity": "amount", "unit": "measurement unit"}
    ],
    "instructions": [
        {"step": 1, "instruction": "detailed instruction"},
        {"step": 2, "instruction": "detailed instruction"}
    ],
    "servings": 4,
    "prep_time": 15,
    "cook_time": 30,
    "cuisine_type": "cuisine name",
    "difficulty": "Easy/Medium/Hard",
    "meal_type": ["Breakfast/Lunch/Dinner/Snack"],
    "dietary_tags": ["Vegetarian", "Gluten-Free"]
}`

// mealPlanFormat is the structured-object shape for a weekly plan.
const mealPlanFormat = `{
    "week_plan": {
        "monday": {
            "breakfast": {"recipe_name": "name", "description": "brief desc"},
            "lunch": {"recipe_name": "name", "description": "brief desc"},
            "dinner": {"recipe_name": "name", "description": "brief desc"},
            "snack": null
        }
    },
    "grocery_list": [
        {"item": "ingredient name", "quantity": "amount", "category": "Produce/Dairy/etc"}
    ],
    "tips": [
        "Meal prep tip 1",
        "Meal prep tip 2"
    ]
}`

// BuildRecipePrompt deterministically renders a generation request into the
// instruction string sent to the model. Same request, same prompt.
func BuildRecipePrompt(req types.AIRecipeRequest) string {
	var b strings.Builder

	b.WriteString("Please generate a detailed recipe based on the following preferences:\n\n")
	fmt.Fprintf(&b, "Available ingredients (pantry items): %s\n", joinOr(req.PantryItems, "None specified"))
	fmt.Fprintf(&b, "Cuisine preference: %s\n", stringOr(req.CuisinePreference, "Any"))
	fmt.Fprintf(&b, "Dietary restrictions: %s\n", joinOr(req.DietaryRestrictions, "None"))
	fmt.Fprintf(&b, "Cooking skill level: %s\n", stringOr(req.CookingSkill, "intermediate"))
	if req.MaxPrepTime != nil {
		fmt.Fprintf(&b, "Maximum prep time: %d minutes\n", *req.MaxPrepTime)
	} else {
		b.WriteString("Maximum prep time: No limit\n")
	}
	fmt.Fprintf(&b, "Servings: %d\n", req.Servings)
	fmt.Fprintf(&b, "Meal type: %s\n", stringOr(req.MealType, "Any"))
	fmt.Fprintf(&b, "Additional preferences: %s\n", stringOr(req.AdditionalPreferences, "None"))

	b.WriteString("\nPlease respond with a JSON object in this exact format:\n")
	b.WriteString(recipeFormat)
	b.WriteString(`

Guidelines:
1. Use the pantry items when possible
2. Respect dietary restrictions completely
3. Match the cooking skill level - simpler for beginners
4. Stay within the prep time limit if specified
5. Make instructions clear and detailed
6. Include realistic cooking times
7. Suggest appropriate cuisine type and meal type
8. Add relevant dietary tags
`)

	return b.String()
}

// BuildMealPlanPrompt deterministically renders a weekly-plan request into
// the instruction string sent to the model.
func BuildMealPlanPrompt(req types.AIMealPlanRequest) string {
	slots := make([]string, len(req.MealsPerDay))
	for i, slot := range req.MealsPerDay {
		slots[i] = string(slot)
	}

	var b strings.Builder

	b.WriteString("Please generate a weekly meal plan based on these preferences:\n\n")
	fmt.Fprintf(&b, "Meals per day: %s\n", strings.Join(slots, ", "))
	fmt.Fprintf(&b, "Week starting: %s\n", req.WeekStartDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Goals: %s\n", joinOr(req.Goals, "None"))
	fmt.Fprintf(&b, "Dietary preferences: %s\n", joinOr(req.DietaryPreferences, "None"))
	fmt.Fprintf(&b, "Cuisine preferences: %s\n", joinOr(req.CuisinePreferences, "Any"))
	fmt.Fprintf(&b, "Cooking skill: %s\n", stringOr(req.CookingSkill, "intermediate"))
	fmt.Fprintf(&b, "Available pantry items: %s\n", joinOr(req.PantryItems, "None"))
	fmt.Fprintf(&b, "Servings per meal: %d\n", req.ServingsPerMeal)

	b.WriteString("\nPlease respond with a JSON object in this exact format, continuing week_plan for all 7 days:\n")
	b.WriteString(mealPlanFormat)
	b.WriteString(`

Guidelines:
1. Create varied, balanced meals
2. Consider meal prep opportunities (batch cooking)
3. Use pantry items when possible
4. Respect dietary preferences completely
5. Match cooking skill level
6. Include only requested meal types
7. Generate a comprehensive grocery list
8. Add helpful meal prep tips
`)

	return b.String()
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
