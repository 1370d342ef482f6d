package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeuskitchen/backend/internal/ai"
	"github.com/zeuskitchen/backend/internal/types"
)

func generatedRecipe() *types.RecipeData {
	return &types.RecipeData{
		Title:       "Lemon Herb Chicken",
		Description: "Bright and simple",
		Ingredients: []types.Ingredient{
			{Name: "chicken breast", Quantity: "2", Unit: "pieces"},
		},
		Instructions: []types.InstructionStep{
			{Step: 1, Instruction: "Marinate the chicken"},
			{Step: 2, Instruction: "Grill until done"},
		},
		Servings:   2,
		Difficulty: types.DifficultyEasy,
	}
}

func generatedPlan() *types.GeneratedMealPlan {
	return &types.GeneratedMealPlan{
		WeekPlan: map[string]types.DayMeals{
			"monday": {Dinner: &types.MealPlanMeal{RecipeTitle: "Lentil Soup"}},
		},
		SuggestedRecipes: []types.MealPlanMeal{{RecipeTitle: "Lentil Soup"}},
		GroceryList:      []types.GroceryItem{{Name: "lentils", Quantity: "500", Unit: "g"}},
		Tips:             []string{"Soak the lentils overnight"},
	}
}

func TestGenerateRecipePersistsResult(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.registerUser(t, "alice")
	env.llm.recipe = generatedRecipe()

	w := env.request(t, http.MethodPost, "/api/v1/ai/recipe", token, map[string]interface{}{
		"pantry_items": []string{"chicken breast", "lemon"},
		"servings":     2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Lemon Herb Chicken", resp.Title)
	assert.Equal(t, userID, resp.UserID)
	assert.True(t, resp.IsGenerated)

	// The recipe is now fetchable like any other.
	w = env.request(t, http.MethodGet, "/api/v1/recipes/"+resp.ID.String(), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateRecipeRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	env.llm.recipe = generatedRecipe()

	w := env.request(t, http.MethodPost, "/api/v1/ai/recipe", "", map[string]interface{}{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateRecipeUpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")
	env.llm.err = &ai.UpstreamError{Op: "chat completion"}

	w := env.request(t, http.MethodPost, "/api/v1/ai/recipe", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGenerateRecipeModelOutputInvalid(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")
	env.llm.err = &ai.ExtractionError{Reason: "no structured object found"}

	w := env.request(t, http.MethodPost, "/api/v1/ai/recipe", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGenerateMealPlanReturnsDraft(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")
	env.llm.plan = generatedPlan()

	w := env.request(t, http.MethodPost, "/api/v1/ai/mealplan", token, map[string]interface{}{
		"meals_per_day":   []string{"dinner"},
		"week_start_date": "2026-09-07T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		DraftID string `json:"draft_id"`
		Plan    struct {
			WeekPlan map[string]types.DayMeals `json:"week_plan"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.DraftID)
	require.Contains(t, resp.Plan.WeekPlan, "monday")
}

func TestSavePlanDraft(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")
	env.llm.plan = generatedPlan()

	w := env.request(t, http.MethodPost, "/api/v1/ai/mealplan", token, map[string]interface{}{
		"meals_per_day":   []string{"dinner"},
		"week_start_date": "2026-09-07T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var genResp struct {
		DraftID string `json:"draft_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &genResp))

	w = env.request(t, http.MethodPost, "/api/v1/ai/mealplan/drafts/"+genResp.DraftID+"/save", token,
		map[string]interface{}{
			"plan_name":       "September week",
			"week_start_date": "2026-09-07T00:00:00Z",
		})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var plan types.MealPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, "September week", plan.PlanName)
	require.Contains(t, plan.Meals, "monday")

	// Draft is consumed on save.
	w = env.request(t, http.MethodPost, "/api/v1/ai/mealplan/drafts/"+genResp.DraftID+"/save", token,
		map[string]interface{}{
			"plan_name":       "Again",
			"week_start_date": "2026-09-07T00:00:00Z",
		})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavePlanDraftForeignUser(t *testing.T) {
	env := newTestEnv(t)
	aliceToken, _ := env.registerUser(t, "alice")
	bobToken, _ := env.registerUser(t, "bob")
	env.llm.plan = generatedPlan()

	w := env.request(t, http.MethodPost, "/api/v1/ai/mealplan", aliceToken, map[string]interface{}{
		"meals_per_day":   []string{"dinner"},
		"week_start_date": "2026-09-07T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var genResp struct {
		DraftID string `json:"draft_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &genResp))

	w = env.request(t, http.MethodPost, "/api/v1/ai/mealplan/drafts/"+genResp.DraftID+"/save", bobToken,
		map[string]interface{}{
			"plan_name":       "Stolen week",
			"week_start_date": "2026-09-07T00:00:00Z",
		})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
