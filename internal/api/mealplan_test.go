package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeuskitchen/backend/internal/types"
)

func createMealPlan(t *testing.T, env *testEnv, token string, meals map[string]interface{}) types.MealPlanResponse {
	t.Helper()

	w := env.request(t, http.MethodPost, "/api/v1/mealplans", token, map[string]interface{}{
		"plan_name":       "Test week",
		"week_start_date": "2026-09-07T00:00:00Z",
		"meals":           meals,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.MealPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateMealPlanNormalizesDays(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")

	plan := createMealPlan(t, env, token, map[string]interface{}{
		"Monday": map[string]interface{}{
			"dinner": map[string]interface{}{"recipe_title": "Carbonara"},
		},
	})

	require.Contains(t, plan.Meals, "monday")
	assert.Equal(t, "Carbonara", plan.Meals["monday"].Dinner.RecipeTitle)
}

func TestCreateMealPlanRejectsUnknownDay(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")

	w := env.request(t, http.MethodPost, "/api/v1/mealplans", token, map[string]interface{}{
		"plan_name":       "Bad week",
		"week_start_date": "2026-09-07T00:00:00Z",
		"meals": map[string]interface{}{
			"funday": map[string]interface{}{
				"dinner": map[string]interface{}{"recipe_title": "Anything"},
			},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_day", resp["kind"])
}

func TestMealPlansAreScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	ownerToken, _ := env.registerUser(t, "alice")
	intruderToken, _ := env.registerUser(t, "bob")

	plan := createMealPlan(t, env, ownerToken, map[string]interface{}{})

	w := env.request(t, http.MethodGet, "/api/v1/mealplans/"+plan.ID.String(), intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddRecipeToSlotAndGroceryList(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")

	recipe := createRecipe(t, env, token, "Carbonara")
	plan := createMealPlan(t, env, token, map[string]interface{}{})

	w := env.request(t, http.MethodPost, "/api/v1/mealplans/"+plan.ID.String()+"/meals", token,
		map[string]interface{}{
			"day":       "monday",
			"slot":      "dinner",
			"recipe_id": recipe.ID.String(),
		})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated types.MealPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.NotNil(t, updated.Meals["monday"].Dinner)
	assert.Equal(t, recipe.ID.String(), updated.Meals["monday"].Dinner.RecipeID)

	// Pantry item should be flagged on the grocery list.
	w = env.request(t, http.MethodPost, "/api/v1/pantry", token, map[string]string{"item_name": "eggs"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/mealplans/"+plan.ID.String()+"/grocery-list", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var list types.GroceryListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, plan.ID, list.MealPlanID)
	require.Len(t, list.Items, 2)

	byName := map[string]types.GroceryItem{}
	for _, item := range list.Items {
		byName[item.Name] = item
	}
	assert.True(t, byName["eggs"].HaveInPantry)
	assert.False(t, byName["spaghetti"].HaveInPantry)
}

func TestAddRecipeToUnknownSlot(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")

	recipe := createRecipe(t, env, token, "Carbonara")
	plan := createMealPlan(t, env, token, map[string]interface{}{})

	w := env.request(t, http.MethodPost, "/api/v1/mealplans/"+plan.ID.String()+"/meals", token,
		map[string]interface{}{
			"day":       "monday",
			"slot":      "brunch",
			"recipe_id": recipe.ID.String(),
		})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_enum", resp["kind"])
}

func TestDeleteMealPlan(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")

	plan := createMealPlan(t, env, token, map[string]interface{}{})

	w := env.request(t, http.MethodDelete, "/api/v1/mealplans/"+plan.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/mealplans/"+plan.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
