package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeuskitchen/backend/internal/types"
)

func recipePayload(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":       title,
		"description": "A quick weeknight dish",
		"ingredients": []map[string]string{
			{"name": "spaghetti", "quantity": "200", "unit": "g"},
			{"name": "eggs", "quantity": "2", "unit": "pieces"},
		},
		"instructions": []map[string]interface{}{
			{"step": 1, "instruction": "Boil the pasta"},
			{"step": 2, "instruction": "Mix in the eggs off the heat"},
		},
		"servings":  2,
		"meal_type": []string{"Dinner"},
	}
}

func createRecipe(t *testing.T, env *testEnv, token, title string) types.RecipeResponse {
	t.Helper()

	w := env.request(t, http.MethodPost, "/api/v1/recipes", token, recipePayload(title))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateAndGetRecipe(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.registerUser(t, "alice")

	created := createRecipe(t, env, token, "Spaghetti Carbonara")
	assert.Equal(t, userID, created.UserID)
	assert.False(t, created.IsGenerated)

	w := env.request(t, http.MethodGet, "/api/v1/recipes/"+created.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Spaghetti Carbonara", got.Title)
	assert.Len(t, got.Ingredients, 2)
}

func TestCreateRecipeRejectsBrokenSteps(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")

	payload := recipePayload("Broken")
	payload["instructions"] = []map[string]interface{}{
		{"step": 1, "instruction": "Start"},
		{"step": 3, "instruction": "Skipped"},
	}

	w := env.request(t, http.MethodPost, "/api/v1/recipes", token, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_steps", resp["kind"])
}

func TestUpdateRecipeForbiddenForNonOwner(t *testing.T) {
	env := newTestEnv(t)
	ownerToken, _ := env.registerUser(t, "alice")
	intruderToken, _ := env.registerUser(t, "bob")

	created := createRecipe(t, env, ownerToken, "Private")

	w := env.request(t, http.MethodPut, "/api/v1/recipes/"+created.ID.String(), intruderToken,
		map[string]string{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetUnknownRecipe(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/recipes/00000000-0000-0000-0000-000000000001", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/recipes/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAndSearchRecipes(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")

	createRecipe(t, env, token, "Spaghetti Carbonara")
	createRecipe(t, env, token, "Chicken Curry")
	createRecipe(t, env, token, "Spaghetti Bolognese")

	w := env.request(t, http.MethodGet, "/api/v1/recipes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Recipes []types.RecipeResponse `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Recipes, 3)

	w = env.request(t, http.MethodGet, "/api/v1/recipes?q=curry", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Recipes, 1)
	assert.Equal(t, "Chicken Curry", listResp.Recipes[0].Title)

	// Search honors the same limit/offset paging as the plain list.
	w = env.request(t, http.MethodGet, "/api/v1/recipes?q=spaghetti&limit=1&offset=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Recipes, 1)

	w = env.request(t, http.MethodGet, "/api/v1/recipes?q=spaghetti&offset=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Recipes)
}

func TestLikeAndSaveRecipe(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.registerUser(t, "alice")
	created := createRecipe(t, env, token, "Popular")
	base := fmt.Sprintf("/api/v1/recipes/%s", created.ID)

	w := env.request(t, http.MethodPost, base+"/like", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.request(t, http.MethodPost, base+"/like", token, nil)
	require.Equal(t, http.StatusOK, w.Code, "liking twice stays idempotent")

	w = env.request(t, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.LikesCount)

	w = env.request(t, http.MethodPost, base+"/save", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/recipes/saved", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var savedResp struct {
		Recipes []types.RecipeResponse `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &savedResp))
	assert.Len(t, savedResp.Recipes, 1)
}
