package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zeuskitchen/backend/internal/middleware"
	"github.com/zeuskitchen/backend/internal/models"
	"github.com/zeuskitchen/backend/internal/service"
	"github.com/zeuskitchen/backend/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
	authService   service.IAuthService
}

func NewRecipeHandler(recipeService service.IRecipeService, authService service.IAuthService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService, authService: authService}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/saved", auth, h.SavedRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", auth, h.CreateRecipe)
		recipes.PUT("/:id", auth, h.UpdateRecipe)
		recipes.DELETE("/:id", auth, h.DeleteRecipe)
		recipes.POST("/:id/like", auth, h.LikeRecipe)
		recipes.DELETE("/:id/like", auth, h.UnlikeRecipe)
		recipes.POST("/:id/save", auth, h.SaveRecipe)
		recipes.DELETE("/:id/save", auth, h.UnsaveRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var (
		recipes []models.Recipe
		err     error
	)
	if q := c.Query("q"); q != "" {
		recipes, err = h.recipeService.SearchRecipes(c.Request.Context(), q, limit, offset)
	} else {
		recipes, err = h.recipeService.ListRecipes(c.Request.Context(), nil, limit, offset)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": toRecipeResponses(recipes)})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	likes, err := h.recipeService.LikesCount(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe.ToResponse(likes))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), userID, recipeDataFromRequest(&req), false)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe.ToResponse(0))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	likes, err := h.recipeService.LikesCount(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe.ToResponse(likes))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

func (h *RecipeHandler) LikeRecipe(c *gin.Context) {
	h.socialAction(c, h.recipeService.LikeRecipe)
}

func (h *RecipeHandler) UnlikeRecipe(c *gin.Context) {
	h.socialAction(c, h.recipeService.UnlikeRecipe)
}

func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	h.socialAction(c, h.recipeService.SaveRecipe)
}

func (h *RecipeHandler) UnsaveRecipe(c *gin.Context) {
	h.socialAction(c, h.recipeService.UnsaveRecipe)
}

func (h *RecipeHandler) SavedRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipes, err := h.recipeService.SavedRecipes(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": toRecipeResponses(recipes)})
}

func (h *RecipeHandler) socialAction(c *gin.Context, action func(ctx context.Context, userID, recipeID uuid.UUID) error) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := action(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func toRecipeResponses(recipes []models.Recipe) []types.RecipeResponse {
	responses := make([]types.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		responses = append(responses, recipes[i].ToResponse(0))
	}
	return responses
}

func recipeDataFromRequest(req *types.CreateRecipeRequest) *types.RecipeData {
	servings := req.Servings
	if servings == 0 {
		servings = 4
	}
	difficulty := types.DifficultyLevel(req.Difficulty)
	if req.Difficulty == "" {
		difficulty = types.DifficultyMedium
	}
	return &types.RecipeData{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Servings:     servings,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		CuisineType:  req.CuisineType,
		Difficulty:   difficulty,
		MealTypes:    req.MealTypes,
		DietaryTags:  req.DietaryTags,
	}
}
