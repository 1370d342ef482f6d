package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zeuskitchen/backend/internal/middleware"
	"github.com/zeuskitchen/backend/internal/service"
	"github.com/zeuskitchen/backend/internal/types"
)

// AIHandler exposes the generative endpoints: recipe synthesis and weekly
// meal plan synthesis.
type AIHandler struct {
	llmService      service.ILLMService
	recipeService   service.IRecipeService
	mealPlanService service.IMealPlanService
	authService     service.IAuthService
	limiter         *middleware.RateLimiter
}

func NewAIHandler(
	llmService service.ILLMService,
	recipeService service.IRecipeService,
	mealPlanService service.IMealPlanService,
	authService service.IAuthService,
	limiter *middleware.RateLimiter,
) *AIHandler {
	return &AIHandler{
		llmService:      llmService,
		recipeService:   recipeService,
		mealPlanService: mealPlanService,
		authService:     authService,
		limiter:         limiter,
	}
}

func (h *AIHandler) RegisterRoutes(router *gin.RouterGroup) {
	handlers := []gin.HandlerFunc{middleware.AuthMiddleware(h.authService)}
	if h.limiter != nil {
		handlers = append(handlers, h.limiter.Middleware())
	}

	generate := router.Group("/ai", handlers...)
	{
		generate.POST("/recipe", h.GenerateRecipe)
		generate.POST("/mealplan", h.GenerateMealPlan)
		generate.POST("/mealplan/drafts/:draftID/save", h.SavePlanDraft)
	}
}

// GenerateRecipe runs the recipe pipeline and persists the validated result
// as a generated recipe owned by the caller.
func (h *AIHandler) GenerateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.AIRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.llmService.GenerateRecipe(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), userID, data, true)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe.ToResponse(0))
}

// GenerateMealPlan runs the meal plan pipeline. The generated plan is kept
// as a draft so the caller can review it before saving.
func (h *AIHandler) GenerateMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.AIMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.llmService.GenerateMealPlan(c.Request.Context(), req)
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	draftID, err := h.llmService.SavePlanDraft(c.Request.Context(), userID.String(), plan)
	if err != nil {
		// The plan is still usable even if the draft store is down.
		c.JSON(http.StatusOK, gin.H{"plan": plan})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft_id": draftID, "plan": plan})
}

type savePlanDraftRequest struct {
	PlanName      string    `json:"plan_name" binding:"required,max=100"`
	WeekStartDate time.Time `json:"week_start_date" binding:"required"`
}

// SavePlanDraft persists a previously generated draft as a stored meal plan.
func (h *AIHandler) SavePlanDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req savePlanDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.llmService.GetPlanDraft(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found or expired"})
		return
	}
	if draft.UserID != userID.String() {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	plan, err := h.mealPlanService.CreateMealPlan(c.Request.Context(), userID, &types.CreateMealPlanRequest{
		PlanName:      req.PlanName,
		WeekStartDate: req.WeekStartDate,
		Meals:         draft.Plan.WeekPlan,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Draft cleanup is best effort.
	_ = h.llmService.DeletePlanDraft(c.Request.Context(), draft.ID)

	c.JSON(http.StatusCreated, plan.ToResponse())
}
