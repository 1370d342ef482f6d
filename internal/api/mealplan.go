package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zeuskitchen/backend/internal/middleware"
	"github.com/zeuskitchen/backend/internal/service"
	"github.com/zeuskitchen/backend/internal/types"
)

type MealPlanHandler struct {
	mealPlanService service.IMealPlanService
	authService     service.IAuthService
}

func NewMealPlanHandler(mealPlanService service.IMealPlanService, authService service.IAuthService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService, authService: authService}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	plans := router.Group("/mealplans", auth)
	{
		plans.GET("", h.ListMealPlans)
		plans.GET("/:id", h.GetMealPlan)
		plans.POST("", h.CreateMealPlan)
		plans.PUT("/:id", h.UpdateMealPlan)
		plans.DELETE("/:id", h.DeleteMealPlan)
		plans.POST("/:id/meals", h.AddRecipeToSlot)
		plans.GET("/:id/grocery-list", h.GroceryList)
	}
}

func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	plans, err := h.mealPlanService.ListMealPlans(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]types.MealPlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, plans[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"meal_plans": responses})
}

func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	plan, err := h.mealPlanService.GetMealPlan(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan.ToResponse())
}

func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.mealPlanService.CreateMealPlan(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan.ToResponse())
}

func (h *MealPlanHandler) UpdateMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.mealPlanService.UpdateMealPlan(c.Request.Context(), id, userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan.ToResponse())
}

func (h *MealPlanHandler) DeleteMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.mealPlanService.DeleteMealPlan(c.Request.Context(), id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal plan deleted"})
}

func (h *MealPlanHandler) AddRecipeToSlot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.AddMealSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.mealPlanService.AddRecipeToSlot(c.Request.Context(), id, userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan.ToResponse())
}

func (h *MealPlanHandler) GroceryList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := h.mealPlanService.GroceryList(c.Request.Context(), id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
