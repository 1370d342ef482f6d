package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeuskitchen/backend/internal/middleware"
	"github.com/zeuskitchen/backend/internal/service"
	"github.com/zeuskitchen/backend/internal/types"
)

type PantryHandler struct {
	pantryService service.IPantryService
	authService   service.IAuthService
}

func NewPantryHandler(pantryService service.IPantryService, authService service.IAuthService) *PantryHandler {
	return &PantryHandler{pantryService: pantryService, authService: authService}
}

func (h *PantryHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	pantry := router.Group("/pantry", auth)
	{
		pantry.GET("", h.ListItems)
		pantry.POST("", h.AddItem)
		pantry.DELETE("/:id", h.RemoveItem)
	}
}

func (h *PantryHandler) ListItems(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	items, err := h.pantryService.ListItems(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *PantryHandler) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreatePantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.pantryService.AddItem(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *PantryHandler) RemoveItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.pantryService.RemoveItem(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}
