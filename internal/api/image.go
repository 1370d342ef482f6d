package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeuskitchen/backend/internal/middleware"
	"github.com/zeuskitchen/backend/internal/service"
)

type ImageHandler struct {
	imageService  service.IImageService
	recipeService service.IRecipeService
	authService   service.IAuthService
}

func NewImageHandler(imageService service.IImageService, recipeService service.IRecipeService, authService service.IAuthService) *ImageHandler {
	return &ImageHandler{imageService: imageService, recipeService: recipeService, authService: authService}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)
	router.POST("/recipes/:id/image", auth, h.UploadRecipeImage)
}

// UploadRecipeImage accepts a multipart "image" file, stores it in S3 and
// records the URL on the recipe.
func (h *ImageHandler) UploadRecipeImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image file"})
		return
	}

	url, err := h.imageService.UploadRecipeImage(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.recipeService.SetRecipeImage(c.Request.Context(), id, userID, url); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
