package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/zeuskitchen/backend/config"
	"github.com/zeuskitchen/backend/internal/middleware"
	"github.com/zeuskitchen/backend/internal/service"
)

// Dependencies carries the shared infrastructure the handlers are built on.
type Dependencies struct {
	DB        *gorm.DB
	Redis     *redis.Client
	JWTSecret string
	S3        *config.S3Config
}

// SetupAPI wires services and handlers onto /api/v1.
func SetupAPI(router *gin.Engine, deps Dependencies) {
	v1 := router.Group("/api/v1")

	authService := service.NewAuthService(deps.DB, deps.JWTSecret)
	recipeService := service.NewRecipeService(deps.DB)
	pantryService := service.NewPantryService(deps.DB)
	mealPlanService := service.NewMealPlanService(deps.DB, recipeService, pantryService)

	NewAuthHandler(authService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService, authService).RegisterRoutes(v1)
	NewMealPlanHandler(mealPlanService, authService).RegisterRoutes(v1)
	NewPantryHandler(pantryService, authService).RegisterRoutes(v1)

	if deps.S3 != nil {
		NewImageHandler(service.NewImageService(deps.S3), recipeService, authService).RegisterRoutes(v1)
	}

	llmService, err := service.NewLLMService(deps.Redis)
	if err != nil {
		log.Printf("AI generation disabled: %v", err)
		return
	}
	limiter := middleware.NewRateLimiter(deps.Redis, middleware.GenerationRateLimit)
	NewAIHandler(llmService, recipeService, mealPlanService, authService, limiter).RegisterRoutes(v1)
}
