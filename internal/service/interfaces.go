package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/zeuskitchen/backend/internal/models"
	"github.com/zeuskitchen/backend/internal/types"
)

// ILLMService defines the generative pipeline operations
type ILLMService interface {
	GenerateRecipe(ctx context.Context, req types.AIRecipeRequest) (*types.RecipeData, error)
	GenerateMealPlan(ctx context.Context, req types.AIMealPlanRequest) (*types.GeneratedMealPlan, error)
	SavePlanDraft(ctx context.Context, userID string, plan *types.GeneratedMealPlan) (string, error)
	GetPlanDraft(ctx context.Context, id string) (*PlanDraft, error)
	DeletePlanDraft(ctx context.Context, id string) error
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, userID uuid.UUID, data *types.RecipeData, generated bool) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Recipe, error)
	ListRecipes(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, id, userID uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error
	SetRecipeImage(ctx context.Context, id, userID uuid.UUID, url string) error
	SearchRecipes(ctx context.Context, query string, limit, offset int) ([]models.Recipe, error)
	LikeRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	UnlikeRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	LikesCount(ctx context.Context, recipeID uuid.UUID) (int64, error)
	SaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	UnsaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	SavedRecipes(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)
}

// IMealPlanService defines the interface for meal plan operations
type IMealPlanService interface {
	CreateMealPlan(ctx context.Context, userID uuid.UUID, req *types.CreateMealPlanRequest) (*models.MealPlan, error)
	GetMealPlan(ctx context.Context, id, userID uuid.UUID) (*models.MealPlan, error)
	ListMealPlans(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.MealPlan, error)
	UpdateMealPlan(ctx context.Context, id, userID uuid.UUID, req *types.UpdateMealPlanRequest) (*models.MealPlan, error)
	DeleteMealPlan(ctx context.Context, id, userID uuid.UUID) error
	AddRecipeToSlot(ctx context.Context, planID, userID uuid.UUID, req *types.AddMealSlotRequest) (*models.MealPlan, error)
	GroceryList(ctx context.Context, planID, userID uuid.UUID) (*types.GroceryListResponse, error)
}

// IPantryService defines the interface for pantry operations
type IPantryService interface {
	AddItem(ctx context.Context, userID uuid.UUID, req *types.CreatePantryItemRequest) (*models.PantryItem, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]models.PantryItem, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	SnapshotNames(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error)
}

// IImageService defines the interface for image storage
type IImageService interface {
	UploadRecipeImage(ctx context.Context, imageData []byte, contentType string) (string, error)
}
