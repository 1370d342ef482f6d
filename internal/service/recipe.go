package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zeuskitchen/backend/internal/ai"
	"github.com/zeuskitchen/backend/internal/models"
	"github.com/zeuskitchen/backend/internal/types"
)

// ErrNotOwner is returned when a user tries to modify a resource that
// belongs to someone else.
var ErrNotOwner = errors.New("resource does not belong to user")

// RecipeService handles recipe persistence, search and social actions.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe validates the recipe data and persists it. Nothing is written
// when validation fails.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, data *types.RecipeData, generated bool) (*models.Recipe, error) {
	if err := ai.ValidateRecipeData(data); err != nil {
		return nil, err
	}

	recipe := models.FromRecipeData(data, userID, generated)
	recipe.Embedding = GenerateEmbedding(data.Title + " " + data.Description)

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// GetRecipe fetches a single recipe by id.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipesByIDs fetches the recipes for the given ids. Ids with no matching
// recipe are silently absent from the result.
func (s *RecipeService) GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Recipe, error) {
	if len(ids) == 0 {
		return []models.Recipe{}, nil
	}
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}
	return recipes, nil
}

// ListRecipes returns recipes ordered newest first. When userID is non-nil
// only that user's recipes are returned.
func (s *RecipeService) ListRecipes(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]models.Recipe, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// UpdateRecipe applies a partial update after checking ownership. The merged
// recipe is re-validated before it is written.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id, userID uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Ingredients != nil {
		recipe.Ingredients = models.JSONBIngredients(req.Ingredients)
	}
	if req.Instructions != nil {
		recipe.Instructions = models.JSONBInstructions(req.Instructions)
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}
	if req.PrepTime != nil {
		recipe.PrepTime = req.PrepTime
	}
	if req.CookTime != nil {
		recipe.CookTime = req.CookTime
	}
	if req.CuisineType != nil {
		recipe.CuisineType = *req.CuisineType
	}
	if req.Difficulty != nil {
		recipe.Difficulty = *req.Difficulty
	}
	if req.MealTypes != nil {
		recipe.MealTypes = req.MealTypes
	}
	if req.DietaryTags != nil {
		recipe.DietaryTags = req.DietaryTags
	}

	if err := ai.ValidateRecipeData(recipe.Data()); err != nil {
		return nil, err
	}

	recipe.Embedding = GenerateEmbedding(recipe.Title + " " + recipe.Description)

	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	return &recipe, nil
}

// DeleteRecipe removes a recipe after checking ownership.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}
	if recipe.UserID != userID {
		return ErrNotOwner
	}
	return s.db.WithContext(ctx).Delete(&recipe).Error
}

// SetRecipeImage stores the image URL on a recipe after checking ownership.
func (s *RecipeService) SetRecipeImage(ctx context.Context, id, userID uuid.UUID, url string) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}
	if recipe.UserID != userID {
		return ErrNotOwner
	}
	recipe.ImageURL = url
	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return fmt.Errorf("failed to set recipe image: %w", err)
	}
	return nil
}

// SearchRecipes performs vector similarity search when running on Postgres
// and falls back to a LIKE match elsewhere.
func (s *RecipeService) SearchRecipes(ctx context.Context, query string, limit, offset int) ([]models.Recipe, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	pattern := "%" + strings.ToLower(query) + "%"

	var recipes []models.Recipe
	if s.db.Dialector.Name() == "postgres" {
		// Rank LIKE matches by embedding distance when pgvector is available.
		embedding := GenerateEmbedding(query)
		err := s.db.WithContext(ctx).
			Select("*, embedding <-> ? AS similarity", embedding).
			Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients::text) LIKE ?",
				pattern, pattern, pattern).
			Order("similarity ASC").
			Limit(limit).
			Offset(offset).
			Find(&recipes).Error
		if err != nil {
			return nil, fmt.Errorf("failed to search recipes: %w", err)
		}
		return recipes, nil
	}

	err := s.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	return recipes, nil
}

// LikeRecipe records a like. Liking an already liked recipe is a no-op.
func (s *RecipeService) LikeRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	if _, err := s.GetRecipe(ctx, recipeID); err != nil {
		return err
	}
	like := models.RecipeLike{UserID: userID, RecipeID: recipeID}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		FirstOrCreate(&like).Error
	if err != nil {
		return fmt.Errorf("failed to like recipe: %w", err)
	}
	return nil
}

// UnlikeRecipe removes a like if present.
func (s *RecipeService) UnlikeRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.RecipeLike{}).Error
	if err != nil {
		return fmt.Errorf("failed to unlike recipe: %w", err)
	}
	return nil
}

// LikesCount returns the number of likes for a recipe.
func (s *RecipeService) LikesCount(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.RecipeLike{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// SaveRecipe bookmarks a recipe for the user.
func (s *RecipeService) SaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	if _, err := s.GetRecipe(ctx, recipeID); err != nil {
		return err
	}
	save := models.RecipeSave{UserID: userID, RecipeID: recipeID}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		FirstOrCreate(&save).Error
	if err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

// UnsaveRecipe removes a bookmark if present.
func (s *RecipeService) UnsaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.RecipeSave{}).Error
	if err != nil {
		return fmt.Errorf("failed to unsave recipe: %w", err)
	}
	return nil
}

// SavedRecipes lists the recipes the user has bookmarked, newest first.
func (s *RecipeService) SavedRecipes(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Joins("JOIN recipe_saves ON recipe_saves.recipe_id = recipes.id").
		Where("recipe_saves.user_id = ?", userID).
		Order("recipe_saves.created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved recipes: %w", err)
	}
	return recipes, nil
}
