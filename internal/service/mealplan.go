package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zeuskitchen/backend/internal/ai"
	"github.com/zeuskitchen/backend/internal/grocery"
	"github.com/zeuskitchen/backend/internal/models"
	"github.com/zeuskitchen/backend/internal/types"
)

// MealPlanService manages stored weekly meal plans and derives grocery lists
// from them.
type MealPlanService struct {
	db      *gorm.DB
	recipes *RecipeService
	pantry  *PantryService
}

func NewMealPlanService(db *gorm.DB, recipes *RecipeService, pantry *PantryService) *MealPlanService {
	return &MealPlanService{db: db, recipes: recipes, pantry: pantry}
}

// CreateMealPlan validates and persists a plan. Day keys are normalized to
// lowercase; unknown days reject the whole plan.
func (s *MealPlanService) CreateMealPlan(ctx context.Context, userID uuid.UUID, req *types.CreateMealPlanRequest) (*models.MealPlan, error) {
	meals, err := ai.ValidateMealDays(req.Meals)
	if err != nil {
		return nil, err
	}

	plan := &models.MealPlan{
		UserID:        userID,
		PlanName:      req.PlanName,
		WeekStartDate: req.WeekStartDate,
		Meals:         models.JSONBMeals(meals),
	}
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to create meal plan: %w", err)
	}
	return plan, nil
}

// GetMealPlan fetches a plan owned by the user.
func (s *MealPlanService) GetMealPlan(ctx context.Context, id, userID uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	if err := s.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrNotOwner
	}
	return &plan, nil
}

// ListMealPlans returns the user's plans, newest week first.
func (s *MealPlanService) ListMealPlans(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.MealPlan, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var plans []models.MealPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("week_start_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	return plans, nil
}

// UpdateMealPlan applies a partial update after checking ownership.
func (s *MealPlanService) UpdateMealPlan(ctx context.Context, id, userID uuid.UUID, req *types.UpdateMealPlanRequest) (*models.MealPlan, error) {
	plan, err := s.GetMealPlan(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.PlanName != nil {
		plan.PlanName = *req.PlanName
	}
	if req.WeekStartDate != nil {
		plan.WeekStartDate = *req.WeekStartDate
	}
	if req.Meals != nil {
		meals, err := ai.ValidateMealDays(req.Meals)
		if err != nil {
			return nil, err
		}
		plan.Meals = models.JSONBMeals(meals)
	}

	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to update meal plan: %w", err)
	}
	return plan, nil
}

// DeleteMealPlan removes a plan after checking ownership.
func (s *MealPlanService) DeleteMealPlan(ctx context.Context, id, userID uuid.UUID) error {
	plan, err := s.GetMealPlan(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(plan).Error
}

// AddRecipeToSlot assigns a stored recipe to one day/slot of the plan. The
// recipe must exist; its title is denormalized into the slot.
func (s *MealPlanService) AddRecipeToSlot(ctx context.Context, planID, userID uuid.UUID, req *types.AddMealSlotRequest) (*models.MealPlan, error) {
	plan, err := s.GetMealPlan(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	day := strings.ToLower(strings.TrimSpace(req.Day))
	if _, err := ai.ValidateMealDays(map[string]types.DayMeals{day: {}}); err != nil {
		return nil, err
	}
	slot := strings.ToLower(strings.TrimSpace(req.Slot))
	if !types.ValidSlot(slot) {
		return nil, &ai.ValidationError{
			Kind:    ai.InvalidEnum,
			Field:   "slot",
			Message: fmt.Sprintf("unknown meal slot %q", req.Slot),
		}
	}

	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("invalid recipe id: %w", err)
	}
	recipe, err := s.recipes.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	servings := req.Servings
	if servings == 0 {
		servings = recipe.Servings
	}

	if plan.Meals == nil {
		plan.Meals = models.JSONBMeals{}
	}
	dayMeals := plan.Meals[day]
	dayMeals.SetSlot(types.MealSlot(slot), &types.MealPlanMeal{
		RecipeID:    recipe.ID.String(),
		RecipeTitle: recipe.Title,
		Description: recipe.Description,
		Servings:    servings,
	})
	plan.Meals[day] = dayMeals

	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to update meal plan: %w", err)
	}
	return plan, nil
}

// GroceryList aggregates the ingredients of every recipe referenced by the
// plan into a deduplicated, categorized shopping list annotated against the
// user's pantry.
func (s *MealPlanService) GroceryList(ctx context.Context, planID, userID uuid.UUID) (*types.GroceryListResponse, error) {
	plan, err := s.GetMealPlan(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	for _, raw := range grocery.ReferencedRecipeIDs(plan.Meals) {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	recipes, err := s.recipes.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, &ai.UpstreamError{Op: "fetch plan recipes", Err: err}
	}
	ingredientsByRecipe := make(map[string][]types.Ingredient, len(recipes))
	for _, recipe := range recipes {
		ingredientsByRecipe[recipe.ID.String()] = recipe.Ingredients
	}

	pantry, err := s.pantry.SnapshotNames(ctx, userID)
	if err != nil {
		return nil, &ai.UpstreamError{Op: "fetch pantry", Err: err}
	}

	list := grocery.BuildList(plan.Meals, ingredientsByRecipe, pantry)
	return &types.GroceryListResponse{
		MealPlanID:      plan.ID,
		MealPlanName:    plan.PlanName,
		WeekStartDate:   plan.WeekStartDate,
		Items:           list.Items,
		ItemsByCategory: list.ItemsByCategory,
	}, nil
}
