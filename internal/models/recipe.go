package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/zeuskitchen/backend/internal/types"
)

// JSONBIngredients stores a structured ingredient list in a JSONB column
type JSONBIngredients []types.Ingredient

// Value implements the driver.Valuer interface
func (a JSONBIngredients) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBIngredients) Scan(value interface{}) error {
	return scanJSONB(value, a)
}

// JSONBInstructions stores numbered instruction steps in a JSONB column
type JSONBInstructions []types.InstructionStep

// Value implements the driver.Valuer interface
func (a JSONBInstructions) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBInstructions) Scan(value interface{}) error {
	return scanJSONB(value, a)
}

func scanJSONB(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, dest)
}

type Recipe struct {
	ID           uuid.UUID         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string            `gorm:"size:200;not null" json:"title"`
	Description  string            `gorm:"type:text" json:"description"`
	ImageURL     string            `gorm:"size:255" json:"image_url"`
	Ingredients  JSONBIngredients  `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions JSONBInstructions `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Servings     int               `gorm:"not null;default:4" json:"servings"`
	PrepTime     *int              `json:"prep_time,omitempty"`
	CookTime     *int              `json:"cook_time,omitempty"`
	CuisineType  string            `gorm:"size:50" json:"cuisine_type,omitempty"`
	Difficulty   string            `gorm:"size:10;not null;default:'Medium'" json:"difficulty"`
	MealTypes    pq.StringArray    `gorm:"type:text[]" json:"meal_type"`
	DietaryTags  pq.StringArray    `gorm:"type:text[]" json:"dietary_tags"`
	IsGenerated  bool              `gorm:"not null;default:false" json:"is_generated"`
	Embedding    pgvector.Vector   `gorm:"type:vector(3)" json:"-"`
}

// BeforeCreate assigns an id when none was provided
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Data returns the recipe as the plain validated shape shared with the
// synthesizer, so updates can run through the same invariant checks.
func (r *Recipe) Data() *types.RecipeData {
	return &types.RecipeData{
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Servings:     r.Servings,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		CuisineType:  r.CuisineType,
		Difficulty:   types.DifficultyLevel(r.Difficulty),
		MealTypes:    r.MealTypes,
		DietaryTags:  r.DietaryTags,
	}
}

// ToResponse converts the stored recipe into its caller-facing shape
func (r *Recipe) ToResponse(likesCount int64) types.RecipeResponse {
	return types.RecipeResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Servings:     r.Servings,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		CuisineType:  r.CuisineType,
		Difficulty:   r.Difficulty,
		MealTypes:    r.MealTypes,
		DietaryTags:  r.DietaryTags,
		IsGenerated:  r.IsGenerated,
		LikesCount:   likesCount,
		CreatedAt:    r.CreatedAt,
	}
}

// FromRecipeData builds a storable recipe from a validated RecipeData
func FromRecipeData(data *types.RecipeData, userID uuid.UUID, generated bool) *Recipe {
	return &Recipe{
		UserID:       userID,
		Title:        data.Title,
		Description:  data.Description,
		Ingredients:  JSONBIngredients(data.Ingredients),
		Instructions: JSONBInstructions(data.Instructions),
		Servings:     data.Servings,
		PrepTime:     data.PrepTime,
		CookTime:     data.CookTime,
		CuisineType:  data.CuisineType,
		Difficulty:   string(data.Difficulty),
		MealTypes:    pq.StringArray(data.MealTypes),
		DietaryTags:  pq.StringArray(data.DietaryTags),
		IsGenerated:  generated,
	}
}
