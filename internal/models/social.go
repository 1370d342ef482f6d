package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeLike records one user liking one recipe
type RecipeLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns an id when none was provided
func (l *RecipeLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// RecipeSave records one user saving one recipe to their collection
type RecipeSave struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_save_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_save_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns an id when none was provided
func (s *RecipeSave) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
