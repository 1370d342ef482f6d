package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zeuskitchen/backend/internal/types"
)

// JSONBMeals stores the day-to-slots mapping of a meal plan in JSONB.
// Keys are always the lowercased canonical day names; validation happens
// before anything reaches this type.
type JSONBMeals map[string]types.DayMeals

// Value implements the driver.Valuer interface
func (m JSONBMeals) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *JSONBMeals) Scan(value interface{}) error {
	if value == nil {
		*m = JSONBMeals{}
		return nil
	}
	return scanJSONB(value, m)
}

type MealPlan struct {
	ID            uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanName      string         `gorm:"size:100;not null" json:"plan_name"`
	WeekStartDate time.Time      `gorm:"not null" json:"week_start_date"`
	Meals         JSONBMeals     `gorm:"type:jsonb;not null;default:'{}'" json:"meals"`
}

// BeforeCreate assigns an id when none was provided
func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ToResponse converts the stored plan into its caller-facing shape
func (p *MealPlan) ToResponse() types.MealPlanResponse {
	return types.MealPlanResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		PlanName:      p.PlanName,
		WeekStartDate: p.WeekStartDate,
		Meals:         p.Meals,
		CreatedAt:     p.CreatedAt,
	}
}
