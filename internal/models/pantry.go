package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PantryItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ItemName  string         `gorm:"size:100;not null" json:"item_name"`
	Quantity  string         `gorm:"size:50" json:"quantity"`
	Unit      string         `gorm:"size:20" json:"unit"`
}

// BeforeCreate assigns an id when none was provided
func (p *PantryItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
