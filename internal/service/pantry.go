package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zeuskitchen/backend/internal/models"
	"github.com/zeuskitchen/backend/internal/types"
)

// PantryService manages the per-user pantry inventory.
type PantryService struct {
	db *gorm.DB
}

func NewPantryService(db *gorm.DB) *PantryService {
	return &PantryService{db: db}
}

// AddItem adds an item to the user's pantry.
func (s *PantryService) AddItem(ctx context.Context, userID uuid.UUID, req *types.CreatePantryItemRequest) (*models.PantryItem, error) {
	item := &models.PantryItem{
		UserID:   userID,
		ItemName: strings.TrimSpace(req.ItemName),
		Quantity: req.Quantity,
		Unit:     req.Unit,
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to add pantry item: %w", err)
	}
	return item, nil
}

// ListItems returns the user's pantry items ordered by name.
func (s *PantryService) ListItems(ctx context.Context, userID uuid.UUID) ([]models.PantryItem, error) {
	var items []models.PantryItem
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("item_name ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pantry items: %w", err)
	}
	return items, nil
}

// RemoveItem deletes one pantry item after checking ownership.
func (s *PantryService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	var item models.PantryItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", itemID).Error; err != nil {
		return err
	}
	if item.UserID != userID {
		return ErrNotOwner
	}
	return s.db.WithContext(ctx).Delete(&item).Error
}

// SnapshotNames returns the lowercased names of everything in the user's
// pantry, for membership checks during grocery aggregation.
func (s *PantryService) SnapshotNames(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error) {
	items, err := s.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]struct{}, len(items))
	for _, item := range items {
		names[strings.ToLower(strings.TrimSpace(item.ItemName))] = struct{}{}
	}
	return names, nil
}
