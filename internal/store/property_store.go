package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"property-engine/internal/common"
	"property-engine/internal/models"
)

// ListProperties returns all properties owned by a landlord, newest first
func (s *Store) ListProperties(ctx context.Context, ownerID string) ([]models.Property, error) {
	properties := []models.Property{}
	err := s.db.WithContext(ctx).
		Where("landlord_id = ?", ownerID).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "list properties", err)
	}
	return properties, nil
}

// CreateProperty inserts a property row; the caller stamps LandlordID
func (s *Store) CreateProperty(ctx context.Context, property *models.Property) error {
	if err := s.db.WithContext(ctx).Create(property).Error; err != nil {
		return common.NewErrorWithCause(common.ErrInternal, "create property", err)
	}
	return nil
}

// GetProperty fetches a single property owned by the caller
func (s *Store) GetProperty(ctx context.Context, ownerID, id string) (*models.Property, error) {
	var property models.Property
	err := s.db.WithContext(ctx).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFoundError("property not found")
	}
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "get property", err)
	}
	return &property, nil
}

// UpdateProperty applies a partial update to an owned property and
// returns the updated row
func (s *Store) UpdateProperty(ctx context.Context, ownerID, id string, patch map[string]interface{}) (*models.Property, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		Updates(patch)
	if result.Error != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "update property", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, common.ErrNotFoundError("property not found")
	}
	return s.GetProperty(ctx, ownerID, id)
}

// DeleteProperty removes an owned property
func (s *Store) DeleteProperty(ctx context.Context, ownerID, id string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		Delete(&models.Property{})
	if result.Error != nil {
		return common.NewErrorWithCause(common.ErrInternal, "delete property", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFoundError("property not found")
	}
	return nil
}
