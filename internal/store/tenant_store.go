package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"property-engine/internal/common"
	"property-engine/internal/models"
)

// ListTenants returns all tenants owned by a landlord, newest first
func (s *Store) ListTenants(ctx context.Context, ownerID string) ([]models.Tenant, error) {
	tenants := []models.Tenant{}
	err := s.db.WithContext(ctx).
		Where("landlord_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tenants).Error
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "list tenants", err)
	}
	return tenants, nil
}

// CreateTenant inserts a tenant row; the caller stamps LandlordID
func (s *Store) CreateTenant(ctx context.Context, tenant *models.Tenant) error {
	if err := s.db.WithContext(ctx).Create(tenant).Error; err != nil {
		return common.NewErrorWithCause(common.ErrInternal, "create tenant", err)
	}
	return nil
}

// GetTenant fetches a single tenant owned by the caller
func (s *Store) GetTenant(ctx context.Context, ownerID, id string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.db.WithContext(ctx).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		First(&tenant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFoundError("tenant not found")
	}
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "get tenant", err)
	}
	return &tenant, nil
}

// UpdateTenant applies a partial update to an owned tenant and returns
// the updated row
func (s *Store) UpdateTenant(ctx context.Context, ownerID, id string, patch map[string]interface{}) (*models.Tenant, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Tenant{}).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		Updates(patch)
	if result.Error != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "update tenant", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, common.ErrNotFoundError("tenant not found")
	}
	return s.GetTenant(ctx, ownerID, id)
}

// DeleteTenant removes an owned tenant
func (s *Store) DeleteTenant(ctx context.Context, ownerID, id string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		Delete(&models.Tenant{})
	if result.Error != nil {
		return common.NewErrorWithCause(common.ErrInternal, "delete tenant", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFoundError("tenant not found")
	}
	return nil
}
