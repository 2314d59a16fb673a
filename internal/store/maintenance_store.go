package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"property-engine/internal/common"
	"property-engine/internal/models"
)

// ListMaintenanceRequests returns all requests owned by a landlord,
// newest first
func (s *Store) ListMaintenanceRequests(ctx context.Context, ownerID string) ([]models.MaintenanceRequest, error) {
	requests := []models.MaintenanceRequest{}
	err := s.db.WithContext(ctx).
		Where("landlord_id = ?", ownerID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "list maintenance requests", err)
	}
	return requests, nil
}

// CreateMaintenanceRequest inserts a request row; the caller stamps
// LandlordID and RequestedBy
func (s *Store) CreateMaintenanceRequest(ctx context.Context, request *models.MaintenanceRequest) error {
	if err := s.db.WithContext(ctx).Create(request).Error; err != nil {
		return common.NewErrorWithCause(common.ErrInternal, "create maintenance request", err)
	}
	return nil
}

// GetMaintenanceRequest fetches a single owned request
func (s *Store) GetMaintenanceRequest(ctx context.Context, ownerID, id string) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := s.db.WithContext(ctx).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFoundError("maintenance request not found")
	}
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "get maintenance request", err)
	}
	return &request, nil
}

// UpdateMaintenanceRequest applies a partial update to an owned request.
// It returns both the prior and the updated row so callers can compare
// fields across the change.
func (s *Store) UpdateMaintenanceRequest(ctx context.Context, ownerID, id string, patch map[string]interface{}) (prev *models.MaintenanceRequest, updated *models.MaintenanceRequest, err error) {
	prev, err = s.GetMaintenanceRequest(ctx, ownerID, id)
	if err != nil {
		return nil, nil, err
	}

	result := s.db.WithContext(ctx).
		Model(&models.MaintenanceRequest{}).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		Updates(patch)
	if result.Error != nil {
		return nil, nil, common.NewErrorWithCause(common.ErrInternal, "update maintenance request", result.Error)
	}

	updated, err = s.GetMaintenanceRequest(ctx, ownerID, id)
	if err != nil {
		return nil, nil, err
	}
	return prev, updated, nil
}

// DeleteMaintenanceRequest removes an owned request
func (s *Store) DeleteMaintenanceRequest(ctx context.Context, ownerID, id string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		Delete(&models.MaintenanceRequest{})
	if result.Error != nil {
		return common.NewErrorWithCause(common.ErrInternal, "delete maintenance request", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFoundError("maintenance request not found")
	}
	return nil
}
