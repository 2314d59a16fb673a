package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"property-engine/internal/common"
	"property-engine/internal/models"
)

// ListRentPayments returns all rent payments owned by a landlord,
// newest first
func (s *Store) ListRentPayments(ctx context.Context, ownerID string) ([]models.RentPayment, error) {
	payments := []models.RentPayment{}
	err := s.db.WithContext(ctx).
		Where("landlord_id = ?", ownerID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "list rent payments", err)
	}
	return payments, nil
}

// CreateRentPayment inserts a payment row; the caller stamps LandlordID
func (s *Store) CreateRentPayment(ctx context.Context, payment *models.RentPayment) error {
	if err := s.db.WithContext(ctx).Create(payment).Error; err != nil {
		return common.NewErrorWithCause(common.ErrInternal, "create rent payment", err)
	}
	return nil
}

// GetRentPayment fetches a single owned payment
func (s *Store) GetRentPayment(ctx context.Context, ownerID, id string) (*models.RentPayment, error) {
	var payment models.RentPayment
	err := s.db.WithContext(ctx).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFoundError("rent payment not found")
	}
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "get rent payment", err)
	}
	return &payment, nil
}

// UpdateRentPayment applies a partial update to an owned payment and
// returns the updated row
func (s *Store) UpdateRentPayment(ctx context.Context, ownerID, id string, patch map[string]interface{}) (*models.RentPayment, error) {
	result := s.db.WithContext(ctx).
		Model(&models.RentPayment{}).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		Updates(patch)
	if result.Error != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "update rent payment", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, common.ErrNotFoundError("rent payment not found")
	}
	return s.GetRentPayment(ctx, ownerID, id)
}

// DeleteRentPayment removes an owned payment
func (s *Store) DeleteRentPayment(ctx context.Context, ownerID, id string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND landlord_id = ?", id, ownerID).
		Delete(&models.RentPayment{})
	if result.Error != nil {
		return common.NewErrorWithCause(common.ErrInternal, "delete rent payment", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFoundError("rent payment not found")
	}
	return nil
}

// MarkOverduePayments flips pending payments whose due date has passed
// to overdue. Date-only strings compare correctly in YYYY-MM-DD form.
// It returns the affected owner ids so callers can invalidate caches.
func (s *Store) MarkOverduePayments(ctx context.Context, today string) (int64, []string, error) {
	var owners []string
	err := s.db.WithContext(ctx).
		Model(&models.RentPayment{}).
		Distinct("landlord_id").
		Where("status = ? AND due_date < ?", models.RentPending, today).
		Pluck("landlord_id", &owners).Error
	if err != nil {
		return 0, nil, common.NewErrorWithCause(common.ErrInternal, "find overdue payments", err)
	}
	if len(owners) == 0 {
		return 0, nil, nil
	}

	result := s.db.WithContext(ctx).
		Model(&models.RentPayment{}).
		Where("status = ? AND due_date < ?", models.RentPending, today).
		Update("status", models.RentOverdue)
	if result.Error != nil {
		return 0, nil, common.NewErrorWithCause(common.ErrInternal, "mark overdue payments", result.Error)
	}
	return result.RowsAffected, owners, nil
}
