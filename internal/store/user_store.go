package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"property-engine/internal/common"
	"property-engine/internal/models"
)

// CreateAccount creates a profile together with its role row.
// The email must not already be registered.
func (s *Store) CreateAccount(ctx context.Context, profile *models.Profile, role models.Role) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Profile{}).Where("email = ?", profile.Email).Count(&count).Error; err != nil {
			return common.NewErrorWithCause(common.ErrInternal, "check existing account", err)
		}
		if count > 0 {
			return common.ErrAlreadyExistsError("User already registered")
		}

		if err := tx.Create(profile).Error; err != nil {
			return common.NewErrorWithCause(common.ErrInternal, "create profile", err)
		}

		userRole := &models.UserRole{UserID: profile.ID, Role: role}
		if err := tx.Create(userRole).Error; err != nil {
			return common.NewErrorWithCause(common.ErrInternal, "create role", err)
		}

		return nil
	})
}

// GetProfileByEmail looks up a profile by email
func (s *Store) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFoundError("profile not found")
	}
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "get profile", err)
	}
	return &profile, nil
}

// GetProfile looks up a profile by id
func (s *Store) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFoundError("profile not found")
	}
	if err != nil {
		return nil, common.NewErrorWithCause(common.ErrInternal, "get profile", err)
	}
	return &profile, nil
}

// GetRole returns the application role recorded for a user id
func (s *Store) GetRole(ctx context.Context, userID string) (models.Role, error) {
	var userRole models.UserRole
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&userRole).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", common.ErrNotFoundError("role not found")
	}
	if err != nil {
		return "", common.NewErrorWithCause(common.ErrInternal, "get role", err)
	}
	return userRole.Role, nil
}

// CountProfiles returns the number of registered accounts
func (s *Store) CountProfiles(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Profile{}).Count(&count).Error
	return count, err
}
