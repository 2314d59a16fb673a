package services

import (
	"context"

	"github.com/rs/zerolog"

	"property-engine/internal/models"
	"property-engine/internal/store"
)

// TenantService exposes the owner-scoped list and mutations for tenants
type TenantService struct {
	store *store.Store
	cache *listCache[models.Tenant]
	log   zerolog.Logger
}

// NewTenantService creates a new tenant service
func NewTenantService(st *store.Store, log zerolog.Logger) *TenantService {
	return &TenantService{
		store: st,
		cache: newListCache[models.Tenant](),
		log:   log.With().Str("component", "tenants").Logger(),
	}
}

// List returns all tenants owned by the caller, newest first
func (s *TenantService) List(ctx context.Context, ownerID string) ([]models.Tenant, error) {
	if items, ok := s.cache.get(ownerID); ok {
		return items, nil
	}
	items, err := s.store.ListTenants(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.cache.set(ownerID, items)
	return items, nil
}

// Add creates a tenant owned by the caller
func (s *TenantService) Add(ctx context.Context, ownerID string, tenant *models.Tenant) (*models.Tenant, error) {
	tenant.LandlordID = ownerID
	if err := s.store.CreateTenant(ctx, tenant); err != nil {
		return nil, err
	}
	s.cache.invalidate(ownerID)
	s.log.Info().Str("tenant_id", tenant.ID).Str("owner_id", ownerID).Msg("tenant added")
	return tenant, nil
}

// Update applies a partial update to an owned tenant
func (s *TenantService) Update(ctx context.Context, ownerID, id string, patch map[string]interface{}) (*models.Tenant, error) {
	updated, err := s.store.UpdateTenant(ctx, ownerID, id, patch)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(ownerID)
	return updated, nil
}

// Delete removes an owned tenant
func (s *TenantService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.store.DeleteTenant(ctx, ownerID, id); err != nil {
		return err
	}
	s.cache.invalidate(ownerID)
	return nil
}
