package services

import (
	"context"

	"github.com/rs/zerolog"

	"property-engine/internal/models"
	"property-engine/internal/store"
)

// PropertyService exposes the owner-scoped list and mutations for
// properties. Mutations stamp the owning user id server-side and
// invalidate the cached list on success; failures leave state intact.
type PropertyService struct {
	store *store.Store
	cache *listCache[models.Property]
	log   zerolog.Logger
}

// NewPropertyService creates a new property service
func NewPropertyService(st *store.Store, log zerolog.Logger) *PropertyService {
	return &PropertyService{
		store: st,
		cache: newListCache[models.Property](),
		log:   log.With().Str("component", "properties").Logger(),
	}
}

// List returns all properties owned by the caller, newest first
func (s *PropertyService) List(ctx context.Context, ownerID string) ([]models.Property, error) {
	if items, ok := s.cache.get(ownerID); ok {
		return items, nil
	}
	items, err := s.store.ListProperties(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.cache.set(ownerID, items)
	return items, nil
}

// Get fetches a single owned property
func (s *PropertyService) Get(ctx context.Context, ownerID, id string) (*models.Property, error) {
	return s.store.GetProperty(ctx, ownerID, id)
}

// Add creates a property owned by the caller
func (s *PropertyService) Add(ctx context.Context, ownerID string, property *models.Property) (*models.Property, error) {
	property.LandlordID = ownerID
	if err := s.store.CreateProperty(ctx, property); err != nil {
		return nil, err
	}
	s.cache.invalidate(ownerID)
	s.log.Info().Str("property_id", property.ID).Str("owner_id", ownerID).Msg("property added")
	return property, nil
}

// Update applies a partial update to an owned property
func (s *PropertyService) Update(ctx context.Context, ownerID, id string, patch map[string]interface{}) (*models.Property, error) {
	updated, err := s.store.UpdateProperty(ctx, ownerID, id, patch)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(ownerID)
	return updated, nil
}

// Delete removes an owned property
func (s *PropertyService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.store.DeleteProperty(ctx, ownerID, id); err != nil {
		return err
	}
	s.cache.invalidate(ownerID)
	return nil
}
