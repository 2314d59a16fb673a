package services

import (
	"context"

	"github.com/rs/zerolog"

	"property-engine/internal/models"
	"property-engine/internal/notify"
	"property-engine/internal/store"
)

// MaintenanceService exposes the owner-scoped list and mutations for
// maintenance requests. Inserts and updates publish change events to
// the notification bus; deletes do not.
type MaintenanceService struct {
	store *store.Store
	bus   *notify.Bus
	cache *listCache[models.MaintenanceRequest]
	log   zerolog.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(st *store.Store, bus *notify.Bus, log zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{
		store: st,
		bus:   bus,
		cache: newListCache[models.MaintenanceRequest](),
		log:   log.With().Str("component", "maintenance").Logger(),
	}
}

// List returns all maintenance requests owned by the caller, newest first
func (s *MaintenanceService) List(ctx context.Context, ownerID string) ([]models.MaintenanceRequest, error) {
	if items, ok := s.cache.get(ownerID); ok {
		return items, nil
	}
	items, err := s.store.ListMaintenanceRequests(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.cache.set(ownerID, items)
	return items, nil
}

// Add creates a request owned by the caller, stamping the requester
// identity from the authenticated session
func (s *MaintenanceService) Add(ctx context.Context, ownerID, requestedBy string, request *models.MaintenanceRequest) (*models.MaintenanceRequest, error) {
	request.LandlordID = ownerID
	request.RequestedBy = requestedBy
	if err := s.store.CreateMaintenanceRequest(ctx, request); err != nil {
		return nil, err
	}
	s.cache.invalidate(ownerID)
	s.bus.Publish(notify.ChangeEvent{
		Kind:    notify.ChangeInsert,
		OwnerID: ownerID,
		Request: *request,
	})
	s.log.Info().Str("request_id", request.ID).Str("owner_id", ownerID).Msg("maintenance request filed")
	return request, nil
}

// Update applies a partial update to an owned request and publishes the
// change with its prior row attached
func (s *MaintenanceService) Update(ctx context.Context, ownerID, id string, patch map[string]interface{}) (*models.MaintenanceRequest, error) {
	prev, updated, err := s.store.UpdateMaintenanceRequest(ctx, ownerID, id, patch)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(ownerID)
	s.bus.Publish(notify.ChangeEvent{
		Kind:     notify.ChangeUpdate,
		OwnerID:  ownerID,
		Request:  *updated,
		Previous: prev,
	})
	return updated, nil
}

// Delete removes an owned request
func (s *MaintenanceService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.store.DeleteMaintenanceRequest(ctx, ownerID, id); err != nil {
		return err
	}
	s.cache.invalidate(ownerID)
	return nil
}
