package services

import (
	"context"

	"github.com/rs/zerolog"

	"property-engine/internal/models"
	"property-engine/internal/store"
)

// RentStats aggregates payment amounts by status. It is a pure
// projection of the current list and is never persisted.
type RentStats struct {
	TotalCollected float64 `json:"total_collected"`
	PendingRent    float64 `json:"pending_rent"`
	OverdueRent    float64 `json:"overdue_rent"`
}

// RentService exposes the owner-scoped list, mutations and derived
// statistics for rent payments
type RentService struct {
	store *store.Store
	cache *listCache[models.RentPayment]
	log   zerolog.Logger
}

// NewRentService creates a new rent payment service
func NewRentService(st *store.Store, log zerolog.Logger) *RentService {
	return &RentService{
		store: st,
		cache: newListCache[models.RentPayment](),
		log:   log.With().Str("component", "rent").Logger(),
	}
}

// List returns all rent payments owned by the caller, newest first
func (s *RentService) List(ctx context.Context, ownerID string) ([]models.RentPayment, error) {
	if items, ok := s.cache.get(ownerID); ok {
		return items, nil
	}
	items, err := s.store.ListRentPayments(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.cache.set(ownerID, items)
	return items, nil
}

// Add records a payment owned by the caller
func (s *RentService) Add(ctx context.Context, ownerID string, payment *models.RentPayment) (*models.RentPayment, error) {
	payment.LandlordID = ownerID
	if err := s.store.CreateRentPayment(ctx, payment); err != nil {
		return nil, err
	}
	s.cache.invalidate(ownerID)
	s.log.Info().Str("payment_id", payment.ID).Str("owner_id", ownerID).Msg("payment recorded")
	return payment, nil
}

// Update applies a partial update to an owned payment
func (s *RentService) Update(ctx context.Context, ownerID, id string, patch map[string]interface{}) (*models.RentPayment, error) {
	updated, err := s.store.UpdateRentPayment(ctx, ownerID, id, patch)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(ownerID)
	return updated, nil
}

// Delete removes an owned payment
func (s *RentService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.store.DeleteRentPayment(ctx, ownerID, id); err != nil {
		return err
	}
	s.cache.invalidate(ownerID)
	return nil
}

// Stats derives the per-status amount sums from the current list
func (s *RentService) Stats(ctx context.Context, ownerID string) (RentStats, error) {
	payments, err := s.List(ctx, ownerID)
	if err != nil {
		return RentStats{}, err
	}

	var stats RentStats
	for _, p := range payments {
		switch p.Status {
		case models.RentPaid:
			stats.TotalCollected += p.Amount
		case models.RentPending:
			stats.PendingRent += p.Amount
		case models.RentOverdue:
			stats.OverdueRent += p.Amount
		}
	}
	return stats, nil
}

// InvalidateOwners drops cached lists for the given owners. The overdue
// sweeper calls this after flipping payments outside the request path.
func (s *RentService) InvalidateOwners(ownerIDs []string) {
	for _, id := range ownerIDs {
		s.cache.invalidate(id)
	}
}
