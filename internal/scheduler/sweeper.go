// Package scheduler runs the background jobs that keep derived record
// state current outside the request path.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"property-engine/internal/services"
	"property-engine/internal/store"
)

// OverdueSweeper flips pending rent payments to overdue once their due
// date has passed, then invalidates the affected owners' cached lists.
type OverdueSweeper struct {
	store *store.Store
	rent  *services.RentService
	cron  *cron.Cron
	spec  string
	log   zerolog.Logger
}

// NewOverdueSweeper creates a sweeper with the given cron spec
func NewOverdueSweeper(st *store.Store, rent *services.RentService, spec string, log zerolog.Logger) *OverdueSweeper {
	return &OverdueSweeper{
		store: st,
		rent:  rent,
		cron:  cron.New(),
		spec:  spec,
		log:   log.With().Str("component", "sweeper").Logger(),
	}
}

// Start schedules the sweep and runs one pass immediately so a restart
// never leaves stale pending rows until the next tick
func (s *OverdueSweeper) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.Sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	s.cron.Start()

	go s.Sweep(ctx)
	return nil
}

// Stop halts the schedule
func (s *OverdueSweeper) Stop() {
	s.cron.Stop()
}

// Sweep runs a single overdue pass
func (s *OverdueSweeper) Sweep(ctx context.Context) {
	today := time.Now().Format("2006-01-02")
	count, owners, err := s.store.MarkOverduePayments(ctx, today)
	if err != nil {
		s.log.Error().Err(err).Msg("overdue sweep failed")
		return
	}
	if count == 0 {
		return
	}
	s.rent.InvalidateOwners(owners)
	s.log.Info().Int64("payments", count).Int("owners", len(owners)).Msg("marked overdue payments")
}
