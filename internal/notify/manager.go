package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"property-engine/internal/auth"
	"property-engine/internal/models"
)

// feed is one user's live subscription on the change-event bus
type feed struct {
	cancel func()
	done   chan struct{}
}

// Manager ties notification feeds to the authentication lifecycle.
// A feed starts when its user signs in and is torn down on sign-out,
// so no events are delivered to signed-out users and re-subscribing
// never doubles delivery.
type Manager struct {
	bus *Bus
	hub *Hub
	log zerolog.Logger

	mu      sync.Mutex
	feeds   map[string]*feed
	centers map[string]*Center
}

// NewManager creates a notification manager
func NewManager(bus *Bus, hub *Hub, log zerolog.Logger) *Manager {
	return &Manager{
		bus:     bus,
		hub:     hub,
		log:     log.With().Str("component", "notify").Logger(),
		feeds:   make(map[string]*feed),
		centers: make(map[string]*Center),
	}
}

// Run consumes session-state transitions until the context is done.
// Signed-in events start the user's feed; signed-out events stop it.
func (m *Manager) Run(ctx context.Context, events <-chan auth.Event, cancelEvents func()) {
	defer cancelEvents()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.Kind {
			case auth.EventSignedIn:
				m.StartFeed(ev.UserID)
			case auth.EventSignedOut:
				m.StopFeed(ev.UserID)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Center returns the notification center for a user, creating it on
// first use
func (m *Manager) Center(userID string) *Center {
	m.mu.Lock()
	defer m.mu.Unlock()
	center, ok := m.centers[userID]
	if !ok {
		center = NewCenter()
		m.centers[userID] = center
	}
	return center
}

// StartFeed subscribes a user to maintenance-request change events.
// An existing feed is torn down first so delivery is never duplicated.
func (m *Manager) StartFeed(userID string) {
	m.StopFeed(userID)

	events, cancel := m.bus.Subscribe()
	f := &feed{cancel: cancel, done: make(chan struct{})}

	m.mu.Lock()
	m.feeds[userID] = f
	center, ok := m.centers[userID]
	if !ok {
		center = NewCenter()
		m.centers[userID] = center
	}
	m.mu.Unlock()

	go func() {
		defer close(f.done)
		for ev := range events {
			if ev.OwnerID != userID {
				continue
			}
			m.deliver(userID, center, ev)
		}
	}()

	m.log.Debug().Str("user_id", userID).Msg("notification feed started")
}

// StopFeed cancels a user's subscription and waits for the feed
// goroutine to drain
func (m *Manager) StopFeed(userID string) {
	m.mu.Lock()
	f, ok := m.feeds[userID]
	if ok {
		delete(m.feeds, userID)
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	f.cancel()
	<-f.done
	m.hub.CloseUser(userID)
	m.log.Debug().Str("user_id", userID).Msg("notification feed stopped")
}

// deliver translates a change event into a notification. Inserts always
// notify; updates notify only when the status actually changed.
func (m *Manager) deliver(userID string, center *Center, ev ChangeEvent) {
	switch ev.Kind {
	case ChangeInsert:
		n := center.Add(
			"New Maintenance Request",
			fmt.Sprintf("%q - Priority: %s", ev.Request.Title, ev.Request.Priority),
			models.NotificationMaintenance,
			"/maintenance",
		)
		m.hub.Send(userID, n)
	case ChangeUpdate:
		if ev.Previous == nil || ev.Previous.Status == ev.Request.Status {
			return
		}
		n := center.Add(
			"Maintenance Status Updated",
			fmt.Sprintf("%q is now %s", ev.Request.Title, ev.Request.Status),
			models.NotificationMaintenance,
			"/maintenance",
		)
		m.hub.Send(userID, n)
	}
}
