package notify

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-engine/internal/models"
)

func request(title string, status models.RequestStatus) models.MaintenanceRequest {
	return models.MaintenanceRequest{
		ID:       "req-1",
		Title:    title,
		Priority: models.PriorityHigh,
		Status:   status,
	}
}

func waitForNotifications(t *testing.T, center *Center, n int) []models.Notification {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		items := center.List()
		if len(items) >= n {
			return items
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d notifications, have %d", n, len(center.List()))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestCenterRetentionCap(t *testing.T) {
	center := NewCenter()
	for i := 0; i < 25; i++ {
		center.Add(fmt.Sprintf("title %d", i), "msg", models.NotificationMaintenance, "/maintenance")
	}

	items := center.List()
	require.Len(t, items, 20)
	// newest first, oldest five discarded
	assert.Equal(t, "title 24", items[0].Title)
	assert.Equal(t, "title 5", items[19].Title)
}

func TestCenterReadTracking(t *testing.T) {
	center := NewCenter()
	a := center.Add("a", "msg", models.NotificationMaintenance, "/maintenance")
	center.Add("b", "msg", models.NotificationMaintenance, "/maintenance")
	assert.Equal(t, 2, center.UnreadCount())

	center.MarkRead(a.ID)
	assert.Equal(t, 1, center.UnreadCount())

	center.MarkAllRead()
	assert.Equal(t, 0, center.UnreadCount())

	center.Clear()
	assert.Empty(t, center.List())
}

func TestInsertAlwaysNotifies(t *testing.T) {
	bus := NewBus()
	hub := NewHub(zerolog.Nop())
	m := NewManager(bus, hub, zerolog.Nop())

	m.StartFeed("landlord-1")
	defer m.StopFeed("landlord-1")

	bus.Publish(ChangeEvent{
		Kind:    ChangeInsert,
		OwnerID: "landlord-1",
		Request: request("Broken window", models.RequestPending),
	})

	items := waitForNotifications(t, m.Center("landlord-1"), 1)
	assert.Equal(t, "New Maintenance Request", items[0].Title)
	assert.Equal(t, `"Broken window" - Priority: high`, items[0].Message)
	assert.Equal(t, "/maintenance", items[0].Link)
}

func TestUpdateNotifiesOnlyOnStatusChange(t *testing.T) {
	bus := NewBus()
	m := NewManager(bus, NewHub(zerolog.Nop()), zerolog.Nop())

	m.StartFeed("landlord-1")
	defer m.StopFeed("landlord-1")

	prev := request("Broken window", models.RequestPending)

	// same status: no notification
	same := request("Broken window", models.RequestPending)
	bus.Publish(ChangeEvent{Kind: ChangeUpdate, OwnerID: "landlord-1", Request: same, Previous: &prev})

	// changed status: exactly one notification
	changed := request("Broken window", models.RequestInProgress)
	bus.Publish(ChangeEvent{Kind: ChangeUpdate, OwnerID: "landlord-1", Request: changed, Previous: &prev})

	items := waitForNotifications(t, m.Center("landlord-1"), 1)
	require.Len(t, items, 1)
	assert.Equal(t, "Maintenance Status Updated", items[0].Title)
	assert.Equal(t, `"Broken window" is now in-progress`, items[0].Message)
}

func TestFeedFiltersByOwner(t *testing.T) {
	bus := NewBus()
	m := NewManager(bus, NewHub(zerolog.Nop()), zerolog.Nop())

	m.StartFeed("landlord-1")
	m.StartFeed("landlord-2")
	defer m.StopFeed("landlord-1")
	defer m.StopFeed("landlord-2")

	bus.Publish(ChangeEvent{Kind: ChangeInsert, OwnerID: "landlord-2", Request: request("Other", models.RequestPending)})

	waitForNotifications(t, m.Center("landlord-2"), 1)
	assert.Empty(t, m.Center("landlord-1").List(), "events must not leak across owners")
}

func TestStopFeedHaltsDelivery(t *testing.T) {
	bus := NewBus()
	m := NewManager(bus, NewHub(zerolog.Nop()), zerolog.Nop())

	m.StartFeed("landlord-1")
	bus.Publish(ChangeEvent{Kind: ChangeInsert, OwnerID: "landlord-1", Request: request("First", models.RequestPending)})
	waitForNotifications(t, m.Center("landlord-1"), 1)

	m.StopFeed("landlord-1")

	bus.Publish(ChangeEvent{Kind: ChangeInsert, OwnerID: "landlord-1", Request: request("Second", models.RequestPending)})
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, m.Center("landlord-1").List(), 1, "no delivery after teardown")
}

func TestRestartedFeedDoesNotDoubleDeliver(t *testing.T) {
	bus := NewBus()
	m := NewManager(bus, NewHub(zerolog.Nop()), zerolog.Nop())

	m.StartFeed("landlord-1")
	m.StartFeed("landlord-1")
	defer m.StopFeed("landlord-1")

	bus.Publish(ChangeEvent{Kind: ChangeInsert, OwnerID: "landlord-1", Request: request("Once", models.RequestPending)})

	time.Sleep(50 * time.Millisecond)
	assert.Len(t, m.Center("landlord-1").List(), 1)
}
