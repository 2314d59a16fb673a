package notify

import "property-engine/internal/models"

// ChangeKind classifies a row change on the maintenance-request table
type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
)

// ChangeEvent is a server-pushed notification that a maintenance request
// row was inserted or updated. Updates carry the prior row so consumers
// can compare fields across the change.
type ChangeEvent struct {
	Kind     ChangeKind
	OwnerID  string
	Request  models.MaintenanceRequest
	Previous *models.MaintenanceRequest
}
