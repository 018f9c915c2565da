package usecase

import (
	"jalsetu/internal/domain/entity"
)

// Notifier fans complaint lifecycle events out to connected dashboard
// clients. Publishing happens after the owning operation has committed and
// must never fail the operation.
type Notifier interface {
	PublishComplaintEvent(eventType string, complaint *entity.Complaint)
	PublishComplaintEventTo(actorID, eventType string, complaint *entity.Complaint)
}

// Complaint event types carried by the notifier.
const (
	EventComplaintCreated   = "complaint_created"
	EventComplaintEscalated = "complaint_escalated"
	EventComplaintAssigned  = "complaint_assigned"
	EventComplaintResolved  = "complaint_resolved"
)
