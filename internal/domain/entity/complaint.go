package entity

import (
	"time"
)

type ComplaintStatus string

const (
	ComplaintPending   ComplaintStatus = "pending"
	ComplaintEscalated ComplaintStatus = "escalated"
	ComplaintAssigned  ComplaintStatus = "assigned"
	ComplaintResolved  ComplaintStatus = "resolved"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

type Complaint struct {
	ID          string          `json:"id" firestore:"id"`
	Title       string          `json:"title" firestore:"title"`
	Description string          `json:"description" firestore:"description"`
	Location    string          `json:"location" firestore:"location"`
	Coordinates *Coordinates    `json:"coordinates,omitempty" firestore:"coordinates,omitempty"`
	PhotoURL    string          `json:"photo_url,omitempty" firestore:"photoUrl,omitempty"`
	Status      ComplaintStatus `json:"status" firestore:"status"`

	CitizenID        string `json:"citizen_id" firestore:"citizenId"`
	VillageCouncilID string `json:"village_council_id" firestore:"villageCouncilId"`

	EscalatedTo string     `json:"escalated_to,omitempty" firestore:"escalatedTo,omitempty"`
	EscalatedAt *time.Time `json:"escalated_at,omitempty" firestore:"escalatedAt,omitempty"`

	// Populated once, when the complaint reaches resolved. The full record
	// lives in the resolutions collection; this is the embedded summary.
	Resolution *ResolutionSummary `json:"resolution,omitempty" firestore:"resolution,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type ResolutionSummary struct {
	ResolutionID string    `json:"resolution_id" firestore:"resolutionId"`
	Expenditure  float64   `json:"expenditure" firestore:"expenditure"`
	ResolvedAt   time.Time `json:"resolved_at" firestore:"resolvedAt"`
	Remarks      string    `json:"remarks,omitempty" firestore:"remarks,omitempty"`
}

// IsTerminal reports whether no further escalation is possible. Assigned
// complaints still move to resolved when the contractor completes the work,
// but they can no longer travel up the hierarchy.
func (s ComplaintStatus) IsTerminal() bool {
	return s == ComplaintResolved || s == ComplaintAssigned
}
