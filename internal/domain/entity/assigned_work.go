package entity

import (
	"time"
)

type WorkStatus string

const (
	WorkAssigned   WorkStatus = "assigned"
	WorkInProgress WorkStatus = "in_progress"
	WorkCompleted  WorkStatus = "completed"
)

// AssignedWork tracks a complaint the district body has delegated to an
// external contractor. Completion drives the complaint to resolved.
type AssignedWork struct {
	ID            string     `json:"id" firestore:"id"`
	ComplaintID   string     `json:"complaint_id" firestore:"complaintId"`
	ContractorID  string     `json:"contractor_id" firestore:"contractorId"`
	AssignedByID  string     `json:"assigned_by_id" firestore:"assignedById"`
	EstimatedCost float64    `json:"estimated_cost" firestore:"estimatedCost"`
	Deadline      time.Time  `json:"deadline" firestore:"deadline"`
	Status        WorkStatus `json:"status" firestore:"status"`

	CompletionDetails *CompletionDetails `json:"completion_details,omitempty" firestore:"completionDetails,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type CompletionDetails struct {
	CompletedAt time.Time `json:"completed_at" firestore:"completedAt"`
	Expenditure float64   `json:"expenditure" firestore:"expenditure"`
	Remarks     string    `json:"remarks,omitempty" firestore:"remarks,omitempty"`
	WorkPhotos  []string  `json:"work_photos,omitempty" firestore:"workPhotos,omitempty"`
}
