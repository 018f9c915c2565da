package entity

import (
	"time"
)

// Tier identifies an actor's position in the four-level organisational
// hierarchy. Contractors sit outside the hierarchy and have no parent.
type Tier string

const (
	TierCitizen        Tier = "citizen"
	TierVillageCouncil Tier = "village_council"
	TierBlockCouncil   Tier = "block_council"
	TierDistrictBody   Tier = "district_body"
	TierContractor     Tier = "contractor"
)

// tierLevel orders the hierarchy from citizen (0) to district body (3).
var tierLevel = map[Tier]int{
	TierCitizen:        0,
	TierVillageCouncil: 1,
	TierBlockCouncil:   2,
	TierDistrictBody:   3,
}

// Level returns the hierarchy level of the tier, or -1 for tiers outside
// the hierarchy (contractor, unknown).
func (t Tier) Level() int {
	level, ok := tierLevel[t]
	if !ok {
		return -1
	}
	return level
}

// HasParent reports whether actors of this tier carry a parent reference.
func (t Tier) HasParent() bool {
	return t == TierCitizen || t == TierVillageCouncil || t == TierBlockCouncil
}

// IsValid reports whether the tier is one of the known values.
func (t Tier) IsValid() bool {
	switch t {
	case TierCitizen, TierVillageCouncil, TierBlockCouncil, TierDistrictBody, TierContractor:
		return true
	}
	return false
}

type Actor struct {
	ID         string     `json:"id" firestore:"id"`
	UniqueID   string     `json:"unique_id" firestore:"uniqueId"`
	Tier       Tier       `json:"tier" firestore:"tier"`
	ParentID   string     `json:"parent_id,omitempty" firestore:"parentId,omitempty"`
	ParentTier Tier       `json:"parent_tier,omitempty" firestore:"parentTier,omitempty"`

	// Contractor-only fields.
	AgencyDetails *AgencyDetails `json:"agency_details,omitempty" firestore:"agencyDetails,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type AgencyDetails struct {
	CompanyName        string   `json:"company_name" firestore:"companyName"`
	RegistrationNumber string   `json:"registration_number" firestore:"registrationNumber"`
	ContactNumber      string   `json:"contact_number,omitempty" firestore:"contactNumber,omitempty"`
	Address            string   `json:"address,omitempty" firestore:"address,omitempty"`
	ServiceArea        []string `json:"service_area,omitempty" firestore:"serviceArea,omitempty"`
	Specializations    []string `json:"specializations,omitempty" firestore:"specializations,omitempty"`
	Status             string   `json:"status" firestore:"status"` // Active, Inactive, Blacklisted
}

// ValidateHierarchy checks the parent edge: the parent tier must sit exactly
// one level above the actor's own tier. District bodies and contractors must
// not carry a parent at all.
func (a *Actor) ValidateHierarchy() bool {
	if !a.Tier.IsValid() {
		return false
	}
	if !a.Tier.HasParent() {
		return a.ParentID == "" && a.ParentTier == ""
	}
	if a.ParentID == "" {
		return false
	}
	return a.ParentTier.Level() == a.Tier.Level()+1
}
