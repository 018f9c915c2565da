package entity

import (
	"time"
)

// ResolutionLine captures one inventory item consumed while resolving a
// complaint. Name, unit and cost are copied from the item at resolution time
// so the record stays meaningful if the item is later renamed or repriced.
type ResolutionLine struct {
	ItemID   string  `json:"item_id" firestore:"itemId"`
	ItemName string  `json:"item_name" firestore:"itemName"`
	Quantity int64   `json:"quantity" firestore:"quantity"`
	Unit     string  `json:"unit" firestore:"unit"`
	Cost     float64 `json:"cost" firestore:"cost"`
}

// ResolutionRecord is created exactly once per complaint, by the resolution
// coordinator, at the moment the complaint becomes resolved. Immutable.
type ResolutionRecord struct {
	ID          string `json:"id" firestore:"id"`
	ComplaintID string `json:"complaint_id" firestore:"complaintId"`

	ResolvedByID   string `json:"resolved_by_id" firestore:"resolvedById"`
	ResolvedByTier Tier   `json:"resolved_by_tier" firestore:"resolvedByTier"`

	Expenditure        float64          `json:"expenditure" firestore:"expenditure"`
	InventoryUsed      []ResolutionLine `json:"inventory_used" firestore:"inventoryUsed"`
	TotalInventoryCost float64          `json:"total_inventory_cost" firestore:"totalInventoryCost"`
	Remarks            string           `json:"remarks,omitempty" firestore:"remarks,omitempty"`

	ResolvedAt time.Time `json:"resolved_at" firestore:"resolvedAt"`
}
