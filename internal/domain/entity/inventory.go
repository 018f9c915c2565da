package entity

import (
	"time"
)

type ItemCategory string

const (
	CategoryPipes     ItemCategory = "pipes"
	CategoryMotors    ItemCategory = "motors"
	CategoryTanks     ItemCategory = "tanks"
	CategoryValves    ItemCategory = "valves"
	CategoryMeters    ItemCategory = "meters"
	CategoryChemicals ItemCategory = "chemicals"
	CategoryFilters   ItemCategory = "filters"
	CategoryOther     ItemCategory = "other"
)

type ItemStatus string

const (
	ItemActive      ItemStatus = "active"
	ItemMaintenance ItemStatus = "maintenance"
	ItemOutOfStock  ItemStatus = "out_of_stock"
)

// InventoryItem is a stock record owned by one village council.
type InventoryItem struct {
	ID           string       `json:"id" firestore:"id"`
	Name         string       `json:"name" firestore:"name"`
	Category     ItemCategory `json:"category" firestore:"category"`
	Quantity     int64        `json:"quantity" firestore:"quantity"`
	Unit         string       `json:"unit" firestore:"unit"` // pieces, meters, liters, kg
	UnitCost     float64      `json:"unit_cost" firestore:"unitCost"`
	MinimumStock int64        `json:"minimum_stock" firestore:"minimumStock"`
	Status       ItemStatus   `json:"status" firestore:"status"`
	Location     string       `json:"location,omitempty" firestore:"location,omitempty"`

	VillageCouncilID string `json:"village_council_id" firestore:"villageCouncilId"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// DeriveStatus recomputes the stock status after a quantity change. An item
// explicitly parked in maintenance stays there until taken out by hand.
func (i *InventoryItem) DeriveStatus() {
	if i.Status == ItemMaintenance {
		return
	}
	if i.Quantity <= i.MinimumStock {
		i.Status = ItemOutOfStock
	} else {
		i.Status = ItemActive
	}
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// InventoryRequest is a village council's proposal to its parent block
// council to add stock. Approval is the only path that creates a new
// InventoryItem; once approved or rejected the request is immutable.
type InventoryRequest struct {
	ID           string       `json:"id" firestore:"id"`
	ItemName     string       `json:"item_name" firestore:"itemName"`
	Category     ItemCategory `json:"category" firestore:"category"`
	Quantity     int64        `json:"quantity" firestore:"quantity"`
	Unit         string       `json:"unit" firestore:"unit"`
	UnitCost     float64      `json:"unit_cost" firestore:"unitCost"`
	MinimumStock int64        `json:"minimum_stock" firestore:"minimumStock"`
	Description  string       `json:"description" firestore:"description"`
	Urgency      Urgency      `json:"urgency" firestore:"urgency"`

	Status RequestStatus `json:"status" firestore:"status"`

	VillageCouncilID string `json:"village_council_id" firestore:"villageCouncilId"`
	BlockCouncilID   string `json:"block_council_id" firestore:"blockCouncilId"`

	ProcessedBy string     `json:"processed_by,omitempty" firestore:"processedBy,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty" firestore:"processedAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// InventoryStats is the aggregate view a council dashboard shows for its
// stock, recomputed from the item list on every read.
type InventoryStats struct {
	TotalItems       int     `json:"total_items"`
	TotalValue       float64 `json:"total_value"`
	ActiveItems      int     `json:"active_items"`
	MaintenanceItems int     `json:"maintenance_items"`
	LowStockItems    int     `json:"low_stock_items"`
}
