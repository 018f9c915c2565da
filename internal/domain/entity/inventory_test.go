package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	item := &InventoryItem{Quantity: 10, MinimumStock: 2}
	item.DeriveStatus()
	assert.Equal(t, ItemActive, item.Status)

	item.Quantity = 2
	item.DeriveStatus()
	assert.Equal(t, ItemOutOfStock, item.Status)

	// Maintenance is sticky until cleared explicitly.
	item.Status = ItemMaintenance
	item.Quantity = 100
	item.DeriveStatus()
	assert.Equal(t, ItemMaintenance, item.Status)
}

func TestComplaintStatusIsTerminal(t *testing.T) {
	assert.False(t, ComplaintPending.IsTerminal())
	assert.False(t, ComplaintEscalated.IsTerminal())
	assert.True(t, ComplaintAssigned.IsTerminal())
	assert.True(t, ComplaintResolved.IsTerminal())
}
