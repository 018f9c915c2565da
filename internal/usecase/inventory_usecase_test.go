package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jalsetu/internal/domain/entity"
	"jalsetu/pkg/errors"
)

func TestAddItemDerivesStatus(t *testing.T) {
	f := newFixture()
	_, _, village, _ := f.addTree()

	item, err := f.inventory.AddItem(context.Background(), village.ID, ItemSpec{
		Name: "PVC Pipe", Category: entity.CategoryPipes, Quantity: 10, Unit: "pieces", UnitCost: 50, MinimumStock: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemActive, item.Status)

	empty, err := f.inventory.AddItem(context.Background(), village.ID, ItemSpec{
		Name: "Chlorine", Category: entity.CategoryChemicals, Quantity: 0, Unit: "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemOutOfStock, empty.Status)
}

func TestAddItemRejectsNonVillageOwners(t *testing.T) {
	f := newFixture()
	_, block, _, _ := f.addTree()

	_, err := f.inventory.AddItem(context.Background(), block.ID, ItemSpec{Name: "Pipe", Quantity: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestUpdateQuantityChecksOwnership(t *testing.T) {
	f := newFixture()
	_, block, village, _ := f.addTree()
	other := f.addActor(entity.TierVillageCouncil, block)
	item := f.addItem(village, "PVC Pipe", 10, 50, 2)

	updated, err := f.inventory.UpdateQuantity(context.Background(), item.ID, village.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Quantity)
	assert.Equal(t, entity.ItemOutOfStock, updated.Status)

	_, err = f.inventory.UpdateQuantity(context.Background(), item.ID, other.ID, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Equal(t, int64(1), f.store.items[item.ID].Quantity)
}

func TestMaintenanceStatusIsSticky(t *testing.T) {
	f := newFixture()
	_, _, village, _ := f.addTree()
	item := f.addItem(village, "Pump", 5, 2000, 1)

	parked, err := f.inventory.SetMaintenance(context.Background(), item.ID, village.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemMaintenance, parked.Status)

	// Quantity changes do not pull an item out of maintenance.
	updated, err := f.inventory.UpdateQuantity(context.Background(), item.ID, village.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemMaintenance, updated.Status)

	restored, err := f.inventory.SetMaintenance(context.Background(), item.ID, village.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemActive, restored.Status)
}

func TestInventoryStats(t *testing.T) {
	f := newFixture()
	_, _, village, _ := f.addTree()
	f.addItem(village, "PVC Pipe", 10, 50, 2)  // active, value 500
	f.addItem(village, "Chlorine", 1, 100, 5)  // low stock, value 100
	pump := f.addItem(village, "Pump", 3, 2000, 1)
	_, err := f.inventory.SetMaintenance(context.Background(), pump.ID, village.ID, true)
	require.NoError(t, err)

	stats, err := f.inventory.Stats(context.Background(), village.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 6600.0, stats.TotalValue)
	assert.Equal(t, 1, stats.ActiveItems)
	assert.Equal(t, 1, stats.MaintenanceItems)
	assert.Equal(t, 1, stats.LowStockItems)
}

func TestSubmitRequestRoutesToParent(t *testing.T) {
	f := newFixture()
	_, block, village, _ := f.addTree()

	request, err := f.inventory.SubmitRequest(context.Background(), village.ID, ItemSpec{
		Name: "Water Meter", Category: entity.CategoryMeters, Quantity: 20, Unit: "pieces", UnitCost: 450,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RequestPending, request.Status)
	assert.Equal(t, village.ID, request.VillageCouncilID)
	assert.Equal(t, block.ID, request.BlockCouncilID)
	assert.Equal(t, entity.UrgencyNormal, request.Urgency)
}

func TestSubmitRequestRequiresStoredParent(t *testing.T) {
	f := newFixture()
	orphan := f.addActor(entity.TierVillageCouncil, nil)

	_, err := f.inventory.SubmitRequest(context.Background(), orphan.ID, ItemSpec{
		Name: "Water Meter", Category: entity.CategoryMeters, Quantity: 20, Unit: "pieces",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	// Nothing is persisted when no parent can be resolved.
	assert.Empty(t, f.store.requests)
}

func TestApproveRequestCreatesItem(t *testing.T) {
	f := newFixture()
	_, block, village, _ := f.addTree()

	request, err := f.inventory.SubmitRequest(context.Background(), village.ID, ItemSpec{
		Name: "Water Meter", Category: entity.CategoryMeters, Quantity: 20, Unit: "pieces", UnitCost: 450, MinimumStock: 5,
	})
	require.NoError(t, err)

	approved, err := f.inventory.Approve(context.Background(), request.ID, block.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestApproved, approved.Status)
	assert.Equal(t, block.ID, approved.ProcessedBy)
	require.NotNil(t, approved.ProcessedAt)

	items, err := f.inventory.ListItems(context.Background(), village.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Water Meter", items[0].Name)
	assert.Equal(t, int64(20), items[0].Quantity)
	assert.Equal(t, entity.ItemActive, items[0].Status)

	// Requests are processed exactly once.
	_, err = f.inventory.Approve(context.Background(), request.ID, block.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))
	items, _ = f.inventory.ListItems(context.Background(), village.ID)
	assert.Len(t, items, 1)
}

func TestRejectRequestCreatesNoItem(t *testing.T) {
	f := newFixture()
	_, block, village, _ := f.addTree()

	request, err := f.inventory.SubmitRequest(context.Background(), village.ID, ItemSpec{
		Name: "Water Meter", Category: entity.CategoryMeters, Quantity: 20, Unit: "pieces",
	})
	require.NoError(t, err)

	rejected, err := f.inventory.Reject(context.Background(), request.ID, block.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestRejected, rejected.Status)

	items, err := f.inventory.ListItems(context.Background(), village.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestProcessRequestRequiresStoredParent(t *testing.T) {
	f := newFixture()
	district, block, village, _ := f.addTree()
	otherBlock := f.addActor(entity.TierBlockCouncil, district)

	request, err := f.inventory.SubmitRequest(context.Background(), village.ID, ItemSpec{
		Name: "Water Meter", Category: entity.CategoryMeters, Quantity: 20, Unit: "pieces",
	})
	require.NoError(t, err)

	_, err = f.inventory.Approve(context.Background(), request.ID, otherBlock.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Equal(t, entity.RequestPending, f.store.requests[request.ID].Status)

	_, err = f.inventory.Approve(context.Background(), request.ID, block.ID)
	require.NoError(t, err)
}

func TestListRequestsByApproverFiltersStatus(t *testing.T) {
	f := newFixture()
	_, block, village, _ := f.addTree()

	first, err := f.inventory.SubmitRequest(context.Background(), village.ID, ItemSpec{
		Name: "Water Meter", Category: entity.CategoryMeters, Quantity: 20, Unit: "pieces",
	})
	require.NoError(t, err)
	_, err = f.inventory.SubmitRequest(context.Background(), village.ID, ItemSpec{
		Name: "Valve", Category: entity.CategoryValves, Quantity: 5, Unit: "pieces",
	})
	require.NoError(t, err)

	_, err = f.inventory.Approve(context.Background(), first.ID, block.ID)
	require.NoError(t, err)

	pending, err := f.inventory.ListRequestsForApprover(context.Background(), block.ID, entity.RequestPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := f.inventory.ListRequestsForApprover(context.Background(), block.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
