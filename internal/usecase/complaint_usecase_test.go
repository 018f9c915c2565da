package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jalsetu/internal/domain/entity"
	"jalsetu/pkg/errors"
)

func TestCreateComplaint(t *testing.T) {
	f := newFixture()
	_, _, village, citizen := f.addTree()

	complaint, err := f.complaints.CreateComplaint(context.Background(), citizen.ID, CreateComplaintInput{
		Title:       "Leaking pipeline",
		Description: "Continuous leak near the temple",
		Location:    "Ward 2",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ComplaintPending, complaint.Status)
	assert.Equal(t, citizen.ID, complaint.CitizenID)
	assert.Equal(t, village.ID, complaint.VillageCouncilID)
}

func TestCreateComplaintRejectsNonCitizens(t *testing.T) {
	f := newFixture()
	_, _, village, _ := f.addTree()

	_, err := f.complaints.CreateComplaint(context.Background(), village.ID, CreateComplaintInput{
		Title:       "x",
		Description: "y",
		Location:    "z",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestEscalateFollowsHierarchy(t *testing.T) {
	f := newFixture()
	district, block, village, citizen := f.addTree()
	complaint := f.addComplaint(citizen, village, entity.ComplaintPending)

	// village -> block
	escalated, err := f.complaints.Escalate(context.Background(), complaint.ID, village.ID, block.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintEscalated, escalated.Status)
	assert.Equal(t, block.ID, escalated.EscalatedTo)
	require.NotNil(t, escalated.EscalatedAt)

	// block -> district
	escalated, err = f.complaints.Escalate(context.Background(), complaint.ID, block.ID, district.ID)
	require.NoError(t, err)
	assert.Equal(t, district.ID, escalated.EscalatedTo)
}

func TestEscalateNotifiesTarget(t *testing.T) {
	f := newFixture()
	_, block, village, citizen := f.addTree()
	complaint := f.addComplaint(citizen, village, entity.ComplaintPending)

	_, err := f.complaints.Escalate(context.Background(), complaint.ID, village.ID, block.ID)
	require.NoError(t, err)

	assert.Contains(t, f.notifier.broadcast, EventComplaintEscalated)
	assert.Equal(t, []string{EventComplaintEscalated}, f.notifier.directed[block.ID])
}

func TestEscalateRejectsNonParentTarget(t *testing.T) {
	f := newFixture()
	district, _, village, citizen := f.addTree()
	complaint := f.addComplaint(citizen, village, entity.ComplaintPending)

	// Skipping the block council is not allowed.
	_, err := f.complaints.Escalate(context.Background(), complaint.ID, village.ID, district.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TARGET"))
	assert.Equal(t, entity.ComplaintPending, f.store.complaints[complaint.ID].Status)
}

func TestEscalateRejectsNonHolder(t *testing.T) {
	f := newFixture()
	district, block, village, citizen := f.addTree()
	complaint := f.addComplaint(citizen, village, entity.ComplaintPending)

	// Only the village council holds it until it escalates.
	_, err := f.complaints.Escalate(context.Background(), complaint.ID, block.ID, district.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// After escalation the village council loses the complaint.
	_, err = f.complaints.Escalate(context.Background(), complaint.ID, village.ID, block.ID)
	require.NoError(t, err)
	_, err = f.complaints.Escalate(context.Background(), complaint.ID, village.ID, block.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestEscalateRejectsTerminalStates(t *testing.T) {
	f := newFixture()
	_, block, village, citizen := f.addTree()

	resolved := f.addComplaint(citizen, village, entity.ComplaintResolved)
	_, err := f.complaints.Escalate(context.Background(), resolved.ID, village.ID, block.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))

	assigned := f.addComplaint(citizen, village, entity.ComplaintAssigned)
	_, err = f.complaints.Escalate(context.Background(), assigned.ID, village.ID, block.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))
}

func TestAssignWorkToContractor(t *testing.T) {
	f := newFixture()
	district, _, village, citizen := f.addTree()
	contractor := f.addActor(entity.TierContractor, nil)
	complaint := f.addComplaint(citizen, village, entity.ComplaintEscalated)

	work, err := f.complaints.Assign(context.Background(), complaint.ID, district.ID, AssignWorkInput{
		ContractorID:  contractor.ID,
		EstimatedCost: 15000,
		Deadline:      time.Now().Add(14 * 24 * time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.WorkAssigned, work.Status)
	assert.Equal(t, contractor.ID, work.ContractorID)
	assert.Equal(t, district.ID, work.AssignedByID)
	assert.Equal(t, entity.ComplaintAssigned, f.store.complaints[complaint.ID].Status)
	assert.Equal(t, []string{EventComplaintAssigned}, f.notifier.directed[contractor.ID])
}

func TestAssignRejectsNonDistrictActors(t *testing.T) {
	f := newFixture()
	_, _, village, citizen := f.addTree()
	contractor := f.addActor(entity.TierContractor, nil)
	complaint := f.addComplaint(citizen, village, entity.ComplaintPending)

	_, err := f.complaints.Assign(context.Background(), complaint.ID, village.ID, AssignWorkInput{ContractorID: contractor.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestAssignRejectsTerminalComplaints(t *testing.T) {
	f := newFixture()
	district, _, village, citizen := f.addTree()
	contractor := f.addActor(entity.TierContractor, nil)
	complaint := f.addComplaint(citizen, village, entity.ComplaintResolved)

	_, err := f.complaints.Assign(context.Background(), complaint.ID, district.ID, AssignWorkInput{ContractorID: contractor.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))
}

func TestCompleteAssignedWorkResolvesComplaint(t *testing.T) {
	f := newFixture()
	district, _, village, citizen := f.addTree()
	contractor := f.addActor(entity.TierContractor, nil)
	complaint := f.addComplaint(citizen, village, entity.ComplaintEscalated)

	work, err := f.complaints.Assign(context.Background(), complaint.ID, district.ID, AssignWorkInput{
		ContractorID: contractor.ID,
	})
	require.NoError(t, err)

	completed, err := f.complaints.CompleteAssignedWork(context.Background(), work.ID, contractor.ID, CompleteWorkInput{
		Expenditure: 12000,
		Remarks:     "pipeline relaid",
		WorkPhotos:  []string{"https://storage.googleapis.com/bucket/photo.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.WorkCompleted, completed.Status)
	require.NotNil(t, completed.CompletionDetails)
	assert.Equal(t, 12000.0, completed.CompletionDetails.Expenditure)
	assert.Equal(t, entity.ComplaintResolved, f.store.complaints[complaint.ID].Status)

	// A second completion attempt is rejected.
	_, err = f.complaints.CompleteAssignedWork(context.Background(), work.ID, contractor.ID, CompleteWorkInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))
}

func TestCompleteAssignedWorkRejectsOtherContractors(t *testing.T) {
	f := newFixture()
	district, _, village, citizen := f.addTree()
	contractor := f.addActor(entity.TierContractor, nil)
	other := f.addActor(entity.TierContractor, nil)
	complaint := f.addComplaint(citizen, village, entity.ComplaintPending)

	work, err := f.complaints.Assign(context.Background(), complaint.ID, district.ID, AssignWorkInput{
		ContractorID: contractor.ID,
	})
	require.NoError(t, err)

	_, err = f.complaints.CompleteAssignedWork(context.Background(), work.ID, other.ID, CompleteWorkInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Equal(t, entity.ComplaintAssigned, f.store.complaints[complaint.ID].Status)
}

func TestComplaintListsAndStats(t *testing.T) {
	f := newFixture()
	_, block, village, citizen := f.addTree()
	f.addComplaint(citizen, village, entity.ComplaintPending)
	f.addComplaint(citizen, village, entity.ComplaintResolved)
	escalated := f.addComplaint(citizen, village, entity.ComplaintEscalated)
	escalated.EscalatedTo = block.ID

	byCitizen, err := f.complaints.ListByCitizen(context.Background(), citizen.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, byCitizen, 3)

	pending, err := f.complaints.ListByCouncil(context.Background(), village.ID, entity.ComplaintPending, 0, 0)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	atBlock, err := f.complaints.ListEscalatedTo(context.Background(), block.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, atBlock, 1)

	stats, err := f.complaints.Stats(context.Background(), village.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats[entity.ComplaintPending])
	assert.Equal(t, 1, stats[entity.ComplaintEscalated])
	assert.Equal(t, 1, stats[entity.ComplaintResolved])
}
