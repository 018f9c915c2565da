package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/infrastructure/metrics"
	"jalsetu/pkg/errors"
)

// ComplaintUseCase owns the complaint state machine: pending -> escalated*
// -> resolved, or pending/escalated -> assigned -> resolved. Transitions on
// one complaint are serialized through the unit of work, so two concurrent
// writers cannot both win.
type ComplaintUseCase struct {
	complaintRepo repository.ComplaintRepository
	workRepo      repository.AssignedWorkRepository
	hierarchy     *HierarchyUseCase
	uow           repository.UnitOfWork
	notifier      Notifier
}

func NewComplaintUseCase(
	complaintRepo repository.ComplaintRepository,
	workRepo repository.AssignedWorkRepository,
	hierarchy *HierarchyUseCase,
	uow repository.UnitOfWork,
	notifier Notifier,
) *ComplaintUseCase {
	return &ComplaintUseCase{
		complaintRepo: complaintRepo,
		workRepo:      workRepo,
		hierarchy:     hierarchy,
		uow:           uow,
		notifier:      notifier,
	}
}

type CreateComplaintInput struct {
	Title       string
	Description string
	Location    string
	Coordinates *entity.Coordinates
	PhotoURL    string
}

// CreateComplaint files a new issue for a citizen. The owning village
// council is the citizen's parent in the hierarchy.
func (uc *ComplaintUseCase) CreateComplaint(ctx context.Context, citizenID string, input CreateComplaintInput) (*entity.Complaint, error) {
	citizen, err := uc.hierarchy.GetActor(ctx, citizenID)
	if err != nil {
		return nil, err
	}
	if citizen.Tier != entity.TierCitizen {
		return nil, errors.Forbidden("only citizens can file complaints", nil)
	}
	if citizen.ParentID == "" {
		return nil, errors.BadRequest("citizen is not associated with any village council", nil)
	}

	complaint := &entity.Complaint{
		ID:               uuid.New().String(),
		Title:            input.Title,
		Description:      input.Description,
		Location:         input.Location,
		Coordinates:      input.Coordinates,
		PhotoURL:         input.PhotoURL,
		Status:           entity.ComplaintPending,
		CitizenID:        citizen.ID,
		VillageCouncilID: citizen.ParentID,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := uc.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, errors.Internal("failed to create complaint", err)
	}

	metrics.ComplaintsCreated.Inc()
	uc.publish(EventComplaintCreated, complaint)
	return complaint, nil
}

// Escalate forwards the complaint one tier up. The target must be the
// current holder's direct parent; resolved and assigned complaints cannot
// travel further.
func (uc *ComplaintUseCase) Escalate(ctx context.Context, complaintID, actorID, targetID string) (*entity.Complaint, error) {
	var escalated *entity.Complaint

	err := uc.uow.Run(ctx, func(ctx context.Context, store repository.TxStore) error {
		complaint, err := store.GetComplaint(ctx, complaintID)
		if err != nil {
			return errors.NotFound("complaint", err)
		}

		if complaint.Status.IsTerminal() {
			return errors.InvalidTransition("complaint can no longer be escalated")
		}

		holderID := complaint.VillageCouncilID
		if complaint.EscalatedTo != "" {
			holderID = complaint.EscalatedTo
		}
		if actorID != holderID {
			return errors.Forbidden("only the tier currently holding the complaint can escalate it", nil)
		}

		ok, err := uc.hierarchy.IsValidEscalationTarget(ctx, holderID, targetID)
		if err != nil {
			return err
		}
		if !ok {
			return errors.InvalidTarget("escalation target must be the holder's direct parent")
		}

		now := time.Now()
		complaint.Status = entity.ComplaintEscalated
		complaint.EscalatedTo = targetID
		complaint.EscalatedAt = &now
		complaint.UpdatedAt = now

		if err := store.SetComplaint(ctx, complaint); err != nil {
			return err
		}
		escalated = complaint
		return nil
	})
	if err != nil {
		return nil, coordinationErr(err)
	}

	metrics.ComplaintsEscalated.Inc()
	uc.publish(EventComplaintEscalated, escalated)
	uc.publishTo(targetID, EventComplaintEscalated, escalated)
	return escalated, nil
}

type AssignWorkInput struct {
	ContractorID  string
	EstimatedCost float64
	Deadline      time.Time
}

// Assign delegates a complaint to an external contractor. Only the district
// body can assign; already-terminal complaints are rejected.
func (uc *ComplaintUseCase) Assign(ctx context.Context, complaintID, actorID string, input AssignWorkInput) (*entity.AssignedWork, error) {
	actor, err := uc.hierarchy.GetActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Tier != entity.TierDistrictBody {
		return nil, errors.Forbidden("only the district body can assign work to contractors", nil)
	}

	contractor, err := uc.hierarchy.GetActor(ctx, input.ContractorID)
	if err != nil {
		return nil, errors.NotFound("contract agency", err)
	}
	if contractor.Tier != entity.TierContractor {
		return nil, errors.NotFound("contract agency", nil)
	}

	var work *entity.AssignedWork
	var assigned *entity.Complaint

	err = uc.uow.Run(ctx, func(ctx context.Context, store repository.TxStore) error {
		complaint, err := store.GetComplaint(ctx, complaintID)
		if err != nil {
			return errors.NotFound("complaint", err)
		}
		if complaint.Status.IsTerminal() {
			return errors.InvalidTransition("complaint is already assigned or resolved")
		}

		now := time.Now()
		work = &entity.AssignedWork{
			ID:            uuid.New().String(),
			ComplaintID:   complaint.ID,
			ContractorID:  contractor.ID,
			AssignedByID:  actor.ID,
			EstimatedCost: input.EstimatedCost,
			Deadline:      input.Deadline,
			Status:        entity.WorkAssigned,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := store.SetAssignedWork(ctx, work); err != nil {
			return err
		}

		complaint.Status = entity.ComplaintAssigned
		complaint.UpdatedAt = now
		if err := store.SetComplaint(ctx, complaint); err != nil {
			return err
		}
		assigned = complaint
		return nil
	})
	if err != nil {
		return nil, coordinationErr(err)
	}

	uc.publish(EventComplaintAssigned, assigned)
	uc.publishTo(contractor.ID, EventComplaintAssigned, assigned)
	return work, nil
}

type CompleteWorkInput struct {
	Expenditure float64
	Remarks     string
	WorkPhotos  []string
}

// CompleteAssignedWork is the external completion path: the contractor
// reports the work done and the complaint moves to resolved.
func (uc *ComplaintUseCase) CompleteAssignedWork(ctx context.Context, workID, contractorID string, input CompleteWorkInput) (*entity.AssignedWork, error) {
	var completed *entity.AssignedWork
	var resolved *entity.Complaint

	err := uc.uow.Run(ctx, func(ctx context.Context, store repository.TxStore) error {
		work, err := store.GetAssignedWork(ctx, workID)
		if err != nil {
			return errors.NotFound("assigned work", err)
		}
		if work.ContractorID != contractorID {
			return errors.Forbidden("only the assigned contractor can complete this work", nil)
		}
		if work.Status == entity.WorkCompleted {
			return errors.InvalidTransition("work is already completed")
		}

		complaint, err := store.GetComplaint(ctx, work.ComplaintID)
		if err != nil {
			return errors.NotFound("complaint", err)
		}
		if complaint.Status == entity.ComplaintResolved {
			return errors.AlreadyResolved(complaint.ID)
		}

		now := time.Now()
		work.Status = entity.WorkCompleted
		work.CompletionDetails = &entity.CompletionDetails{
			CompletedAt: now,
			Expenditure: input.Expenditure,
			Remarks:     input.Remarks,
			WorkPhotos:  input.WorkPhotos,
		}
		work.UpdatedAt = now
		if err := store.SetAssignedWork(ctx, work); err != nil {
			return err
		}

		complaint.Status = entity.ComplaintResolved
		complaint.UpdatedAt = now
		if err := store.SetComplaint(ctx, complaint); err != nil {
			return err
		}

		completed = work
		resolved = complaint
		return nil
	})
	if err != nil {
		return nil, coordinationErr(err)
	}

	metrics.ComplaintsResolved.Inc()
	uc.publish(EventComplaintResolved, resolved)
	return completed, nil
}

func (uc *ComplaintUseCase) GetComplaint(ctx context.Context, id string) (*entity.Complaint, error) {
	complaint, err := uc.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("complaint", err)
	}
	return complaint, nil
}

func (uc *ComplaintUseCase) ListByCouncil(ctx context.Context, councilID string, status entity.ComplaintStatus, limit, offset int) ([]*entity.Complaint, error) {
	return uc.complaintRepo.ListByCouncil(ctx, councilID, status, limit, offset)
}

func (uc *ComplaintUseCase) ListByCitizen(ctx context.Context, citizenID string, limit, offset int) ([]*entity.Complaint, error) {
	return uc.complaintRepo.ListByCitizen(ctx, citizenID, limit, offset)
}

// ListEscalatedTo returns the escalated complaints waiting at an actor's
// desk.
func (uc *ComplaintUseCase) ListEscalatedTo(ctx context.Context, actorID string, limit, offset int) ([]*entity.Complaint, error) {
	return uc.complaintRepo.ListEscalatedTo(ctx, actorID, limit, offset)
}

func (uc *ComplaintUseCase) Stats(ctx context.Context, councilID string) (map[entity.ComplaintStatus]int, error) {
	return uc.complaintRepo.CountByStatus(ctx, councilID)
}

func (uc *ComplaintUseCase) ListWorksByContractor(ctx context.Context, contractorID string) ([]*entity.AssignedWork, error) {
	return uc.workRepo.ListByContractor(ctx, contractorID)
}

func (uc *ComplaintUseCase) publish(eventType string, complaint *entity.Complaint) {
	if uc.notifier == nil || complaint == nil {
		return
	}
	uc.notifier.PublishComplaintEvent(eventType, complaint)
}

// publishTo pings the actor the complaint just landed on, so an escalation
// target or contractor sees it without watching the broadcast stream.
func (uc *ComplaintUseCase) publishTo(actorID, eventType string, complaint *entity.Complaint) {
	if uc.notifier == nil || complaint == nil {
		return
	}
	uc.notifier.PublishComplaintEventTo(actorID, eventType, complaint)
}
