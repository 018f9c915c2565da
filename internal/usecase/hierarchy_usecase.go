package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/pkg/errors"
)

// HierarchyUseCase is the directory over the organisational tree. It is the
// single place that resolves parent relationships; every other component
// asks it before creating an escalation or approval edge. Read-only after
// registration.
type HierarchyUseCase struct {
	actorRepo repository.ActorRepository
}

func NewHierarchyUseCase(actorRepo repository.ActorRepository) *HierarchyUseCase {
	return &HierarchyUseCase{
		actorRepo: actorRepo,
	}
}

type RegisterActorInput struct {
	// ID is the identity provider's subject; generated when empty.
	ID            string
	UniqueID      string
	Tier          entity.Tier
	ParentID      string
	AgencyDetails *entity.AgencyDetails
}

var tierPrefix = map[entity.Tier]string{
	entity.TierCitizen:        "CT",
	entity.TierVillageCouncil: "GP",
	entity.TierBlockCouncil:   "PS",
	entity.TierDistrictBody:   "ZP",
	entity.TierContractor:     "CA",
}

// RegisterActor validates the parent edge and creates the actor. Actors are
// immutable once registered; the directory never deletes them.
func (uc *HierarchyUseCase) RegisterActor(ctx context.Context, input RegisterActorInput) (*entity.Actor, error) {
	if !input.Tier.IsValid() {
		return nil, errors.BadRequest(fmt.Sprintf("unknown tier %q", input.Tier), nil)
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}

	actor := &entity.Actor{
		ID:        id,
		UniqueID:  input.UniqueID,
		Tier:      input.Tier,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if actor.UniqueID == "" {
		actor.UniqueID = fmt.Sprintf("%s-%s", tierPrefix[input.Tier], uuid.New().String()[:6])
	}

	if input.Tier.HasParent() {
		if input.ParentID == "" {
			return nil, errors.BadRequest("parent reference is required for this tier", nil)
		}
		parent, err := uc.actorRepo.GetByID(ctx, input.ParentID)
		if err != nil {
			return nil, errors.NotFound("parent actor", err)
		}
		if parent.Tier.Level() != input.Tier.Level()+1 {
			return nil, errors.BadRequest("invalid association hierarchy: parent must be exactly one tier above", nil)
		}
		actor.ParentID = parent.ID
		actor.ParentTier = parent.Tier
	} else if input.ParentID != "" {
		return nil, errors.BadRequest(fmt.Sprintf("%s actors have no parent tier", input.Tier), nil)
	}

	if input.Tier == entity.TierContractor {
		if input.AgencyDetails == nil || input.AgencyDetails.CompanyName == "" || input.AgencyDetails.RegistrationNumber == "" {
			return nil, errors.BadRequest("contractor registration requires agency details", nil)
		}
		details := *input.AgencyDetails
		if details.Status == "" {
			details.Status = "Active"
		}
		actor.AgencyDetails = &details
	}

	if !actor.ValidateHierarchy() {
		return nil, errors.BadRequest("invalid association hierarchy", nil)
	}

	if err := uc.actorRepo.Create(ctx, actor); err != nil {
		return nil, errors.Internal("failed to register actor", err)
	}

	return actor, nil
}

func (uc *HierarchyUseCase) GetActor(ctx context.Context, actorID string) (*entity.Actor, error) {
	actor, err := uc.actorRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, errors.NotFound("actor", err)
	}
	return actor, nil
}

// ParentOf resolves the tier directly above the actor. District bodies and
// contractors have none.
func (uc *HierarchyUseCase) ParentOf(ctx context.Context, actorID string) (*entity.Actor, error) {
	actor, err := uc.actorRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, errors.NotFound("actor", err)
	}
	if actor.ParentID == "" {
		return nil, errors.NotFound("parent", nil)
	}
	parent, err := uc.actorRepo.GetByID(ctx, actor.ParentID)
	if err != nil {
		return nil, errors.NotFound("parent", err)
	}
	return parent, nil
}

// IsValidEscalationTarget reports whether target is from's direct parent.
func (uc *HierarchyUseCase) IsValidEscalationTarget(ctx context.Context, fromID, targetID string) (bool, error) {
	from, err := uc.actorRepo.GetByID(ctx, fromID)
	if err != nil {
		return false, errors.NotFound("actor", err)
	}
	return from.ParentID != "" && from.ParentID == targetID, nil
}

// CitizensOf lists the citizens registered under a village council. Feeds
// the billing fan-out.
func (uc *HierarchyUseCase) CitizensOf(ctx context.Context, councilID string) ([]*entity.Actor, error) {
	citizens, err := uc.actorRepo.ListByParent(ctx, councilID, entity.TierCitizen)
	if err != nil {
		return nil, errors.Internal("failed to list citizens", err)
	}
	return citizens, nil
}

// ListContractors returns active contract agencies the district body can
// assign work to.
func (uc *HierarchyUseCase) ListContractors(ctx context.Context) ([]*entity.Actor, error) {
	contractors, err := uc.actorRepo.ListByTier(ctx, entity.TierContractor)
	if err != nil {
		return nil, errors.Internal("failed to list contractors", err)
	}
	active := make([]*entity.Actor, 0, len(contractors))
	for _, c := range contractors {
		if c.AgencyDetails != nil && c.AgencyDetails.Status == "Active" {
			active = append(active, c)
		}
	}
	return active, nil
}
