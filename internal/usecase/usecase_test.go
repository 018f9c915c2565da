package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
)

// In-memory stand-ins for the Firestore adapters. The tx store stages writes
// and only applies them when the unit of work callback succeeds, mirroring
// the commit-or-nothing behavior the real transactions give us.

var errMissing = fmt.Errorf("record not found")

type memStore struct {
	actors       map[string]*entity.Actor
	complaints   map[string]*entity.Complaint
	items        map[string]*entity.InventoryItem
	requests     map[string]*entity.InventoryRequest
	works        map[string]*entity.AssignedWork
	transactions map[string]*entity.Transaction
	resolutions  map[string]*entity.ResolutionRecord

	// failBillsFor makes transaction creation fail for the given citizen,
	// to exercise partial batch billing.
	failBillsFor map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		actors:       make(map[string]*entity.Actor),
		complaints:   make(map[string]*entity.Complaint),
		items:        make(map[string]*entity.InventoryItem),
		requests:     make(map[string]*entity.InventoryRequest),
		works:        make(map[string]*entity.AssignedWork),
		transactions: make(map[string]*entity.Transaction),
		resolutions:  make(map[string]*entity.ResolutionRecord),
		failBillsFor: make(map[string]bool),
	}
}

type memTxStore struct {
	base *memStore

	complaints   map[string]*entity.Complaint
	items        map[string]*entity.InventoryItem
	requests     map[string]*entity.InventoryRequest
	works        map[string]*entity.AssignedWork
	transactions map[string]*entity.Transaction
	resolutions  map[string]*entity.ResolutionRecord
}

func newMemTxStore(base *memStore) *memTxStore {
	return &memTxStore{
		base:         base,
		complaints:   make(map[string]*entity.Complaint),
		items:        make(map[string]*entity.InventoryItem),
		requests:     make(map[string]*entity.InventoryRequest),
		works:        make(map[string]*entity.AssignedWork),
		transactions: make(map[string]*entity.Transaction),
		resolutions:  make(map[string]*entity.ResolutionRecord),
	}
}

func (s *memTxStore) commit() {
	for id, c := range s.complaints {
		s.base.complaints[id] = c
	}
	for id, i := range s.items {
		s.base.items[id] = i
	}
	for id, r := range s.requests {
		s.base.requests[id] = r
	}
	for id, w := range s.works {
		s.base.works[id] = w
	}
	for id, t := range s.transactions {
		s.base.transactions[id] = t
	}
	for id, r := range s.resolutions {
		s.base.resolutions[id] = r
	}
}

func (s *memTxStore) GetComplaint(ctx context.Context, id string) (*entity.Complaint, error) {
	if c, ok := s.complaints[id]; ok {
		return c, nil
	}
	c, ok := s.base.complaints[id]
	if !ok {
		return nil, errMissing
	}
	copied := *c
	return &copied, nil
}

func (s *memTxStore) SetComplaint(ctx context.Context, complaint *entity.Complaint) error {
	s.complaints[complaint.ID] = complaint
	return nil
}

func (s *memTxStore) GetInventoryItem(ctx context.Context, id string) (*entity.InventoryItem, error) {
	if i, ok := s.items[id]; ok {
		return i, nil
	}
	i, ok := s.base.items[id]
	if !ok {
		return nil, errMissing
	}
	copied := *i
	return &copied, nil
}

func (s *memTxStore) SetInventoryItem(ctx context.Context, item *entity.InventoryItem) error {
	s.items[item.ID] = item
	return nil
}

func (s *memTxStore) GetInventoryRequest(ctx context.Context, id string) (*entity.InventoryRequest, error) {
	if r, ok := s.requests[id]; ok {
		return r, nil
	}
	r, ok := s.base.requests[id]
	if !ok {
		return nil, errMissing
	}
	copied := *r
	return &copied, nil
}

func (s *memTxStore) SetInventoryRequest(ctx context.Context, request *entity.InventoryRequest) error {
	s.requests[request.ID] = request
	return nil
}

func (s *memTxStore) GetAssignedWork(ctx context.Context, id string) (*entity.AssignedWork, error) {
	if w, ok := s.works[id]; ok {
		return w, nil
	}
	w, ok := s.base.works[id]
	if !ok {
		return nil, errMissing
	}
	copied := *w
	return &copied, nil
}

func (s *memTxStore) SetAssignedWork(ctx context.Context, work *entity.AssignedWork) error {
	s.works[work.ID] = work
	return nil
}

func (s *memTxStore) GetTransaction(ctx context.Context, id string) (*entity.Transaction, error) {
	if t, ok := s.transactions[id]; ok {
		return t, nil
	}
	t, ok := s.base.transactions[id]
	if !ok {
		return nil, errMissing
	}
	copied := *t
	return &copied, nil
}

func (s *memTxStore) SetTransaction(ctx context.Context, transaction *entity.Transaction) error {
	s.transactions[transaction.ID] = transaction
	return nil
}

func (s *memTxStore) SetResolution(ctx context.Context, record *entity.ResolutionRecord) error {
	s.resolutions[record.ID] = record
	return nil
}

type memUnitOfWork struct {
	store *memStore
}

func (u *memUnitOfWork) Run(ctx context.Context, fn func(ctx context.Context, store repository.TxStore) error) error {
	tx := newMemTxStore(u.store)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func window[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

type memActorRepo struct {
	store *memStore
}

func (r *memActorRepo) Create(ctx context.Context, actor *entity.Actor) error {
	r.store.actors[actor.ID] = actor
	return nil
}

func (r *memActorRepo) GetByID(ctx context.Context, id string) (*entity.Actor, error) {
	a, ok := r.store.actors[id]
	if !ok {
		return nil, errMissing
	}
	copied := *a
	return &copied, nil
}

func (r *memActorRepo) GetByUniqueID(ctx context.Context, uniqueID string) (*entity.Actor, error) {
	for _, a := range r.store.actors {
		if a.UniqueID == uniqueID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, errMissing
}

func (r *memActorRepo) ListByParent(ctx context.Context, parentID string, tier entity.Tier) ([]*entity.Actor, error) {
	var out []*entity.Actor
	for _, a := range r.store.actors {
		if a.ParentID == parentID && a.Tier == tier {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memActorRepo) ListByTier(ctx context.Context, tier entity.Tier) ([]*entity.Actor, error) {
	var out []*entity.Actor
	for _, a := range r.store.actors {
		if a.Tier == tier {
			out = append(out, a)
		}
	}
	return out, nil
}

type memComplaintRepo struct {
	store *memStore
}

func (r *memComplaintRepo) Create(ctx context.Context, complaint *entity.Complaint) error {
	r.store.complaints[complaint.ID] = complaint
	return nil
}

func (r *memComplaintRepo) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	c, ok := r.store.complaints[id]
	if !ok {
		return nil, errMissing
	}
	copied := *c
	return &copied, nil
}

func (r *memComplaintRepo) Update(ctx context.Context, complaint *entity.Complaint) error {
	r.store.complaints[complaint.ID] = complaint
	return nil
}

func (r *memComplaintRepo) ListByCouncil(ctx context.Context, councilID string, status entity.ComplaintStatus, limit, offset int) ([]*entity.Complaint, error) {
	var out []*entity.Complaint
	for _, c := range r.store.complaints {
		if c.VillageCouncilID == councilID && (status == "" || c.Status == status) {
			out = append(out, c)
		}
	}
	return window(out, limit, offset), nil
}

func (r *memComplaintRepo) ListByCitizen(ctx context.Context, citizenID string, limit, offset int) ([]*entity.Complaint, error) {
	var out []*entity.Complaint
	for _, c := range r.store.complaints {
		if c.CitizenID == citizenID {
			out = append(out, c)
		}
	}
	return window(out, limit, offset), nil
}

func (r *memComplaintRepo) ListEscalatedTo(ctx context.Context, actorID string, limit, offset int) ([]*entity.Complaint, error) {
	var out []*entity.Complaint
	for _, c := range r.store.complaints {
		if c.EscalatedTo == actorID && c.Status == entity.ComplaintEscalated {
			out = append(out, c)
		}
	}
	return window(out, limit, offset), nil
}

func (r *memComplaintRepo) CountByStatus(ctx context.Context, councilID string) (map[entity.ComplaintStatus]int, error) {
	counts := make(map[entity.ComplaintStatus]int)
	for _, c := range r.store.complaints {
		if c.VillageCouncilID == councilID {
			counts[c.Status]++
		}
	}
	return counts, nil
}

type memResolutionRepo struct {
	store *memStore
}

func (r *memResolutionRepo) GetByID(ctx context.Context, id string) (*entity.ResolutionRecord, error) {
	rec, ok := r.store.resolutions[id]
	if !ok {
		return nil, errMissing
	}
	return rec, nil
}

func (r *memResolutionRepo) GetByComplaintID(ctx context.Context, complaintID string) (*entity.ResolutionRecord, error) {
	for _, rec := range r.store.resolutions {
		if rec.ComplaintID == complaintID {
			return rec, nil
		}
	}
	return nil, errMissing
}

func (r *memResolutionRepo) ListByResolver(ctx context.Context, resolverID string) ([]*entity.ResolutionRecord, error) {
	var out []*entity.ResolutionRecord
	for _, rec := range r.store.resolutions {
		if rec.ResolvedByID == resolverID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type memWorkRepo struct {
	store *memStore
}

func (r *memWorkRepo) Create(ctx context.Context, work *entity.AssignedWork) error {
	r.store.works[work.ID] = work
	return nil
}

func (r *memWorkRepo) GetByID(ctx context.Context, id string) (*entity.AssignedWork, error) {
	w, ok := r.store.works[id]
	if !ok {
		return nil, errMissing
	}
	return w, nil
}

func (r *memWorkRepo) Update(ctx context.Context, work *entity.AssignedWork) error {
	r.store.works[work.ID] = work
	return nil
}

func (r *memWorkRepo) ListByContractor(ctx context.Context, contractorID string) ([]*entity.AssignedWork, error) {
	var out []*entity.AssignedWork
	for _, w := range r.store.works {
		if w.ContractorID == contractorID {
			out = append(out, w)
		}
	}
	return out, nil
}

type memItemRepo struct {
	store *memStore
}

func (r *memItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	r.store.items[item.ID] = item
	return nil
}

func (r *memItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	i, ok := r.store.items[id]
	if !ok {
		return nil, errMissing
	}
	copied := *i
	return &copied, nil
}

func (r *memItemRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	r.store.items[item.ID] = item
	return nil
}

func (r *memItemRepo) ListByCouncil(ctx context.Context, councilID string) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, i := range r.store.items {
		if i.VillageCouncilID == councilID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *memItemRepo) ListLowStock(ctx context.Context, councilID string) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, i := range r.store.items {
		if i.VillageCouncilID == councilID && i.Quantity <= i.MinimumStock {
			out = append(out, i)
		}
	}
	return out, nil
}

type memRequestRepo struct {
	store *memStore
}

func (r *memRequestRepo) Create(ctx context.Context, request *entity.InventoryRequest) error {
	r.store.requests[request.ID] = request
	return nil
}

func (r *memRequestRepo) GetByID(ctx context.Context, id string) (*entity.InventoryRequest, error) {
	req, ok := r.store.requests[id]
	if !ok {
		return nil, errMissing
	}
	return req, nil
}

func (r *memRequestRepo) ListByApprover(ctx context.Context, blockCouncilID string, status entity.RequestStatus) ([]*entity.InventoryRequest, error) {
	var out []*entity.InventoryRequest
	for _, req := range r.store.requests {
		if req.BlockCouncilID == blockCouncilID && (status == "" || req.Status == status) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memRequestRepo) ListByCouncil(ctx context.Context, villageCouncilID string) ([]*entity.InventoryRequest, error) {
	var out []*entity.InventoryRequest
	for _, req := range r.store.requests {
		if req.VillageCouncilID == villageCouncilID {
			out = append(out, req)
		}
	}
	return out, nil
}

type memTransactionRepo struct {
	store *memStore
}

func (r *memTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	if r.store.failBillsFor[transaction.CitizenID] {
		return fmt.Errorf("simulated write failure")
	}
	r.store.transactions[transaction.ID] = transaction
	return nil
}

func (r *memTransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t, ok := r.store.transactions[id]
	if !ok {
		return nil, errMissing
	}
	return t, nil
}

func (r *memTransactionRepo) ListByCitizen(ctx context.Context, citizenID string, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.store.transactions {
		if t.CitizenID == citizenID {
			out = append(out, t)
		}
	}
	return window(out, limit, offset), nil
}

func (r *memTransactionRepo) ListByCouncil(ctx context.Context, councilID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.store.transactions {
		if t.GeneratedBy.ActorID == councilID {
			out = append(out, t)
		}
	}
	return out, nil
}

// memNotifier records published events so tests can assert on them.
type memNotifier struct {
	broadcast []string
	directed  map[string][]string
}

func newMemNotifier() *memNotifier {
	return &memNotifier{directed: make(map[string][]string)}
}

func (n *memNotifier) PublishComplaintEvent(eventType string, complaint *entity.Complaint) {
	n.broadcast = append(n.broadcast, eventType)
}

func (n *memNotifier) PublishComplaintEventTo(actorID, eventType string, complaint *entity.Complaint) {
	n.directed[actorID] = append(n.directed[actorID], eventType)
}

type fixture struct {
	store    *memStore
	notifier *memNotifier

	hierarchy  *HierarchyUseCase
	complaints *ComplaintUseCase
	resolution *ResolutionUseCase
	inventory  *InventoryUseCase
	billing    *BillingUseCase
}

func newFixture() *fixture {
	store := newMemStore()
	uow := &memUnitOfWork{store: store}
	notifier := newMemNotifier()

	hierarchy := NewHierarchyUseCase(&memActorRepo{store: store})
	complaints := NewComplaintUseCase(&memComplaintRepo{store: store}, &memWorkRepo{store: store}, hierarchy, uow, notifier)
	resolution := NewResolutionUseCase(uow, hierarchy, &memResolutionRepo{store: store}, notifier)
	inventory := NewInventoryUseCase(&memItemRepo{store: store}, &memRequestRepo{store: store}, hierarchy, uow)
	billing := NewBillingUseCase(&memTransactionRepo{store: store}, hierarchy, uow)

	return &fixture{
		store:      store,
		notifier:   notifier,
		hierarchy:  hierarchy,
		complaints: complaints,
		resolution: resolution,
		inventory:  inventory,
		billing:    billing,
	}
}

func (f *fixture) addActor(tier entity.Tier, parent *entity.Actor) *entity.Actor {
	actor := &entity.Actor{
		ID:        uuid.New().String(),
		UniqueID:  fmt.Sprintf("%s-%s", tierPrefix[tier], uuid.New().String()[:6]),
		Tier:      tier,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if parent != nil {
		actor.ParentID = parent.ID
		actor.ParentTier = parent.Tier
	}
	if tier == entity.TierContractor {
		actor.AgencyDetails = &entity.AgencyDetails{
			CompanyName:        "Test Agency",
			RegistrationNumber: "REG-001",
			Status:             "Active",
		}
	}
	f.store.actors[actor.ID] = actor
	return actor
}

// addTree seeds the full hierarchy: district -> block -> village -> citizen.
func (f *fixture) addTree() (district, block, village, citizen *entity.Actor) {
	district = f.addActor(entity.TierDistrictBody, nil)
	block = f.addActor(entity.TierBlockCouncil, district)
	village = f.addActor(entity.TierVillageCouncil, block)
	citizen = f.addActor(entity.TierCitizen, village)
	return
}

func (f *fixture) addComplaint(citizen, village *entity.Actor, status entity.ComplaintStatus) *entity.Complaint {
	complaint := &entity.Complaint{
		ID:               uuid.New().String(),
		Title:            "No water supply",
		Description:      "Main line broken near the school",
		Location:         "Ward 4",
		Status:           status,
		CitizenID:        citizen.ID,
		VillageCouncilID: village.ID,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	f.store.complaints[complaint.ID] = complaint
	return complaint
}

func (f *fixture) addItem(village *entity.Actor, name string, quantity int64, unitCost float64, minimumStock int64) *entity.InventoryItem {
	item := &entity.InventoryItem{
		ID:               uuid.New().String(),
		Name:             name,
		Category:         entity.CategoryPipes,
		Quantity:         quantity,
		Unit:             "pieces",
		UnitCost:         unitCost,
		MinimumStock:     minimumStock,
		VillageCouncilID: village.ID,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	item.DeriveStatus()
	f.store.items[item.ID] = item
	return item
}
