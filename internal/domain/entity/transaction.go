package entity

import (
	"time"
)

type TransactionKind string

const (
	TransactionCredit TransactionKind = "credit"
	TransactionDebit  TransactionKind = "debit"
)

type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionSuccess TransactionStatus = "success"
	TransactionFailed  TransactionStatus = "failed"
)

// GeneratedBy records which council created a ledger entry.
type GeneratedBy struct {
	ActorID  string `json:"actor_id" firestore:"actorId"`
	UniqueID string `json:"unique_id" firestore:"uniqueId"`
	Tier     Tier   `json:"tier" firestore:"tier"`
}

// InventoryExpense links a debit entry back to the resolution that produced
// it, with the consumed lines copied in. TotalCost is in paise.
type InventoryExpense struct {
	ComplaintID string           `json:"complaint_id" firestore:"complaintId"`
	Items       []ResolutionLine `json:"items" firestore:"items"`
	TotalCost   int64            `json:"total_cost" firestore:"totalCost"`
}

// Transaction is one append-only entry in the financial ledger. Amounts are
// integer paise; the only mutation ever applied is the pending -> success
// or pending -> failed status flip on a credit.
type Transaction struct {
	ID          string          `json:"id" firestore:"id"`
	CitizenID   string          `json:"citizen_id,omitempty" firestore:"citizenId,omitempty"`
	GeneratedBy GeneratedBy     `json:"generated_by" firestore:"generatedBy"`
	Kind        TransactionKind `json:"kind" firestore:"kind"`

	Amount int64             `json:"amount" firestore:"amount"` // paise
	Status TransactionStatus `json:"status" firestore:"status"`

	Purpose    string      `json:"purpose" firestore:"purpose"`
	BillNumber string      `json:"bill_number" firestore:"billNumber"`
	BillType   string      `json:"bill_type" firestore:"billType"`
	BillPeriod *BillPeriod `json:"bill_period,omitempty" firestore:"billPeriod,omitempty"`
	DueDate    *time.Time  `json:"due_date,omitempty" firestore:"dueDate,omitempty"`

	// Debit-only linkage to the resolution that produced the expense.
	ResolutionID     string            `json:"resolution_id,omitempty" firestore:"resolutionId,omitempty"`
	InventoryExpense *InventoryExpense `json:"inventory_expense,omitempty" firestore:"inventoryExpense,omitempty"`

	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	PaymentDate time.Time `json:"payment_date,omitempty" firestore:"paymentDate,omitempty"`
}

type BillPeriod struct {
	From time.Time `json:"from" firestore:"from"`
	To   time.Time `json:"to" firestore:"to"`
}

// CashBookStats is the per-council aggregate over the ledger, recomputed
// from the entry log on every read so it can never drift. All amounts are
// paise.
type CashBookStats struct {
	TotalBillsGenerated  int   `json:"total_bills_generated"`
	TotalAmountCollected int64 `json:"total_amount_collected"`
	TotalExpenses        int64 `json:"total_expenses"`
	PendingAmount        int64 `json:"pending_amount"`
	NetBalance           int64 `json:"net_balance"`
}
