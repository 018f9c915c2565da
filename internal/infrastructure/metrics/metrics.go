package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ComplaintsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jalsetu_complaints_created_total",
		Help: "Total complaints filed by citizens",
	})

	ComplaintsEscalated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jalsetu_complaints_escalated_total",
		Help: "Total complaint escalations",
	})

	ComplaintsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jalsetu_complaints_resolved_total",
		Help: "Total complaints resolved, including contractor completions",
	})

	BillsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jalsetu_bills_generated_total",
		Help: "Total credit ledger entries issued",
	})

	InventoryRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jalsetu_inventory_requests_total",
		Help: "Total inventory requests submitted",
	})
)
