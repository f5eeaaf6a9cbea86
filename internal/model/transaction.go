package model

// Transaction represents a single fueling transaction as reported by the
// card network. Reviewed is the only field that changes after load; it is
// flipped by an operator action and lives only for the session.
type Transaction struct {
	ID           string
	Time         string
	Card         string // masked, e.g. "**** 4521"
	Driver       string
	Station      string
	Liters       float64
	Price        int64 // minor currency units
	DeviationPct float64
	Risk         RiskLevel
	Reviewed     bool
	Details      *TransactionDetails
}

// TransactionDetails carries the drill-down record attached to some
// transactions. Absence means the source had no enriched data, not an error.
type TransactionDetails struct {
	Vehicle              string
	Route                string
	PreviousTransactions int
	Timeline             []TimelineEvent
}

// TimelineEvent is one step of a transaction's reconstructed timeline,
// ordered chronologically within Details.Timeline.
type TimelineEvent struct {
	Time  string
	Event string
}

// WithDetails attaches a detail record and returns the transaction,
// making the optional field explicit at construction sites.
func (t Transaction) WithDetails(d TransactionDetails) Transaction {
	t.Details = &d
	return t
}

// HasDetails reports whether a drill-down record is present.
func (t Transaction) HasDetails() bool {
	return t.Details != nil
}
