package state

import "github.com/fuelops/tankboard/internal/model"

// Session is the full reducible state of one dashboard session: the view
// state plus the session's own copy of the transaction set (Reviewed is the
// only transaction field that ever changes).
type Session struct {
	View         ViewState
	Transactions []model.Transaction
}

// NewSession builds the initial session over the given transaction copy.
func NewSession(transactions []model.Transaction) Session {
	return Session{
		View:         NewViewState(),
		Transactions: transactions,
	}
}

// TransactionByID finds a transaction in the session copy.
func (s Session) TransactionByID(id string) (model.Transaction, bool) {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// Lookup answers the catalog-membership questions the reducer needs to keep
// its invariants. *catalog.Catalog satisfies it.
type Lookup interface {
	HasTransaction(id string) bool
	HasDialog(id string) bool
}

// Action is a single user-input event. All state transitions are total:
// invalid input degrades to a no-op, never an error.
type Action interface{ isAction() }

// SelectView replaces the active navigation section. Any string is
// accepted; unrecognized ids render as a placeholder.
type SelectView struct{ ID string }

// SetEnvironment switches between Prod and Pilot.
type SetEnvironment struct{ Env Environment }

// SetPeriod switches the chart period selector.
type SetPeriod struct{ Period Period }

// SetDateRange records the date-range selection.
type SetDateRange struct{ Range string }

// SetRegion records the region selection.
type SetRegion struct{ Region string }

// SetRiskFilter changes the transaction table's risk filter.
type SetRiskFilter struct{ Filter model.RiskFilter }

// ToggleRowExpansion expands or collapses a transaction detail row.
type ToggleRowExpansion struct{ ID string }

// ToggleSavedStation saves or unsaves a recommended station.
type ToggleSavedStation struct{ ID int }

// OpenDialog opens the drill-down dialog for a KPI or insight.
type OpenDialog struct{ ID string }

// CloseDialog dismisses the open dialog.
type CloseDialog struct{}

// MarkReviewed flags a transaction as reviewed by the operator.
type MarkReviewed struct {
	TransactionID string
	Actor         string
}

func (SelectView) isAction()         {}
func (SetEnvironment) isAction()     {}
func (SetPeriod) isAction()          {}
func (SetDateRange) isAction()       {}
func (SetRegion) isAction()          {}
func (SetRiskFilter) isAction()      {}
func (ToggleRowExpansion) isAction() {}
func (ToggleSavedStation) isAction() {}
func (OpenDialog) isAction()         {}
func (CloseDialog) isAction()        {}
func (MarkReviewed) isAction()       {}

// Effect describes a side effect the controller must run after a reduce.
// The reducer itself never performs I/O.
type Effect interface{ isEffect() }

// AuditReviewed asks the controller to append an audit record. It is
// emitted on every MarkReviewed of a known transaction, including repeats:
// the observed contract allows duplicate audit entries, so none are
// suppressed here.
type AuditReviewed struct {
	TransactionID string
	Actor         string
}

func (AuditReviewed) isEffect() {}

// Reduce applies one action to the session and returns the next session
// plus any effects. It is pure: the input session is never mutated and the
// same inputs always produce the same outputs.
func Reduce(s Session, a Action, look Lookup) (Session, []Effect) {
	switch a := a.(type) {
	case SelectView:
		s.View.SelectedView = a.ID

	case SetEnvironment:
		if a.Env.Valid() {
			s.View.Environment = a.Env
		}

	case SetPeriod:
		if a.Period.Valid() {
			s.View.Period = a.Period
		}

	case SetDateRange:
		// Captured for display only; the filter engine deliberately does
		// not apply date ranges (see internal/filter).
		s.View.DateRange = a.Range

	case SetRegion:
		// Captured for display only, same as the date range.
		s.View.Region = a.Region

	case SetRiskFilter:
		if a.Filter.Valid() {
			s.View.RiskFilter = a.Filter
		}

	case ToggleRowExpansion:
		expanded := cloneStringSet(s.View.ExpandedRowIDs)
		if _, ok := expanded[a.ID]; ok {
			delete(expanded, a.ID)
		} else if look.HasTransaction(a.ID) {
			expanded[a.ID] = struct{}{}
		}
		s.View = s.View.withExpanded(expanded)

	case ToggleSavedStation:
		saved := cloneIntSet(s.View.SavedStationIDs)
		if _, ok := saved[a.ID]; ok {
			delete(saved, a.ID)
		} else {
			saved[a.ID] = struct{}{}
		}
		s.View = s.View.withSaved(saved)

	case OpenDialog:
		if look.HasDialog(a.ID) {
			s.View.OpenDialogID = a.ID
		}

	case CloseDialog:
		s.View.OpenDialogID = ""

	case MarkReviewed:
		for i, t := range s.Transactions {
			if t.ID != a.TransactionID {
				continue
			}
			if !t.Reviewed {
				txns := make([]model.Transaction, len(s.Transactions))
				copy(txns, s.Transactions)
				txns[i].Reviewed = true
				s.Transactions = txns
			}
			return s, []Effect{AuditReviewed{
				TransactionID: a.TransactionID,
				Actor:         a.Actor,
			}}
		}
	}

	return s, nil
}
