package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelops/tankboard/internal/audit"
	"github.com/fuelops/tankboard/internal/catalog"
	"github.com/fuelops/tankboard/internal/model"
	"github.com/fuelops/tankboard/internal/state"
)

// recordingSink captures appended entries in order.
type recordingSink struct {
	entries []audit.Entry
	err     error
}

func (s *recordingSink) Append(_ context.Context, e audit.Entry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, e)
	return nil
}

func TestNew_Defaults(t *testing.T) {
	cat := catalog.Load()
	c := New(cat)

	assert.Equal(t, state.ViewOverview, c.View().SelectedView)
	assert.Len(t, c.Session().Transactions, 3)
	assert.Same(t, cat, c.Catalog())
}

func TestDispatch_NotifiesOnChange(t *testing.T) {
	c := New(catalog.Load())

	var snapshots []state.Session
	c.OnChange(func(s state.Session) { snapshots = append(snapshots, s) })

	c.Dispatch(context.Background(), state.SelectView{ID: state.ViewStations})
	c.Dispatch(context.Background(), state.ToggleSavedStation{ID: 1})

	require.Len(t, snapshots, 2)
	assert.Equal(t, state.ViewStations, snapshots[0].View.SelectedView)
	assert.True(t, snapshots[1].View.StationSaved(1))
}

func TestDispatch_MarkReviewedAppendsAudit(t *testing.T) {
	sink := &recordingSink{}
	c := New(catalog.Load(), WithAuditSink(sink), WithActor("ops"))

	c.Dispatch(context.Background(), state.MarkReviewed{TransactionID: "1"})
	c.Dispatch(context.Background(), state.MarkReviewed{TransactionID: "3"})
	// Repeat reviews still land in the audit trail.
	c.Dispatch(context.Background(), state.MarkReviewed{TransactionID: "1"})

	require.Len(t, sink.entries, 3)
	assert.Equal(t, "1", sink.entries[0].TransactionID)
	assert.Equal(t, "3", sink.entries[1].TransactionID)
	assert.Equal(t, "1", sink.entries[2].TransactionID)
	for _, e := range sink.entries {
		assert.Equal(t, "ops", e.Actor)
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.Timestamp.IsZero())
	}

	txn, ok := c.Session().TransactionByID("1")
	require.True(t, ok)
	assert.True(t, txn.Reviewed)
}

func TestDispatch_ActionActorOverridesDefault(t *testing.T) {
	sink := &recordingSink{}
	c := New(catalog.Load(), WithAuditSink(sink), WithActor("ops"))

	c.Dispatch(context.Background(), state.MarkReviewed{TransactionID: "2", Actor: "dispatcher"})

	require.Len(t, sink.entries, 1)
	assert.Equal(t, "dispatcher", sink.entries[0].Actor)
}

func TestDispatch_UnknownTransactionSkipsAudit(t *testing.T) {
	sink := &recordingSink{}
	c := New(catalog.Load(), WithAuditSink(sink))

	c.Dispatch(context.Background(), state.MarkReviewed{TransactionID: "999"})

	assert.Empty(t, sink.entries)
}

func TestDispatch_AuditFailureDoesNotBlockState(t *testing.T) {
	sink := &recordingSink{err: errors.New("sink unavailable")}
	c := New(catalog.Load(), WithAuditSink(sink))

	c.Dispatch(context.Background(), state.MarkReviewed{TransactionID: "1"})

	txn, ok := c.Session().TransactionByID("1")
	require.True(t, ok)
	assert.True(t, txn.Reviewed, "state change must survive a failed audit append")
}

func TestFilteredTransactions(t *testing.T) {
	c := New(catalog.Load())

	all := c.FilteredTransactions()
	assert.Len(t, all, 3)

	c.Dispatch(context.Background(), state.SetRiskFilter{Filter: model.FilterHigh})

	filtered := c.FilteredTransactions()
	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "3", filtered[1].ID)
}

func TestDispatch_DialogInvariantHeld(t *testing.T) {
	c := New(catalog.Load())

	c.Dispatch(context.Background(), state.OpenDialog{ID: "not-a-dialog"})
	assert.False(t, c.View().DialogOpen())

	c.Dispatch(context.Background(), state.OpenDialog{ID: "anomalies"})
	assert.Equal(t, "anomalies", c.View().OpenDialogID)

	c.Dispatch(context.Background(), state.CloseDialog{})
	assert.False(t, c.View().DialogOpen())
}

func TestTriggerInsightAction(t *testing.T) {
	var fired []int
	c := New(catalog.Load(), WithActionHandler(func(id int) { fired = append(fired, id) }))

	c.TriggerInsightAction(2)
	c.TriggerInsightAction(99) // unknown ids are ignored
	c.TriggerInsightAction(1)

	assert.Equal(t, []int{2, 1}, fired)
}

func TestTriggerInsightAction_NoHandler(t *testing.T) {
	c := New(catalog.Load())

	// Must not panic without a registered handler.
	c.TriggerInsightAction(1)
}
