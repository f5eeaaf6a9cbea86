// Package audit implements the append-only side-effect channel fed by
// mark-reviewed actions. Delivery is fire-and-forget: the dashboard never
// waits on or reacts to a sink.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fuelops/tankboard/internal/common"
)

// Entry is one audit record. Entries are only ever appended, in dispatch
// order within a session.
type Entry struct {
	ID            string
	TransactionID string
	Actor         string
	Timestamp     time.Time
}

// NewEntry stamps a fresh audit record for a reviewed transaction.
func NewEntry(transactionID, actor string) Entry {
	return Entry{
		ID:            uuid.NewString(),
		TransactionID: transactionID,
		Actor:         actor,
		Timestamp:     time.Now().UTC(),
	}
}

// Sink receives audit records. Implementations must preserve append order
// for entries from the same session.
type Sink interface {
	Append(ctx context.Context, e Entry) error
}

// LogSink writes audit records to the structured log.
type LogSink struct{}

// Append logs the entry at info level.
func (LogSink) Append(_ context.Context, e Entry) error {
	common.LogInfo("transaction reviewed", common.Fields{
		"audit_id":       e.ID,
		"transaction_id": e.TransactionID,
		"actor":          e.Actor,
		"timestamp":      e.Timestamp,
	})
	return nil
}

// MultiSink fans an entry out to several sinks in order.
type MultiSink []Sink

// Append delivers to every sink, stopping at the first failure.
func (m MultiSink) Append(ctx context.Context, e Entry) error {
	for _, s := range m {
		if err := s.Append(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
