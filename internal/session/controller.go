// Package session owns the live dashboard state for exactly one UI session.
// All mutations flow through Dispatch, which applies the pure reducer and
// then runs the resulting side effects, so renderers always observe a
// consistent snapshot.
package session

import (
	"context"

	"github.com/fuelops/tankboard/internal/audit"
	"github.com/fuelops/tankboard/internal/catalog"
	"github.com/fuelops/tankboard/internal/common"
	"github.com/fuelops/tankboard/internal/filter"
	"github.com/fuelops/tankboard/internal/model"
	"github.com/fuelops/tankboard/internal/state"
)

// ActionHandler receives insight action triggers. There is no response
// contract: the dashboard treats the trigger as a terminal acknowledgment.
type ActionHandler func(insightID int)

// Controller drives one dashboard session. It is not safe for concurrent
// use; the event loop that owns it dispatches synchronously.
type Controller struct {
	catalog       *catalog.Catalog
	sess          state.Session
	sink          audit.Sink
	actor         string
	onChange      func(state.Session)
	actionHandler ActionHandler
}

// Option configures a controller.
type Option func(*Controller)

// WithAuditSink sets the audit sink for mark-reviewed effects.
func WithAuditSink(s audit.Sink) Option {
	return func(c *Controller) { c.sink = s }
}

// WithActor sets the operator name stamped on audit entries.
func WithActor(actor string) Option {
	return func(c *Controller) { c.actor = actor }
}

// WithActionHandler registers the insight action handler.
func WithActionHandler(h ActionHandler) Option {
	return func(c *Controller) { c.actionHandler = h }
}

// New builds a controller over the catalog. The controller takes its own
// copy of the transaction set so the catalog stays pristine.
func New(cat *catalog.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog: cat,
		sess:    state.NewSession(cat.Transactions()),
		sink:    audit.LogSink{},
		actor:   "operator",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers the renderer-notify callback, invoked after every
// dispatch that was applied (including no-op reductions; the renderer is
// cheap to call and deciding change-ness here buys nothing).
func (c *Controller) OnChange(fn func(state.Session)) {
	c.onChange = fn
}

// Session returns the current session snapshot.
func (c *Controller) Session() state.Session {
	return c.sess
}

// View returns the current view state.
func (c *Controller) View() state.ViewState {
	return c.sess.View
}

// Catalog exposes the immutable catalogs for rendering.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// FilteredTransactions applies the filter engine to the session's
// transaction copy under the current view state.
func (c *Controller) FilteredTransactions() []model.Transaction {
	v := c.sess.View
	return filter.Apply(c.sess.Transactions, v.RiskFilter, v.DateRange, v.Region)
}

// Dispatch applies one action. It never fails from the caller's point of
// view: audit delivery errors are logged and swallowed (fire-and-forget).
func (c *Controller) Dispatch(ctx context.Context, a state.Action) {
	next, effects := state.Reduce(c.sess, a, c.catalog)
	c.sess = next

	for _, eff := range effects {
		c.runEffect(ctx, eff)
	}

	if c.onChange != nil {
		c.onChange(c.sess)
	}
}

func (c *Controller) runEffect(ctx context.Context, eff state.Effect) {
	switch eff := eff.(type) {
	case state.AuditReviewed:
		actor := eff.Actor
		if actor == "" {
			actor = c.actor
		}
		entry := audit.NewEntry(eff.TransactionID, actor)
		if err := c.sink.Append(ctx, entry); err != nil {
			common.LogError(err, "audit append failed", common.Fields{
				"transaction_id": eff.TransactionID,
			})
		}
	}
}

// TriggerInsightAction fires the action button of an insight. Unknown ids
// degrade to a no-op like every other input.
func (c *Controller) TriggerInsightAction(insightID int) {
	if _, ok := c.catalog.InsightByID(insightID); !ok {
		return
	}
	common.LogDebug("insight action fired", common.Fields{"insight_id": insightID})
	if c.actionHandler != nil {
		c.actionHandler(insightID)
	}
}
