// Package filter implements the pure filtering step between the transaction
// catalog and the table view.
package filter

import "github.com/fuelops/tankboard/internal/model"

// Apply returns the order-preserving subsequence of transactions matching
// the risk filter. model.FilterAll is the identity.
//
// dateRange and region are accepted because the view state captures them,
// but they are intentionally not applied: the source behavior never wired
// them to the output, and this keeps that visible instead of silently
// dropping the selections.
func Apply(transactions []model.Transaction, risk model.RiskFilter, dateRange, region string) []model.Transaction {
	_ = dateRange
	_ = region

	if risk == model.FilterAll {
		return transactions
	}

	out := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if risk.Matches(t.Risk) {
			out = append(out, t)
		}
	}
	return out
}
