package components

import "github.com/fuelops/tankboard/internal/model"

// DialogRequestMsg asks the app to open the drill-down dialog for a KPI
// card or insight.
type DialogRequestMsg struct {
	ID string
}

// DialogCloseMsg asks the app to dismiss the open dialog.
type DialogCloseMsg struct{}

// RowToggleMsg asks the app to expand or collapse a transaction row.
type RowToggleMsg struct {
	ID string
}

// MarkReviewedMsg asks the app to flag a transaction as reviewed.
type MarkReviewedMsg struct {
	ID string
}

// RiskFilterMsg asks the app to change the table's risk filter.
type RiskFilterMsg struct {
	Filter model.RiskFilter
}

// StationToggleMsg asks the app to save or unsave a station.
type StationToggleMsg struct {
	ID int
}

// InsightActionMsg fires an insight's action button.
type InsightActionMsg struct {
	ID int
}

// PeriodCycleMsg asks the app to advance the chart period selector.
type PeriodCycleMsg struct{}
