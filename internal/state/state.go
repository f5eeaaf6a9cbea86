// Package state models the dashboard's session-scoped view state as an
// explicit value plus pure reducer functions. There are no globals: one
// session controller owns one Session value and every mutation flows
// through Reduce.
package state

import "github.com/fuelops/tankboard/internal/model"

// Environment is the data environment toggle shown in the top bar.
type Environment string

const (
	EnvProd  Environment = "Prod"
	EnvPilot Environment = "Pilot"
)

// Valid reports whether the environment is one of the known flags.
func (e Environment) Valid() bool {
	return e == EnvProd || e == EnvPilot
}

// Period is the chart period selector. Changing it is cosmetic: the series
// catalog always holds the same weekly sample points.
type Period string

const (
	PeriodDay   Period = "Day"
	PeriodWeek  Period = "Week"
	PeriodMonth Period = "Month"
)

// Valid reports whether the period is one of the known choices.
func (p Period) Valid() bool {
	return p == PeriodDay || p == PeriodWeek || p == PeriodMonth
}

// Known navigation sections. SelectedView is intentionally an open string:
// unknown ids are accepted and render as a generic placeholder.
const (
	ViewOverview     = "overview"
	ViewTransactions = "transactions"
	ViewStations     = "stations"
	ViewInsights     = "insights"
)

// ViewState holds everything the renderer needs beyond the catalogs.
// OpenDialogID empty means no dialog; when set it always names an existing
// KPI or insight dialog. ExpandedRowIDs only ever contains transaction ids
// present in the catalog.
type ViewState struct {
	SelectedView    string
	Environment     Environment
	Period          Period
	DateRange       string
	Region          string
	RiskFilter      model.RiskFilter
	ExpandedRowIDs  map[string]struct{}
	SavedStationIDs map[int]struct{}
	OpenDialogID    string
}

// NewViewState returns the initial state: overview section, production
// environment, weekly period, no filters, everything collapsed and closed.
func NewViewState() ViewState {
	return ViewState{
		SelectedView:    ViewOverview,
		Environment:     EnvProd,
		Period:          PeriodWeek,
		RiskFilter:      model.FilterAll,
		ExpandedRowIDs:  map[string]struct{}{},
		SavedStationIDs: map[int]struct{}{},
	}
}

// DialogOpen reports whether a drill-down dialog is showing.
func (v ViewState) DialogOpen() bool {
	return v.OpenDialogID != ""
}

// RowExpanded reports whether the given transaction row is expanded.
func (v ViewState) RowExpanded(id string) bool {
	_, ok := v.ExpandedRowIDs[id]
	return ok
}

// StationSaved reports whether the station is in the saved set.
func (v ViewState) StationSaved(id int) bool {
	_, ok := v.SavedStationIDs[id]
	return ok
}

// withExpanded returns a copy with the expanded set replaced.
func (v ViewState) withExpanded(ids map[string]struct{}) ViewState {
	v.ExpandedRowIDs = ids
	return v
}

// withSaved returns a copy with the saved-station set replaced.
func (v ViewState) withSaved(ids map[int]struct{}) ViewState {
	v.SavedStationIDs = ids
	return v
}

func cloneStringSet(in map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}

func cloneIntSet(in map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}
