package model

// RiskFilter selects which risk levels the transaction table shows.
// FilterAll is the sentinel meaning "no filtering".
type RiskFilter string

const (
	FilterAll    RiskFilter = "All"
	FilterLow    RiskFilter = RiskFilter(RiskLow)
	FilterMedium RiskFilter = RiskFilter(RiskMedium)
	FilterHigh   RiskFilter = RiskFilter(RiskHigh)
)

// Valid reports whether the filter is the sentinel or a known risk level.
func (f RiskFilter) Valid() bool {
	return f == FilterAll || RiskLevel(f).Valid()
}

// Matches reports whether a transaction with the given risk level passes.
func (f RiskFilter) Matches(r RiskLevel) bool {
	return f == FilterAll || RiskLevel(f) == r
}
