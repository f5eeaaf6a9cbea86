package model

// KPI is a summary metric card with a precomputed trend delta. The ID
// doubles as the drill-down dialog identifier for the card.
type KPI struct {
	ID       string
	Label    string
	Value    string
	DeltaPct float64
}
