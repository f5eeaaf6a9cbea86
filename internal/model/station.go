package model

// Station is a recommended fuel station. Stations are immutable once the
// catalog is loaded; operators can only save/unsave them in session state.
type Station struct {
	ID         int
	Name       string
	Address    string
	Price      float64 // per liter
	SavingsPct float64 // versus the fleet average
	Distance   string  // display string, e.g. "1.2 km"
}
