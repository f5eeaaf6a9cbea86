// Package catalog holds the static datasets behind the dashboard. Catalogs
// are loaded once at startup and never change; the transaction Reviewed flag
// is the single exception and is only mutated through a session controller
// working on its own copy.
package catalog

import (
	"fmt"

	"github.com/fuelops/tankboard/internal/model"
)

// Catalog bundles every dataset the dashboard renders.
type Catalog struct {
	stations     []model.Station
	transactions []model.Transaction
	insights     []model.Insight
	series       []model.SeriesPoint
	kpis         []model.KPI
}

// Load returns the built-in sample catalog.
func Load() *Catalog {
	return &Catalog{
		stations:     sampleStations(),
		transactions: sampleTransactions(),
		insights:     sampleInsights(),
		series:       sampleSeries(),
		kpis:         sampleKPIs(),
	}
}

// Stations returns the station recommendations.
func (c *Catalog) Stations() []model.Station {
	return c.stations
}

// Transactions returns a copy of the transaction set. Callers own the copy;
// the catalog itself stays pristine so every session starts unreviewed.
func (c *Catalog) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(c.transactions))
	copy(out, c.transactions)
	return out
}

// Insights returns the AI recommendation entries.
func (c *Catalog) Insights() []model.Insight {
	return c.insights
}

// Series returns the weekly time series in chronological order.
func (c *Catalog) Series() []model.SeriesPoint {
	return c.series
}

// KPIs returns the summary metric cards.
func (c *Catalog) KPIs() []model.KPI {
	return c.kpis
}

// HasTransaction reports whether the given id exists in the catalog.
func (c *Catalog) HasTransaction(id string) bool {
	for _, t := range c.transactions {
		if t.ID == id {
			return true
		}
	}
	return false
}

// StationByID looks up a station.
func (c *Catalog) StationByID(id int) (model.Station, bool) {
	for _, s := range c.stations {
		if s.ID == id {
			return s, true
		}
	}
	return model.Station{}, false
}

// InsightByID looks up an insight.
func (c *Catalog) InsightByID(id int) (model.Insight, bool) {
	for _, i := range c.insights {
		if i.ID == id {
			return i, true
		}
	}
	return model.Insight{}, false
}

// DialogIDForInsight maps an insight to its drill-down dialog identifier.
func DialogIDForInsight(id int) string {
	return fmt.Sprintf("insight-%d", id)
}

// HasDialog reports whether id names a known drill-down surface: either a
// KPI card id or an insight dialog id.
func (c *Catalog) HasDialog(id string) bool {
	for _, k := range c.kpis {
		if k.ID == id {
			return true
		}
	}
	for _, i := range c.insights {
		if DialogIDForInsight(i.ID) == id {
			return true
		}
	}
	return false
}
