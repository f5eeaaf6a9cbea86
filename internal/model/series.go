package model

// SeriesPoint is one sample of the weekly volume/revenue/margin series.
// Points are stored in chronological order.
type SeriesPoint struct {
	Date    string
	Volume  float64
	Revenue float64
	Margin  float64
}

// SeriesMetric names one of the three plotted dimensions.
type SeriesMetric string

const (
	MetricVolume  SeriesMetric = "volume"
	MetricRevenue SeriesMetric = "revenue"
	MetricMargin  SeriesMetric = "margin"
)

// Value extracts the named metric from a point.
func (p SeriesPoint) Value(m SeriesMetric) float64 {
	switch m {
	case MetricRevenue:
		return p.Revenue
	case MetricMargin:
		return p.Margin
	default:
		return p.Volume
	}
}
