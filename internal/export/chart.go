// Package export renders the weekly series catalog to a standalone HTML
// chart for sharing outside the terminal.
package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/fuelops/tankboard/internal/model"
)

const chartHeight = "420px"

// SeriesChart builds an HTML line chart for the given metrics over the
// weekly series and writes it to w. With no metrics all three dimensions
// are plotted.
func SeriesChart(w io.Writer, series []model.SeriesPoint, metrics []model.SeriesMetric, title string) error {
	if len(series) == 0 {
		return fmt.Errorf("series is empty")
	}
	if len(metrics) == 0 {
		metrics = []model.SeriesMetric{model.MetricVolume, model.MetricRevenue, model.MetricMargin}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "weekly volume / revenue / margin"}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "100%",
			Height: chartHeight,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, len(series))
	for i, p := range series {
		labels[i] = p.Date
	}
	line.SetXAxis(labels)

	for _, m := range metrics {
		line.AddSeries(string(m), toLineData(series, m))
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line.Render(w)
}

func toLineData(series []model.SeriesPoint, m model.SeriesMetric) []opts.LineData {
	data := make([]opts.LineData, len(series))
	for i, p := range series {
		data[i] = opts.LineData{
			Name:  p.Date,
			Value: p.Value(m),
		}
	}
	return data
}
