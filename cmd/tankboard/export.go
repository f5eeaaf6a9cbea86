package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fuelops/tankboard/internal/catalog"
	"github.com/fuelops/tankboard/internal/cli"
	"github.com/fuelops/tankboard/internal/common"
	"github.com/fuelops/tankboard/internal/export"
	"github.com/fuelops/tankboard/internal/model"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the weekly trend chart as HTML",
		RunE:  runExport,
	}

	cmd.Flags().String("out", "tankboard-chart.html", "output file")
	cmd.Flags().StringSlice("metric", nil, "metrics to plot (volume, revenue, margin; default all)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")
	metricFlags, _ := cmd.Flags().GetStringSlice("metric")

	var metrics []model.SeriesMetric
	for _, m := range metricFlags {
		switch model.SeriesMetric(strings.ToLower(m)) {
		case model.MetricVolume, model.MetricRevenue, model.MetricMargin:
			metrics = append(metrics, model.SeriesMetric(strings.ToLower(m)))
		default:
			return common.NewUserError(
				fmt.Sprintf("unknown metric %q, use volume, revenue or margin", m), nil)
		}
	}

	f, err := os.Create(out) //nolint:gosec // user-chosen output path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cat := catalog.Load()
	if err := export.SeriesChart(f, cat.Series(), metrics, "Fueling operations - weekly trend"); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Fprintln(os.Stdout, cli.FormatSuccess(fmt.Sprintf("chart written to %s", out)))
	return nil
}
