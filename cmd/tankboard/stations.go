package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fuelops/tankboard/internal/catalog"
	"github.com/fuelops/tankboard/internal/cli"
)

func stationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List recommended fuel stations",
		RunE:  runStations,
	}
}

func runStations(_ *cobra.Command, _ []string) error {
	cat := catalog.Load()

	fmt.Fprintln(os.Stdout, cli.FormatTitle("Recommended stations"))

	for _, s := range cat.Stations() {
		line := fmt.Sprintf("%-26s €%.3f/L  %s  %s",
			cli.BoldStyle.Render(s.Name),
			s.Price,
			cli.SuccessStyle.Render(fmt.Sprintf("-%.1f%%", s.SavingsPct)),
			cli.SubtleStyle.Render(s.Distance),
		)
		fmt.Fprintln(os.Stdout, line)
		fmt.Fprintln(os.Stdout, "  "+cli.SubtleStyle.Render(s.Address))
	}

	return nil
}
