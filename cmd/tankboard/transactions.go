package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fuelops/tankboard/internal/catalog"
	"github.com/fuelops/tankboard/internal/cli"
	"github.com/fuelops/tankboard/internal/common"
	"github.com/fuelops/tankboard/internal/filter"
	"github.com/fuelops/tankboard/internal/model"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List fueling transactions",
		RunE:  runTransactions,
	}

	cmd.Flags().String("risk", "All", "risk filter (All, Low, Medium, High)")

	return cmd
}

func runTransactions(cmd *cobra.Command, _ []string) error {
	riskFlag, _ := cmd.Flags().GetString("risk")

	riskFilter := model.RiskFilter(riskFlag)
	if !riskFilter.Valid() {
		return common.NewUserError(
			fmt.Sprintf("invalid risk filter %q, use All, Low, Medium or High", riskFlag), nil)
	}

	cat := catalog.Load()
	transactions := filter.Apply(cat.Transactions(), riskFilter, "", "")

	fmt.Fprintln(os.Stdout, cli.FormatTitle("Transactions"))
	fmt.Fprintln(os.Stdout, cli.SubtitleStyle.Render(fmt.Sprintf("risk: %s · %d shown", riskFilter, len(transactions))))

	header := fmt.Sprintf("%-4s %-15s %-10s %-10s %-22s %8s %10s %8s %-7s",
		"ID", "Time", "Card", "Driver", "Station", "Liters", "Price", "Dev", "Risk")
	fmt.Fprintln(os.Stdout, cli.TableHeaderStyle.Render(header))

	for _, t := range transactions {
		row := fmt.Sprintf("%-4s %-15s %-10s %-10s %-22s %8.1f %10s %7.1f%% %s",
			t.ID, t.Time, t.Card, t.Driver, t.Station,
			t.Liters,
			fmt.Sprintf("€%.2f", float64(t.Price)/100),
			t.DeviationPct,
			cli.RiskStyle(string(t.Risk)).Render(string(t.Risk)),
		)
		fmt.Fprintln(os.Stdout, cli.TableCellStyle.Render(row))
	}

	return nil
}
