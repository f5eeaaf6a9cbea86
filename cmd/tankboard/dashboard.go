package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fuelops/tankboard/internal/audit"
	"github.com/fuelops/tankboard/internal/catalog"
	"github.com/fuelops/tankboard/internal/common"
	"github.com/fuelops/tankboard/internal/config"
	"github.com/fuelops/tankboard/internal/session"
	"github.com/fuelops/tankboard/internal/tui"
	"github.com/fuelops/tankboard/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the interactive dashboard",
		RunE:  runDashboard,
	}

	cmd.Flags().String("theme", "", "TUI theme (default, catppuccin-mocha)")
	cmd.Flags().String("view", "", "initial section to open")
	cmd.Flags().Bool("ephemeral-audit", false, "keep the audit log in memory only")
	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openAuditStore(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	cat := catalog.Load()
	controller := session.New(cat,
		session.WithAuditSink(audit.MultiSink{audit.LogSink{}, store}),
		session.WithActor(config.Actor()),
		session.WithActionHandler(func(insightID int) {
			// Terminal acknowledgment only; there is no response contract.
			common.LogInfo("insight action acknowledged", common.Fields{"insight_id": insightID})
		}),
	)

	opts := []tui.Option{
		tui.WithController(controller),
		tui.WithTheme(themes.GetTheme(config.Theme())),
	}
	if view, _ := cmd.Flags().GetString("view"); view != "" {
		opts = append(opts, tui.WithInitialView(view))
	}

	return tui.Run(ctx, opts...)
}

func openAuditStore(cmd *cobra.Command) (*audit.SQLiteStore, error) {
	path := config.AuditDBPath()
	if ephemeral, _ := cmd.Flags().GetBool("ephemeral-audit"); ephemeral {
		path = ":memory:"
	}

	store, err := audit.NewSQLiteStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	return store, nil
}
