package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fuelops/tankboard/internal/audit"
	"github.com/fuelops/tankboard/internal/cli"
	"github.com/fuelops/tankboard/internal/config"
)

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the review audit log",
	}

	cmd.AddCommand(auditListCmd())
	cmd.AddCommand(auditExportCmd())

	return cmd
}

func auditListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List audit entries in append order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := audit.NewSQLiteStore(config.AuditDBPath())
			if err != nil {
				return fmt.Errorf("failed to open audit log: %w", err)
			}
			defer func() { _ = store.Close() }()

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, cli.FormatTitle("Audit log"))
			if len(entries) == 0 {
				fmt.Fprintln(os.Stdout, cli.SubtleStyle.Render("no entries"))
				return nil
			}

			for _, e := range entries {
				fmt.Fprintf(os.Stdout, "%s  txn=%s  actor=%s\n",
					cli.InfoStyle.Render(e.Timestamp.Local().Format(time.DateTime)),
					cli.BoldStyle.Render(e.TransactionID),
					e.Actor,
				)
			}
			return nil
		},
	}
}

func auditExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the audit log to CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("out")

			store, err := audit.NewSQLiteStore(config.AuditDBPath())
			if err != nil {
				return fmt.Errorf("failed to open audit log: %w", err)
			}
			defer func() { _ = store.Close() }()

			f, err := os.Create(out) //nolint:gosec // user-chosen output path
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() { _ = f.Close() }()

			if err := audit.ExportCSV(cmd.Context(), store, f, os.Stderr); err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, cli.FormatSuccess(fmt.Sprintf("audit log written to %s", out)))
			return nil
		},
	}

	cmd.Flags().String("out", "tankboard-audit.csv", "output file")

	return cmd
}
