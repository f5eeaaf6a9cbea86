package audit

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ExportCSV streams the full audit log as CSV to w. When progressWriter is
// non-nil a progress bar is drawn to it while rows are written.
func ExportCSV(ctx context.Context, store *SQLiteStore, w io.Writer, progressWriter io.Writer) error {
	entries, err := store.List(ctx)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if progressWriter != nil {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetWriter(progressWriter),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Exporting audit log..."),
		)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "transaction_id", "actor", "timestamp"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range entries {
		record := []string{e.ID, e.TransactionID, e.Actor, e.Timestamp.Format(time.RFC3339Nano)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
