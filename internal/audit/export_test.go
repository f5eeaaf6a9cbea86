package audit

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := NewEntry("1", "ops")
	second := NewEntry("3", "dispatcher")
	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	var out bytes.Buffer
	var progress bytes.Buffer
	require.NoError(t, ExportCSV(ctx, store, &out, &progress))

	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"id", "transaction_id", "actor", "timestamp"}, records[0])
	assert.Equal(t, first.ID, records[1][0])
	assert.Equal(t, "1", records[1][1])
	assert.Equal(t, second.ID, records[2][0])
	assert.Equal(t, "dispatcher", records[2][2])

	assert.NotEmpty(t, progress.String())
}

func TestExportCSV_EmptyLog(t *testing.T) {
	store := newTestStore(t)

	var out bytes.Buffer
	require.NoError(t, ExportCSV(context.Background(), store, &out, nil))

	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}
