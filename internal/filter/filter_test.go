package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fuelops/tankboard/internal/model"
)

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "1", Risk: model.RiskHigh, DeviationPct: 18.0},
		{ID: "2", Risk: model.RiskLow, DeviationPct: -1.5},
		{ID: "3", Risk: model.RiskHigh, DeviationPct: 12.5},
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		risk    model.RiskFilter
		wantIDs []string
	}{
		{name: "all is identity", risk: model.FilterAll, wantIDs: []string{"1", "2", "3"}},
		{name: "high keeps the anomalies", risk: model.FilterHigh, wantIDs: []string{"1", "3"}},
		{name: "low keeps the clean row", risk: model.FilterLow, wantIDs: []string{"2"}},
		{name: "medium matches nothing in the sample", risk: model.FilterMedium, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleTransactions(), tt.risk, "", "")

			gotIDs := make([]string, 0, len(got))
			for _, txn := range got {
				gotIDs = append(gotIDs, txn.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestApply_PreservesOrder(t *testing.T) {
	in := []model.Transaction{
		{ID: "c", Risk: model.RiskHigh},
		{ID: "a", Risk: model.RiskHigh},
		{ID: "b", Risk: model.RiskLow},
		{ID: "d", Risk: model.RiskHigh},
	}

	got := Apply(in, model.FilterHigh, "", "")

	want := []string{"c", "a", "d"}
	for i, txn := range got {
		assert.Equal(t, want[i], txn.ID)
	}
	assert.Len(t, got, len(want))
}

func TestApply_DateRangeAndRegionDoNotNarrow(t *testing.T) {
	in := sampleTransactions()

	got := Apply(in, model.FilterAll, "2026-08-01..2026-08-07", "Harjumaa")

	assert.Equal(t, in, got)
}

func TestApply_EmptyInput(t *testing.T) {
	assert.Empty(t, Apply(nil, model.FilterHigh, "", ""))
	assert.Empty(t, Apply([]model.Transaction{}, model.FilterAll, "", ""))
}
