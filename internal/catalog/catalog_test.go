package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelops/tankboard/internal/model"
)

func TestLoad_DatasetShape(t *testing.T) {
	cat := Load()

	assert.Len(t, cat.Stations(), 4)
	assert.Len(t, cat.Transactions(), 3)
	assert.Len(t, cat.Insights(), 3)
	assert.Len(t, cat.Series(), 7)
	assert.Len(t, cat.KPIs(), 4)
}

func TestLoad_UniqueIdentifiers(t *testing.T) {
	cat := Load()

	txnIDs := map[string]bool{}
	for _, txn := range cat.Transactions() {
		assert.False(t, txnIDs[txn.ID], "duplicate transaction id %s", txn.ID)
		txnIDs[txn.ID] = true
	}

	stationIDs := map[int]bool{}
	for _, s := range cat.Stations() {
		assert.False(t, stationIDs[s.ID], "duplicate station id %d", s.ID)
		stationIDs[s.ID] = true
	}

	kpiIDs := map[string]bool{}
	for _, k := range cat.KPIs() {
		assert.False(t, kpiIDs[k.ID], "duplicate kpi id %s", k.ID)
		kpiIDs[k.ID] = true
	}
}

func TestTransactions_ReturnsIndependentCopy(t *testing.T) {
	cat := Load()

	first := cat.Transactions()
	first[0].Reviewed = true

	second := cat.Transactions()
	assert.False(t, second[0].Reviewed)
}

func TestHasTransaction(t *testing.T) {
	cat := Load()

	assert.True(t, cat.HasTransaction("1"))
	assert.True(t, cat.HasTransaction("3"))
	assert.False(t, cat.HasTransaction("999"))
	assert.False(t, cat.HasTransaction(""))
}

func TestHasDialog(t *testing.T) {
	cat := Load()

	tests := []struct {
		id   string
		want bool
	}{
		{id: "volume", want: true},
		{id: "revenue", want: true},
		{id: "margin", want: true},
		{id: "anomalies", want: true},
		{id: "insight-1", want: true},
		{id: "insight-3", want: true},
		{id: "insight-99", want: false},
		{id: "1", want: false},
		{id: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, cat.HasDialog(tt.id))
		})
	}
}

func TestDialogIDForInsight(t *testing.T) {
	assert.Equal(t, "insight-1", DialogIDForInsight(1))
	assert.Equal(t, "insight-42", DialogIDForInsight(42))
}

func TestLookups(t *testing.T) {
	cat := Load()

	s, ok := cat.StationByID(2)
	require.True(t, ok)
	assert.Equal(t, "Circle K Laagri", s.Name)

	_, ok = cat.StationByID(99)
	assert.False(t, ok)

	ins, ok := cat.InsightByID(1)
	require.True(t, ok)
	assert.NotEmpty(t, ins.Action)

	_, ok = cat.InsightByID(0)
	assert.False(t, ok)
}

func TestSampleScenario(t *testing.T) {
	cat := Load()

	// The anomaly pair drives the table and insights: two high-risk rows
	// with detail records, one clean row without.
	var high, withDetails int
	for _, txn := range cat.Transactions() {
		if txn.Risk == model.RiskHigh {
			high++
			assert.Greater(t, txn.DeviationPct, 10.0)
		}
		if txn.HasDetails() {
			withDetails++
			assert.NotEmpty(t, txn.Details.Timeline)
		}
		assert.False(t, txn.Reviewed)
	}
	assert.Equal(t, 2, high)
	assert.Equal(t, 2, withDetails)

	for _, s := range cat.Stations() {
		assert.Greater(t, s.Price, 0.0)
		assert.Greater(t, s.SavingsPct, 0.0)
	}
}
