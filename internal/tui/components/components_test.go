package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelops/tankboard/internal/model"
	"github.com/fuelops/tankboard/internal/tui/themes"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleKPIs() []model.KPI {
	return []model.KPI{
		{ID: "volume", Label: "Weekly volume", Value: "34,550 L", DeltaPct: 3.1},
		{ID: "revenue", Label: "Weekly revenue", Value: "€58,865", DeltaPct: 2.4},
		{ID: "margin", Label: "Avg margin", Value: "10.9%", DeltaPct: -0.8},
	}
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "1", Time: "Today 14:32", Driver: "M. Tamm", Station: "Circle K Laagri", Liters: 86.4, Price: 14712, DeviationPct: 18.0, Risk: model.RiskHigh},
		{ID: "2", Time: "Today 12:05", Driver: "K. Saar", Station: "Neste Express Viru", Liters: 52.0, Price: 8783, DeviationPct: -1.5, Risk: model.RiskLow},
	}
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestKPIGrid_Navigation(t *testing.T) {
	grid := NewKPIGrid(sampleKPIs(), themes.Default)
	grid.SetFocused(true)

	assert.Equal(t, "volume", grid.SelectedID())

	grid, _ = grid.Update(keyMsg("l"))
	assert.Equal(t, "revenue", grid.SelectedID())

	grid, _ = grid.Update(keyMsg("l"))
	grid, _ = grid.Update(keyMsg("l")) // clamped at the last card
	assert.Equal(t, "margin", grid.SelectedID())

	grid, _ = grid.Update(keyMsg("h"))
	assert.Equal(t, "revenue", grid.SelectedID())
}

func TestKPIGrid_EnterRequestsDialog(t *testing.T) {
	grid := NewKPIGrid(sampleKPIs(), themes.Default)
	grid.SetFocused(true)

	grid, _ = grid.Update(keyMsg("l"))
	_, cmd := grid.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg := runCmd(t, cmd)
	assert.Equal(t, DialogRequestMsg{ID: "revenue"}, msg)
}

func TestKPIGrid_IgnoresInputWhenBlurred(t *testing.T) {
	grid := NewKPIGrid(sampleKPIs(), themes.Default)

	grid, cmd := grid.Update(keyMsg("l"))
	assert.Nil(t, cmd)
	assert.Equal(t, "volume", grid.SelectedID())
}

func TestTransactionTable_EnterTogglesRow(t *testing.T) {
	tbl := NewTransactionTable(sampleTransactions(), themes.Default)
	tbl.SetFocused(true)

	_, cmd := tbl.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg := runCmd(t, cmd)
	assert.Equal(t, RowToggleMsg{ID: "1"}, msg)
}

func TestTransactionTable_MarkReviewed(t *testing.T) {
	tbl := NewTransactionTable(sampleTransactions(), themes.Default)
	tbl.SetFocused(true)

	_, cmd := tbl.Update(keyMsg("r"))

	msg := runCmd(t, cmd)
	assert.Equal(t, MarkReviewedMsg{ID: "1"}, msg)
}

func TestTransactionTable_FilterCycle(t *testing.T) {
	tbl := NewTransactionTable(sampleTransactions(), themes.Default)
	tbl.SetFocused(true)

	order := []model.RiskFilter{
		model.FilterLow,
		model.FilterMedium,
		model.FilterHigh,
		model.FilterAll,
	}

	for _, want := range order {
		_, cmd := tbl.Update(keyMsg("f"))
		msg := runCmd(t, cmd)

		got, ok := msg.(RiskFilterMsg)
		require.True(t, ok)
		assert.Equal(t, want, got.Filter)

		tbl.SetFilter(got.Filter)
	}
}

func TestTransactionTable_ExpandedDetailsRendered(t *testing.T) {
	txns := sampleTransactions()
	txns[0] = txns[0].WithDetails(model.TransactionDetails{
		Vehicle:              "Volvo FH16 · 412 TKL",
		Route:                "Tallinn – Pärnu",
		PreviousTransactions: 47,
		Timeline: []model.TimelineEvent{
			{Time: "14:29", Event: "Vehicle arrived at station"},
		},
	})

	tbl := NewTransactionTable(txns, themes.Default)
	tbl.SetExpanded(map[string]struct{}{"1": {}})

	out := tbl.View()
	assert.Contains(t, out, "Volvo FH16")
	assert.Contains(t, out, "Vehicle arrived at station")
}

func TestStationList_ToggleSaved(t *testing.T) {
	stations := []model.Station{
		{ID: 1, Name: "Neste Express Viru", Price: 1.689, SavingsPct: 4.2, Distance: "0.8 km"},
		{ID: 2, Name: "Circle K Laagri", Price: 1.702, SavingsPct: 3.5, Distance: "2.4 km"},
	}

	list := NewStationList(stations, themes.Default)
	list.SetFocused(true)

	list, _ = list.Update(keyMsg("j"))
	_, cmd := list.Update(keyMsg("s"))

	msg := runCmd(t, cmd)
	assert.Equal(t, StationToggleMsg{ID: 2}, msg)
}

func TestInsightList_ActionAndDialog(t *testing.T) {
	insights := []model.Insight{
		{ID: 1, Title: "Night fueling pattern", Text: "...", Action: "Review card limits"},
		{ID: 2, Title: "Cheaper fuel available", Text: "...", Action: "Apply route suggestion"},
	}

	list := NewInsightList(insights, themes.Default)
	list.SetFocused(true)

	_, cmd := list.Update(keyMsg("a"))
	assert.Equal(t, InsightActionMsg{ID: 1}, runCmd(t, cmd))

	list, _ = list.Update(keyMsg("j"))
	_, cmd = list.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, DialogRequestMsg{ID: "insight-2"}, runCmd(t, cmd))
}

func TestDialog_CloseKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
		keyMsg("q"),
	} {
		d := NewDialog("Weekly revenue", "body", themes.Default)

		_, cmd := d.Update(k)
		assert.Equal(t, DialogCloseMsg{}, runCmd(t, cmd))
	}
}

func TestDialog_RendersTitleAndBody(t *testing.T) {
	d := NewDialog("Weekly revenue", "Revenue is trending up.", themes.Default)
	d.Resize(100, 30)

	out := d.View()
	assert.Contains(t, out, "Weekly revenue")
	assert.Contains(t, out, "Revenue is trending up.")
}

func TestSeriesPanel_PeriodCycleRequest(t *testing.T) {
	series := []model.SeriesPoint{
		{Date: "Mon", Volume: 4820, Revenue: 8210, Margin: 11.2},
		{Date: "Tue", Volume: 5110, Revenue: 8695, Margin: 11.4},
	}

	panel := NewSeriesPanel(series, themes.Default)
	panel.SetFocused(true)

	_, cmd := panel.Update(keyMsg("p"))
	assert.Equal(t, PeriodCycleMsg{}, runCmd(t, cmd))
}
