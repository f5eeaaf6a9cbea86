// Package tui renders the fueling operations dashboard in the terminal.
// It is a thin presentation layer: every interaction becomes an action
// dispatched to the session controller, and the components are re-synced
// from the resulting session snapshot.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fuelops/tankboard/internal/catalog"
	"github.com/fuelops/tankboard/internal/state"
	"github.com/fuelops/tankboard/internal/tui/components"
	"github.com/fuelops/tankboard/internal/tui/themes"
)

// Model holds the main TUI state.
type Model struct {
	config       Config
	theme        themes.Theme
	keymap       KeyMap
	kpiGrid      components.KPIGridModel
	seriesPanel  components.SeriesPanelModel
	txTable      components.TransactionTableModel
	stationList  components.StationListModel
	insightList  components.InsightListModel
	dialog       components.DialogModel
	width        int
	height       int
	showHelp     bool
	quitting     bool
}

// newModel creates a new model wired to the configured controller.
func newModel(cfg Config) Model {
	cat := cfg.Controller.Catalog()

	m := Model{
		config:      cfg,
		theme:       cfg.Theme,
		keymap:      DefaultKeyMap(),
		kpiGrid:     components.NewKPIGrid(cat.KPIs(), cfg.Theme),
		seriesPanel: components.NewSeriesPanel(cat.Series(), cfg.Theme),
		txTable:     components.NewTransactionTable(cfg.Controller.FilteredTransactions(), cfg.Theme),
		stationList: components.NewStationList(cat.Stations(), cfg.Theme),
		insightList: components.NewInsightList(cat.Insights(), cfg.Theme),
		width:       cfg.Width,
		height:      cfg.Height,
	}

	if cfg.InitialView != "" {
		m.dispatch(state.SelectView{ID: cfg.InitialView})
	}
	m.syncFromSession()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// dispatch sends one action to the controller. Re-rendering happens
// naturally on the next View call, so no change notification is needed
// inside the TUI itself.
func (m *Model) dispatch(a state.Action) {
	m.config.Controller.Dispatch(context.Background(), a)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case components.DialogRequestMsg:
		m.dispatch(state.OpenDialog{ID: msg.ID})
		m.syncFromSession()
		return m, nil

	case components.DialogCloseMsg:
		m.dispatch(state.CloseDialog{})
		m.syncFromSession()
		return m, nil

	case components.RowToggleMsg:
		m.dispatch(state.ToggleRowExpansion{ID: msg.ID})
		m.syncFromSession()
		return m, nil

	case components.MarkReviewedMsg:
		m.dispatch(state.MarkReviewed{TransactionID: msg.ID})
		m.syncFromSession()
		return m, nil

	case components.RiskFilterMsg:
		m.dispatch(state.SetRiskFilter{Filter: msg.Filter})
		m.syncFromSession()
		return m, nil

	case components.StationToggleMsg:
		m.dispatch(state.ToggleSavedStation{ID: msg.ID})
		m.syncFromSession()
		return m, nil

	case components.InsightActionMsg:
		m.config.Controller.TriggerInsightAction(msg.ID)
		return m, nil

	case components.PeriodCycleMsg:
		m.dispatch(state.SetPeriod{Period: nextPeriod(m.view().Period)})
		m.syncFromSession()
		return m, nil
	}

	return m.delegate(msg)
}

// delegate routes a message to the active surface.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.view().DialogOpen() {
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	switch m.view().SelectedView {
	case state.ViewOverview:
		m.kpiGrid, cmd = m.kpiGrid.Update(msg)
		cmds = append(cmds, cmd)
		m.seriesPanel, cmd = m.seriesPanel.Update(msg)
		cmds = append(cmds, cmd)

	case state.ViewTransactions:
		m.txTable, cmd = m.txTable.Update(msg)
		cmds = append(cmds, cmd)

	case state.ViewStations:
		m.stationList, cmd = m.stationList.Update(msg)
		cmds = append(cmds, cmd)

	case state.ViewInsights:
		m.insightList, cmd = m.insightList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleGlobalKeys handles keys that work in any section. The second return
// reports whether the key was consumed.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.showHelp {
		m.showHelp = false
		return nil, true
	}

	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.Quit):
		if !m.view().DialogOpen() {
			m.quitting = true
			return tea.Quit, true
		}

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return nil, true

	case key.Matches(msg, m.keymap.ClearScreen):
		return tea.ClearScreen, true
	}

	if m.view().DialogOpen() {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keymap.NextSection):
		m.dispatch(state.SelectView{ID: nextSection(m.view().SelectedView)})
	case key.Matches(msg, m.keymap.Overview):
		m.dispatch(state.SelectView{ID: state.ViewOverview})
	case key.Matches(msg, m.keymap.Transactions):
		m.dispatch(state.SelectView{ID: state.ViewTransactions})
	case key.Matches(msg, m.keymap.Stations):
		m.dispatch(state.SelectView{ID: state.ViewStations})
	case key.Matches(msg, m.keymap.Insights):
		m.dispatch(state.SelectView{ID: state.ViewInsights})
	case key.Matches(msg, m.keymap.ToggleEnv):
		m.dispatch(state.SetEnvironment{Env: nextEnvironment(m.view().Environment)})
	default:
		return nil, false
	}

	m.syncFromSession()
	return nil, true
}

// view returns the current view state snapshot.
func (m Model) view() state.ViewState {
	return m.config.Controller.View()
}

// syncFromSession refreshes every component from the controller's session
// so the render always reflects the authoritative state.
func (m *Model) syncFromSession() {
	v := m.view()

	m.txTable.SetTransactions(m.config.Controller.FilteredTransactions())
	m.txTable.SetExpanded(v.ExpandedRowIDs)
	m.txTable.SetFilter(v.RiskFilter)
	m.stationList.SetSaved(v.SavedStationIDs)
	m.seriesPanel.SetPeriod(v.Period)

	m.kpiGrid.SetFocused(v.SelectedView == state.ViewOverview && !v.DialogOpen())
	m.seriesPanel.SetFocused(v.SelectedView == state.ViewOverview && !v.DialogOpen())
	m.txTable.SetFocused(v.SelectedView == state.ViewTransactions && !v.DialogOpen())
	m.stationList.SetFocused(v.SelectedView == state.ViewStations && !v.DialogOpen())
	m.insightList.SetFocused(v.SelectedView == state.ViewInsights && !v.DialogOpen())

	if v.DialogOpen() {
		title, body := m.dialogContent(v.OpenDialogID)
		m.dialog = components.NewDialog(title, body, m.theme)
		m.dialog.Resize(m.width, m.height)
	}
}

// dialogContent builds the drill-down text for a dialog id. The reducer
// guarantees the id names an existing KPI or insight.
func (m Model) dialogContent(id string) (string, string) {
	cat := m.config.Controller.Catalog()

	for _, k := range cat.KPIs() {
		if k.ID == id {
			body := fmt.Sprintf("%s is currently %s, moving %+.1f%% against last week. Values are sampled from the weekly series; switch sections for the underlying transactions.",
				k.Label, k.Value, k.DeltaPct)
			return k.Label, body
		}
	}

	for _, ins := range cat.Insights() {
		if catalog.DialogIDForInsight(ins.ID) == id {
			return ins.Title, ins.Text
		}
	}

	return id, "No drill-down available."
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	usableWidth := m.width - 2
	usableHeight := m.height - 6

	m.kpiGrid.Resize(usableWidth)
	m.seriesPanel.Resize(usableWidth)
	m.txTable.Resize(usableWidth, usableHeight)
	m.stationList.Resize(usableWidth)
	m.insightList.Resize(usableWidth)
	m.dialog.Resize(m.width, m.height)
}

func nextSection(current string) string {
	switch current {
	case state.ViewOverview:
		return state.ViewTransactions
	case state.ViewTransactions:
		return state.ViewStations
	case state.ViewStations:
		return state.ViewInsights
	default:
		return state.ViewOverview
	}
}

func nextPeriod(p state.Period) state.Period {
	switch p {
	case state.PeriodDay:
		return state.PeriodWeek
	case state.PeriodWeek:
		return state.PeriodMonth
	default:
		return state.PeriodDay
	}
}

func nextEnvironment(e state.Environment) state.Environment {
	if e == state.EnvProd {
		return state.EnvPilot
	}
	return state.EnvProd
}
