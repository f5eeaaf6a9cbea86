package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fuelops/tankboard/internal/model"
	"github.com/fuelops/tankboard/internal/tui/themes"
)

// TransactionTableModel renders the anomaly/transaction table with
// expandable detail rows, the risk filter and the mark-reviewed action.
type TransactionTableModel struct {
	theme        themes.Theme
	table        table.Model
	transactions []model.Transaction
	expanded     map[string]struct{}
	filter       model.RiskFilter
	width        int
	height       int
	focused      bool
}

// NewTransactionTable creates the table over the filtered transaction set.
func NewTransactionTable(transactions []model.Transaction, theme themes.Theme) TransactionTableModel {
	columns := []table.Column{
		{Title: "Time", Width: 15},
		{Title: "Card", Width: 10},
		{Title: "Driver", Width: 10},
		{Title: "Station", Width: 20},
		{Title: "Liters", Width: 8},
		{Title: "Price", Width: 9},
		{Title: "Dev", Width: 7},
		{Title: "Risk", Width: 7},
		{Title: "Status", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	m := TransactionTableModel{
		theme:        theme,
		table:        t,
		transactions: transactions,
		expanded:     map[string]struct{}{},
		filter:       model.FilterAll,
		width:        80,
		height:       24,
	}
	m.refreshRows()

	return m
}

// Update handles messages.
func (m TransactionTableModel) Update(msg tea.Msg) (TransactionTableModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.focused {
		switch keyMsg.String() {
		case "enter":
			if t, ok := m.selected(); ok {
				return m, func() tea.Msg { return RowToggleMsg{ID: t.ID} }
			}
			return m, nil

		case "r":
			if t, ok := m.selected(); ok {
				return m, func() tea.Msg { return MarkReviewedMsg{ID: t.ID} }
			}
			return m, nil

		case "f":
			next := nextFilter(m.filter)
			return m, func() tea.Msg { return RiskFilterMsg{Filter: next} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func nextFilter(f model.RiskFilter) model.RiskFilter {
	switch f {
	case model.FilterAll:
		return model.FilterLow
	case model.FilterLow:
		return model.FilterMedium
	case model.FilterMedium:
		return model.FilterHigh
	default:
		return model.FilterAll
	}
}

func (m TransactionTableModel) selected() (model.Transaction, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.transactions) {
		return model.Transaction{}, false
	}
	return m.transactions[i], true
}

// View renders the table plus detail boxes for expanded rows.
func (m TransactionTableModel) View() string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.theme.Title.Render("Transactions"),
		m.theme.Normal.Render("  "),
		m.theme.Subtitle.Render(fmt.Sprintf("risk: %s · %d shown", m.filter, len(m.transactions))),
	)

	sections := []string{
		header,
		m.table.View(),
	}

	for _, t := range m.transactions {
		if _, ok := m.expanded[t.ID]; ok {
			sections = append(sections, m.renderDetails(t))
		}
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m TransactionTableModel) renderDetails(t model.Transaction) string {
	title := m.theme.Bold.Render(fmt.Sprintf("#%s · %s @ %s", t.ID, t.Driver, t.Station))

	if !t.HasDetails() {
		return m.theme.RoundedBox.Width(m.width - 4).Render(lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			m.theme.StatusPending.Render("No detail record for this transaction"),
		))
	}

	d := t.Details
	lines := []string{
		title,
		fmt.Sprintf("%s %s", m.theme.Subtitle.Render("Vehicle:"), m.theme.Normal.Render(d.Vehicle)),
		fmt.Sprintf("%s %s", m.theme.Subtitle.Render("Route:"), m.theme.Normal.Render(d.Route)),
		fmt.Sprintf("%s %s", m.theme.Subtitle.Render("History:"), m.theme.Normal.Render(fmt.Sprintf("%d previous transactions", d.PreviousTransactions))),
		m.theme.Subtitle.Render("Timeline:"),
	}
	for _, ev := range d.Timeline {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			m.theme.StatusInfo.Render(ev.Time),
			m.theme.Normal.Render(ev.Event),
		))
	}

	return m.theme.RoundedBox.Width(m.width - 4).Render(strings.Join(lines, "\n"))
}

func (m TransactionTableModel) renderFooter() string {
	hints := []string{
		"[↑↓] Navigate",
		"[Enter] Expand",
		"[r] Mark reviewed",
		"[f] Cycle risk filter",
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
}

func (m *TransactionTableModel) refreshRows() {
	rows := make([]table.Row, 0, len(m.transactions))
	for _, t := range m.transactions {
		status := m.theme.StatusPending.Render("open")
		if t.Reviewed {
			status = m.theme.StatusSuccess.Render("reviewed")
		}

		marker := " "
		if _, ok := m.expanded[t.ID]; ok {
			marker = "▾"
		}

		rows = append(rows, table.Row{
			marker + " " + t.Time,
			t.Card,
			t.Driver,
			t.Station,
			fmt.Sprintf("%.1f", t.Liters),
			fmt.Sprintf("€%.2f", float64(t.Price)/100),
			fmt.Sprintf("%+.1f%%", t.DeviationPct),
			m.theme.RiskStyle(t.Risk).Render(string(t.Risk)),
			status,
		})
	}
	m.table.SetRows(rows)
}

// SetTransactions replaces the displayed (already filtered) set.
func (m *TransactionTableModel) SetTransactions(transactions []model.Transaction) {
	m.transactions = transactions
	if c := m.table.Cursor(); c >= len(transactions) && len(transactions) > 0 {
		m.table.SetCursor(len(transactions) - 1)
	}
	m.refreshRows()
}

// SetExpanded syncs the expanded-row set with the view state.
func (m *TransactionTableModel) SetExpanded(ids map[string]struct{}) {
	m.expanded = ids
	m.refreshRows()
}

// SetFilter syncs the filter indicator with the view state.
func (m *TransactionTableModel) SetFilter(f model.RiskFilter) {
	m.filter = f
}

// Filter returns the displayed filter.
func (m TransactionTableModel) Filter() model.RiskFilter {
	return m.filter
}

// SetFocused sets keyboard focus.
func (m *TransactionTableModel) SetFocused(focused bool) {
	m.focused = focused
	if focused {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

// Resize updates the component size.
func (m *TransactionTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(3, height-8))
}
