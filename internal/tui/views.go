package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fuelops/tankboard/internal/state"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.view().DialogOpen() {
		return m.dialog.View()
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderSection(),
	)

	return m.wrapWithStatusBar(content)
}

// renderHeader renders the title bar with the environment badge and the
// section tabs.
func (m Model) renderHeader() string {
	title := m.theme.Title.Render("⛽ tankboard")

	env := m.theme.StatusSuccess.Render(" " + string(m.view().Environment) + " ")
	if m.view().Environment == state.EnvPilot {
		env = m.theme.StatusWarning.Render(" " + string(m.view().Environment) + " ")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", env),
		m.renderTabs(),
		"",
	)
}

func (m Model) renderTabs() string {
	sections := []struct {
		id    string
		label string
	}{
		{state.ViewOverview, "1 Overview"},
		{state.ViewTransactions, "2 Transactions"},
		{state.ViewStations, "3 Stations"},
		{state.ViewInsights, "4 Insights"},
	}

	tabs := make([]string, 0, len(sections))
	active := m.view().SelectedView
	known := false

	for _, s := range sections {
		if s.id == active {
			tabs = append(tabs, m.theme.TabActive.Render(s.label))
			known = true
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(s.label))
		}
	}

	row := strings.Join(tabs, m.theme.TabInactive.Render("  │  "))
	if !known {
		row += m.theme.StatusPending.Render(fmt.Sprintf("   (%s)", active))
	}
	return row
}

// renderSection renders the active section, falling back to a placeholder
// for navigation ids this dashboard doesn't recognize.
func (m Model) renderSection() string {
	switch m.view().SelectedView {
	case state.ViewOverview:
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.kpiGrid.View(),
			"",
			m.seriesPanel.View(),
		)

	case state.ViewTransactions:
		return m.txTable.View()

	case state.ViewStations:
		return m.stationList.View()

	case state.ViewInsights:
		return m.insightList.View()

	default:
		return m.renderPlaceholder()
	}
}

// renderPlaceholder is the degraded rendering for unknown view ids.
// Selecting an unknown section is not an error; it just has no content.
func (m Model) renderPlaceholder() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Nothing here yet"),
		"",
		m.theme.Subtitle.Render(fmt.Sprintf("The section %q is not part of this dashboard.", m.view().SelectedView)),
		m.theme.Subtitle.Render("Use Tab or 1-4 to switch to a known section."),
	)

	return lipgloss.Place(
		m.width-2,
		max(4, m.height-8),
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("tankboard — Help")

	sections := []struct {
		title string
		items []string
	}{
		{
			"Navigation",
			[]string{
				"↑/k, ↓/j    Move up/down",
				"←/h, →/l    Move across KPI cards",
				"Tab         Next section",
				"1-4         Jump to section",
			},
		},
		{
			"Transactions",
			[]string{
				"Enter       Expand/collapse row",
				"r           Mark reviewed",
				"f           Cycle risk filter",
			},
		},
		{
			"Overview & panels",
			[]string{
				"Enter       Open KPI/insight drill-down",
				"p           Cycle chart period",
				"m           Cycle chart metric",
				"s           Save/unsave station",
				"a           Run insight action",
			},
		},
		{
			"Application",
			[]string{
				"e           Toggle Prod/Pilot",
				"q           Quit",
				"Ctrl+C      Force quit",
				"Ctrl+L      Clear screen",
			},
		},
	}

	var content []string
	for _, section := range sections {
		content = append(content, m.theme.Subtitle.Render(section.title))
		for _, item := range section.items {
			parts := strings.SplitN(item, "  ", 2)
			if len(parts) == 2 {
				line := fmt.Sprintf("  %-12s %s",
					lipgloss.NewStyle().Foreground(m.theme.Primary).Render(parts[0]),
					m.theme.Normal.Render(strings.TrimSpace(parts[1])),
				)
				content = append(content, line)
			}
		}
		content = append(content, "")
	}

	helpText := lipgloss.JoinVertical(lipgloss.Left, content...)
	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press any key to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			Width(56).
			MaxHeight(m.height-2).
			Render(lipgloss.JoinVertical(lipgloss.Left, title, "", helpText, footer)),
	)
}

// wrapWithStatusBar appends the bottom status bar.
func (m Model) wrapWithStatusBar(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderStatusBar(),
	)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	v := m.view()

	left := fmt.Sprintf(" %s · %s", v.SelectedView, v.Period)
	if v.RiskFilter != "All" {
		left += fmt.Sprintf(" · risk=%s", v.RiskFilter)
	}

	right := "? Help · q Quit "

	width := max(20, m.width)
	spacing := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))

	status := left + strings.Repeat(" ", spacing) + right

	return lipgloss.NewStyle().
		Foreground(m.theme.Foreground).
		Background(m.theme.Border).
		Width(width).
		MaxWidth(width).
		Render(status)
}
