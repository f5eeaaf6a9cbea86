package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fuelops/tankboard/internal/model"
	"github.com/fuelops/tankboard/internal/state"
	"github.com/fuelops/tankboard/internal/tui/themes"
)

// SeriesPanelModel renders the weekly time-series as a bar sparkline with
// the period selector. The period is cosmetic: the catalog always holds the
// same weekly sample points, so switching it only moves the highlight.
type SeriesPanelModel struct {
	theme   themes.Theme
	series  []model.SeriesPoint
	metric  model.SeriesMetric
	period  state.Period
	width   int
	focused bool
}

// NewSeriesPanel creates the chart panel.
func NewSeriesPanel(series []model.SeriesPoint, theme themes.Theme) SeriesPanelModel {
	return SeriesPanelModel{
		theme:  theme,
		series: series,
		metric: model.MetricVolume,
		period: state.PeriodWeek,
		width:  80,
	}
}

// Update handles messages.
func (m SeriesPanelModel) Update(msg tea.Msg) (SeriesPanelModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.String() {
	case "p":
		return m, func() tea.Msg { return PeriodCycleMsg{} }

	case "m":
		switch m.metric {
		case model.MetricVolume:
			m.metric = model.MetricRevenue
		case model.MetricRevenue:
			m.metric = model.MetricMargin
		default:
			m.metric = model.MetricVolume
		}
	}

	return m, nil
}

// View renders the panel.
func (m SeriesPanelModel) View() string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.theme.Title.Render("Weekly trend"),
		m.theme.Normal.Render("  "),
		m.renderPeriodSelector(),
	)

	subtitle := m.theme.Subtitle.Render(fmt.Sprintf("metric: %s  [m] switch  [p] period", m.metric))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		subtitle,
		m.renderBars(),
	)
}

func (m SeriesPanelModel) renderPeriodSelector() string {
	periods := []state.Period{state.PeriodDay, state.PeriodWeek, state.PeriodMonth}

	parts := make([]string, 0, len(periods))
	for _, p := range periods {
		if p == m.period {
			parts = append(parts, m.theme.TabActive.Render(string(p)))
		} else {
			parts = append(parts, m.theme.TabInactive.Render(string(p)))
		}
	}
	return strings.Join(parts, m.theme.TabInactive.Render(" · "))
}

func (m SeriesPanelModel) renderBars() string {
	if len(m.series) == 0 {
		return m.theme.StatusPending.Render("no series data")
	}

	maxVal := m.series[0].Value(m.metric)
	for _, p := range m.series {
		if v := p.Value(m.metric); v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	barWidth := max(10, min(30, m.width-20))

	lines := make([]string, 0, len(m.series))
	for _, p := range m.series {
		v := p.Value(m.metric)
		filled := int(v / maxVal * float64(barWidth))
		bar := lipgloss.NewStyle().Foreground(m.theme.Primary).Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Repeat("░", barWidth-filled))

		lines = append(lines, fmt.Sprintf("%-4s %s %s",
			m.theme.Subtitle.Render(p.Date),
			bar,
			m.theme.Normal.Render(formatMetric(v, m.metric)),
		))
	}

	return strings.Join(lines, "\n")
}

func formatMetric(v float64, m model.SeriesMetric) string {
	switch m {
	case model.MetricRevenue:
		return fmt.Sprintf("€%.0f", v)
	case model.MetricMargin:
		return fmt.Sprintf("%.1f%%", v)
	default:
		return fmt.Sprintf("%.0f L", v)
	}
}

// SetPeriod syncs the selector highlight with the view state.
func (m *SeriesPanelModel) SetPeriod(p state.Period) {
	m.period = p
}

// Period returns the highlighted period.
func (m SeriesPanelModel) Period() state.Period {
	return m.period
}

// SetFocused sets keyboard focus.
func (m *SeriesPanelModel) SetFocused(focused bool) {
	m.focused = focused
}

// Resize updates the component size.
func (m *SeriesPanelModel) Resize(width int) {
	m.width = width
}
