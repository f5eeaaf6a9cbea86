package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fuelops/tankboard/internal/catalog"
	"github.com/fuelops/tankboard/internal/model"
	"github.com/fuelops/tankboard/internal/tui/themes"
)

// InsightListModel renders the AI-insight panel. Enter opens the insight's
// drill-down dialog; the action key fires its acknowledgment button.
type InsightListModel struct {
	theme    themes.Theme
	insights []model.Insight
	cursor   int
	width    int
	focused  bool
}

// NewInsightList creates the insight panel.
func NewInsightList(insights []model.Insight, theme themes.Theme) InsightListModel {
	return InsightListModel{
		theme:    theme,
		insights: insights,
		width:    80,
	}
}

// Update handles messages.
func (m InsightListModel) Update(msg tea.Msg) (InsightListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		m.cursor = min(m.cursor+1, len(m.insights)-1)

	case "k", "up":
		m.cursor = max(m.cursor-1, 0)

	case "enter":
		if m.cursor < len(m.insights) {
			id := catalog.DialogIDForInsight(m.insights[m.cursor].ID)
			return m, func() tea.Msg { return DialogRequestMsg{ID: id} }
		}

	case "a":
		if m.cursor < len(m.insights) {
			id := m.insights[m.cursor].ID
			return m, func() tea.Msg { return InsightActionMsg{ID: id} }
		}
	}

	return m, nil
}

// View renders the panel.
func (m InsightListModel) View() string {
	title := m.theme.Title.Render("AI insights")
	subtitle := m.theme.Subtitle.Render("[Enter] details  [a] run action")

	cards := []string{title, subtitle}
	for i, ins := range m.insights {
		box := m.theme.RoundedBox.Width(m.width - 6)
		if m.focused && i == m.cursor {
			box = box.BorderForeground(m.theme.Primary)
		}

		card := lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Bold.Render(ins.Title),
			m.theme.Normal.Render(ins.Text),
			m.theme.StatusInfo.Render(fmt.Sprintf("[ %s ]", ins.Action)),
		)
		cards = append(cards, box.Render(card))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// SetFocused sets keyboard focus.
func (m *InsightListModel) SetFocused(focused bool) {
	m.focused = focused
}

// Resize updates the component size.
func (m *InsightListModel) Resize(width int) {
	m.width = width
}
