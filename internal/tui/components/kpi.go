package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fuelops/tankboard/internal/model"
	"github.com/fuelops/tankboard/internal/tui/themes"
)

// KPIGridModel renders the row of KPI cards. Enter opens the drill-down
// dialog for the focused card.
type KPIGridModel struct {
	theme   themes.Theme
	kpis    []model.KPI
	cursor  int
	width   int
	focused bool
}

// NewKPIGrid creates the KPI card row.
func NewKPIGrid(kpis []model.KPI, theme themes.Theme) KPIGridModel {
	return KPIGridModel{
		theme: theme,
		kpis:  kpis,
		width: 80,
	}
}

// Update handles messages.
func (m KPIGridModel) Update(msg tea.Msg) (KPIGridModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		m.cursor = max(m.cursor-1, 0)

	case "right", "l":
		m.cursor = min(m.cursor+1, len(m.kpis)-1)

	case "enter":
		if m.cursor < len(m.kpis) {
			id := m.kpis[m.cursor].ID
			return m, func() tea.Msg {
				return DialogRequestMsg{ID: id}
			}
		}
	}

	return m, nil
}

// View renders the card row.
func (m KPIGridModel) View() string {
	if len(m.kpis) == 0 {
		return ""
	}

	cardWidth := max(16, m.width/len(m.kpis)-4)

	cards := make([]string, 0, len(m.kpis))
	for i, k := range m.kpis {
		box := m.theme.RoundedBox.Width(cardWidth)
		if m.focused && i == m.cursor {
			box = box.BorderForeground(m.theme.Primary)
		}

		delta := fmt.Sprintf("▲ %+.1f%%", k.DeltaPct)
		if k.DeltaPct < 0 {
			delta = fmt.Sprintf("▼ %+.1f%%", k.DeltaPct)
		}

		card := lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Subtitle.Render(k.Label),
			m.theme.Bold.Render(k.Value),
			m.theme.DeltaStyle(k.DeltaPct).Render(delta),
		)
		cards = append(cards, box.Render(card))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// SelectedID returns the id of the focused card.
func (m KPIGridModel) SelectedID() string {
	if m.cursor < len(m.kpis) {
		return m.kpis[m.cursor].ID
	}
	return ""
}

// SetFocused sets keyboard focus.
func (m *KPIGridModel) SetFocused(focused bool) {
	m.focused = focused
}

// Resize updates the component size.
func (m *KPIGridModel) Resize(width int) {
	m.width = width
}
