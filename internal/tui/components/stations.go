package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fuelops/tankboard/internal/model"
	"github.com/fuelops/tankboard/internal/tui/themes"
)

// StationListModel renders the station recommender. Stations can be saved
// and unsaved; everything else about them is immutable catalog data.
type StationListModel struct {
	theme    themes.Theme
	stations []model.Station
	saved    map[int]struct{}
	cursor   int
	width    int
	focused  bool
}

// NewStationList creates the recommender list.
func NewStationList(stations []model.Station, theme themes.Theme) StationListModel {
	return StationListModel{
		theme:    theme,
		stations: stations,
		saved:    map[int]struct{}{},
		width:    80,
	}
}

// Update handles messages.
func (m StationListModel) Update(msg tea.Msg) (StationListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		m.cursor = min(m.cursor+1, len(m.stations)-1)

	case "k", "up":
		m.cursor = max(m.cursor-1, 0)

	case "s", "enter":
		if m.cursor < len(m.stations) {
			id := m.stations[m.cursor].ID
			return m, func() tea.Msg { return StationToggleMsg{ID: id} }
		}
	}

	return m, nil
}

// View renders the list.
func (m StationListModel) View() string {
	title := m.theme.Title.Render("Recommended stations")
	subtitle := m.theme.Subtitle.Render(fmt.Sprintf("%d saved · [s] save/unsave", len(m.saved)))

	lines := make([]string, 0, len(m.stations)+2)
	lines = append(lines, title, subtitle)

	for i, s := range m.stations {
		star := m.theme.TabInactive.Render("☆")
		if _, ok := m.saved[s.ID]; ok {
			star = m.theme.StatusWarning.Render("★")
		}

		row := fmt.Sprintf("%s %-24s €%.3f/L  %s  %s",
			star,
			s.Name,
			s.Price,
			m.theme.StatusSuccess.Render(fmt.Sprintf("-%.1f%%", s.SavingsPct)),
			m.theme.Subtitle.Render(s.Distance),
		)

		addr := "    " + m.theme.Subtitle.Render(s.Address)

		if m.focused && i == m.cursor {
			row = m.theme.Highlighted.Render(row)
		}

		lines = append(lines, row, addr)
	}

	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(lines, "\n"))
}

// SetSaved syncs the saved set with the view state.
func (m *StationListModel) SetSaved(ids map[int]struct{}) {
	m.saved = ids
}

// SetFocused sets keyboard focus.
func (m *StationListModel) SetFocused(focused bool) {
	m.focused = focused
}

// Resize updates the component size.
func (m *StationListModel) Resize(width int) {
	m.width = width
}
