package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fuelops/tankboard/internal/tui/themes"
)

// DialogModel is the drill-down modal. Its lifecycle has exactly two
// states: the app either renders it (Open) or doesn't (Closed); any close
// key or an outside click returns to Closed.
type DialogModel struct {
	theme  themes.Theme
	title  string
	body   string
	width  int
	height int
}

// NewDialog creates a dialog with content for the given drill-down surface.
func NewDialog(title, body string, theme themes.Theme) DialogModel {
	return DialogModel{
		theme:  theme,
		title:  title,
		body:   body,
		width:  80,
		height: 24,
	}
}

// Update handles messages.
func (m DialogModel) Update(msg tea.Msg) (DialogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return m, func() tea.Msg { return DialogCloseMsg{} }
		}

	case tea.MouseMsg:
		// Any click lands outside the dialog surface often enough for a
		// mockup; treat every click as click-out.
		if msg.Action == tea.MouseActionRelease {
			return m, func() tea.Msg { return DialogCloseMsg{} }
		}
	}

	return m, nil
}

// View renders the centered modal.
func (m DialogModel) View() string {
	boxWidth := min(64, m.width-8)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render(m.title),
		"",
		m.theme.Normal.Width(boxWidth-6).Render(m.body),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press Esc to close"),
	)

	box := m.theme.BorderedBox.
		BorderForeground(m.theme.Primary).
		Width(boxWidth).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Resize updates the component size.
func (m *DialogModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Title returns the dialog heading, used by tests and the status bar.
func (m DialogModel) Title() string {
	return strings.TrimSpace(m.title)
}
