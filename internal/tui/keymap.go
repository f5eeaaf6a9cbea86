package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Select      key.Binding
	Review      key.Binding
	Filter      key.Binding
	Period      key.Binding
	Metric      key.Binding
	SaveStation key.Binding
	RunAction   key.Binding

	// Sections
	NextSection  key.Binding
	Overview     key.Binding
	Transactions key.Binding
	Stations     key.Binding
	Insights     key.Binding

	// Application
	ToggleEnv   key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "right"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "expand/open"),
		),
		Review: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "mark reviewed"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle risk filter"),
		),
		Period: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle period"),
		),
		Metric: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cycle metric"),
		),
		SaveStation: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save station"),
		),
		RunAction: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "run insight action"),
		),

		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next section"),
		),
		Overview: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "overview"),
		),
		Transactions: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "transactions"),
		),
		Stations: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "stations"),
		),
		Insights: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "insights"),
		),

		ToggleEnv: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle Prod/Pilot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.NextSection, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Review, k.Filter, k.SaveStation},
		{k.Period, k.Metric, k.RunAction, k.ToggleEnv},
		{k.NextSection, k.Overview, k.Transactions, k.Stations},
		{k.Insights, k.Help, k.Quit},
	}
}
