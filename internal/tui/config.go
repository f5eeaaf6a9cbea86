package tui

import (
	"github.com/fuelops/tankboard/internal/session"
	"github.com/fuelops/tankboard/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Controller   *session.Controller
	Theme        themes.Theme
	InitialView  string
	Width        int
	Height       int
	MouseSupport bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Width:        120,
		Height:       36,
		MouseSupport: true,
	}
}

// WithController sets the session controller driving the dashboard.
func WithController(c *session.Controller) Option {
	return func(cfg *Config) {
		cfg.Controller = c
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(cfg *Config) {
		cfg.Theme = theme
	}
}

// WithInitialView sets the section the navigation host starts on. Unknown
// ids are accepted and render as a placeholder.
func WithInitialView(id string) Option {
	return func(cfg *Config) {
		cfg.InitialView = id
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(cfg *Config) {
		cfg.Width = width
		cfg.Height = height
	}
}
