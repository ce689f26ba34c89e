package tui

import "github.com/Veraticus/gstcalc/internal/tui/themes"

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Width     int
	Height    int
	ShowHelp  bool
	AltScreen bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Width:     80,
		Height:    24,
		ShowHelp:  true,
		AltScreen: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithHelpBar shows or hides the key help bar at the bottom of the screen.
func WithHelpBar(enabled bool) Option {
	return func(c *Config) {
		c.ShowHelp = enabled
	}
}

// WithAltScreen controls whether the TUI takes over the alternate screen.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
