// Package themes defines the color themes of the interactive calculator.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Chip          lipgloss.Style
	Box           lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Success       lipgloss.Color
	Error         lipgloss.Color
}

// palette is the set of colors a theme is derived from.
type palette struct {
	primary    lipgloss.Color
	onPrimary  lipgloss.Color
	foreground lipgloss.Color
	subtle     lipgloss.Color
	muted      lipgloss.Color
	border     lipgloss.Color
	success    lipgloss.Color
	err        lipgloss.Color
}

func newTheme(p palette) Theme {
	return Theme{
		Primary:    p.primary,
		Muted:      p.muted,
		Border:     p.border,
		Foreground: p.foreground,
		Success:    p.success,
		Error:      p.err,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.subtle).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.onPrimary).
			Bold(true),
		Chip: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Padding(1, 2),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(1, 2),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.err).
			Bold(true),
	}
}

// Default is the default theme, indigo on dark.
var Default = newTheme(palette{
	primary:    lipgloss.Color("#6366f1"),
	onPrimary:  lipgloss.Color("#fafafa"),
	foreground: lipgloss.Color("#fafafa"),
	subtle:     lipgloss.Color("#a3a3a3"),
	muted:      lipgloss.Color("#737373"),
	border:     lipgloss.Color("#404040"),
	success:    lipgloss.Color("#10b981"),
	err:        lipgloss.Color("#ef4444"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    lipgloss.Color("#cba6f7"),
	onPrimary:  lipgloss.Color("#1e1e2e"),
	foreground: lipgloss.Color("#cdd6f4"),
	subtle:     lipgloss.Color("#a6adc8"),
	muted:      lipgloss.Color("#6c7086"),
	border:     lipgloss.Color("#45475a"),
	success:    lipgloss.Color("#a6e3a1"),
	err:        lipgloss.Color("#f38ba8"),
})

// Names lists the selectable theme names.
var Names = []string{"default", "catppuccin-mocha"}

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
