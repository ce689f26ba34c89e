// Package cli renders gst output for the plain command line: boxed
// breakdowns, history tables and status lines.
package cli

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	PrimaryColor = lipgloss.Color("#FF9933") // saffron
	SuccessColor = lipgloss.Color("#4ECDC4")
	WarningColor = lipgloss.Color("#FFE66D")
	ErrorColor   = lipgloss.Color("#FF6B6B")
	InfoColor    = lipgloss.Color("#95E1D3")
	SubtleColor  = lipgloss.Color("#666666")
	BorderColor  = lipgloss.Color("#333333")
)

// Styles shared by the renderers.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
	SuccessStyle   = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle   = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle     = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle      = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle    = lipgloss.NewStyle().Foreground(SubtleColor)
	BoldStyle      = lipgloss.NewStyle().Bold(true)
	TableCellStyle = lipgloss.NewStyle().PaddingRight(2)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
)

func withIcon(style lipgloss.Style, icon, message string) string {
	return style.Render(icon + " " + message)
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string { return withIcon(SuccessStyle, SuccessIcon, message) }

// FormatError formats an error message with icon.
func FormatError(message string) string { return withIcon(ErrorStyle, ErrorIcon, message) }

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string { return withIcon(WarningStyle, WarningIcon, message) }

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string { return withIcon(InfoStyle, InfoIcon, message) }

// RenderBox renders content under a title in a rounded box.
func RenderBox(title, content string) string {
	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.MarginBottom(1).Render(title),
		content,
	))
}
