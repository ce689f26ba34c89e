package components

import (
	"strings"

	"github.com/Veraticus/gstcalc/internal/tui/themes"
)

// RenderChoices renders a row of options with the selected one highlighted.
// A focused row gets a leading marker.
func RenderChoices(theme themes.Theme, options []string, selected int, focused bool) string {
	chips := make([]string, 0, len(options))
	for i, opt := range options {
		if i == selected {
			chips = append(chips, theme.Selected.Padding(0, 1).Render(opt))
			continue
		}
		chips = append(chips, theme.Chip.Render(opt))
	}

	prefix := "  "
	if focused {
		prefix = theme.Bold.Foreground(theme.Primary).Render("> ")
	}
	return prefix + strings.Join(chips, " ")
}
