package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gstcalc/internal/format"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/Veraticus/gstcalc/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// ResultPanelModel renders the live calculation result.
type ResultPanelModel struct {
	theme     themes.Theme
	breakdown model.Breakdown
	rate      model.Rate
	width     int
	ok        bool
}

// NewResultPanelModel creates an empty result panel.
func NewResultPanelModel(theme themes.Theme) ResultPanelModel {
	return ResultPanelModel{theme: theme, width: 36}
}

// SetBreakdown updates the figures shown. ok is false when there is
// nothing to show.
func (m *ResultPanelModel) SetBreakdown(b model.Breakdown, rate model.Rate, ok bool) {
	m.breakdown = b
	m.rate = rate
	m.ok = ok
}

// Resize updates the component width.
func (m *ResultPanelModel) Resize(width int) {
	m.width = max(width, 24)
}

// View renders the panel.
func (m ResultPanelModel) View() string {
	title := m.theme.Title.Render("Calculation Result")
	if !m.ok {
		return lipgloss.JoinVertical(lipgloss.Left, title)
	}

	rows := []string{
		m.row("Base Amount:", format.Currency(m.breakdown.BaseAmount), m.theme.Normal),
		m.row(fmt.Sprintf("GST (%s):", format.Percent(m.rate)), format.Currency(m.breakdown.GSTAmount), m.theme.Normal),
		lipgloss.NewStyle().Foreground(m.theme.Border).Render(strings.Repeat("─", m.width)),
		m.row("Total Amount:", format.Currency(m.breakdown.Total), m.theme.Bold.Foreground(m.theme.Success)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)
}

// row lays out a label on the left and a value flush right.
func (m ResultPanelModel) row(label, value string, valueStyle lipgloss.Style) string {
	gap := m.width - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return m.theme.Normal.Render(label) + strings.Repeat(" ", gap) + valueStyle.Render(value)
}
