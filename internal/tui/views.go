package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/Veraticus/gstcalc/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

const (
	// wideLayout is the width at which form and result sit side by side.
	wideLayout = 80

	// chromeHeight is the space taken by header, status and help bar.
	chromeHeight = 9
)

var usageSteps = []string{
	"Enter the amount in the input field",
	"Select the appropriate GST rate (5%, 12%, 18%, or 28%)",
	"Choose whether the amount is GST inclusive or exclusive",
	"Add an optional note for reference",
	"Press Enter to calculate and record the breakdown",
	"View calculation history with Ctrl+R",
}

// render composes the full screen.
func (m Model) render() string {
	sections := []string{m.renderHeader()}

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	switch m.state {
	case StateCalculator:
		sections = append(sections, m.renderCalculator())
	case StateHistory:
		sections = append(sections, m.renderHistory())
	}

	sections = append(sections, m.renderStatusBar())
	if m.config.ShowHelp {
		sections = append(sections, m.renderHelpBar())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Foreground(m.theme.Primary).MarginBottom(0).Render("GST Calculator")

	tab := "Calculator"
	if m.state == StateHistory {
		tab = "History"
	}
	subtitle := m.theme.Subtitle.Render(fmt.Sprintf("Goods and Services Tax · %s", tab))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// renderHelp renders the usage overlay.
func (m Model) renderHelp() string {
	lines := []string{m.theme.Bold.Render("How to use the GST Calculator"), ""}
	for i, step := range usageSteps {
		lines = append(lines, m.theme.Normal.Render(fmt.Sprintf("%d. %s", i+1, step)))
	}

	return m.theme.RoundedBox.
		Width(max(m.width-4, 40)).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderCalculator() string {
	form := m.renderForm()
	result := m.theme.RoundedBox.Render(m.result.View())

	if m.width >= wideLayout {
		return lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", result)
	}
	return lipgloss.JoinVertical(lipgloss.Left, form, result)
}

func (m Model) renderForm() string {
	rateOptions := make([]string, len(model.Rates))
	for i, r := range model.Rates {
		rateOptions[i] = r.String()
	}

	modeIndex := 0
	if m.sess.Inclusive() {
		modeIndex = 1
	}

	fields := []string{
		m.label("Amount (₹)", FieldAmount),
		m.amountInput.View(),
		"",
		m.label("GST Rate", FieldRate),
		components.RenderChoices(m.theme, rateOptions, m.sess.Rate().Index(), m.focus == FieldRate),
		"",
		m.label("GST Type", FieldMode),
		components.RenderChoices(m.theme,
			[]string{model.ModeName(false), model.ModeName(true)}, modeIndex, m.focus == FieldMode),
		"",
		m.label("Note (Optional)", FieldNote),
		m.noteInput.View(),
	}

	return m.theme.Box.Render(strings.Join(fields, "\n"))
}

// label renders a field label, highlighted when the field has focus.
func (m Model) label(text string, f Field) string {
	if m.state == StateCalculator && m.focus == f {
		return m.theme.Bold.Foreground(m.theme.Primary).Render(text)
	}
	return m.theme.Bold.Render(text)
}

func (m Model) renderHistory() string {
	count := len(m.history.Records())
	title := m.theme.Title.Render("Calculation History")
	if count > 0 {
		title = lipgloss.JoinHorizontal(lipgloss.Top,
			title,
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render(fmt.Sprintf("  (%d)", count)),
		)
	}

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.history.View()))
}

func (m Model) renderStatusBar() string {
	if m.lastError != nil {
		return m.theme.StatusError.Render("Error: " + m.lastError.Error())
	}
	if m.status != "" {
		return m.theme.StatusSuccess.Render(m.status)
	}
	return ""
}

func (m Model) renderHelpBar() string {
	bindings := m.keymap.calculatorHelp()
	if m.state == StateHistory {
		bindings = m.keymap.historyHelp()
	}
	return m.help.ShortHelpView(bindings)
}
