package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gstcalc/internal/format"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/Veraticus/gstcalc/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// linesPerRecord is the rendered height of one entry including spacing.
const linesPerRecord = 4

// HistoryListModel shows recorded calculations, most recent first.
type HistoryListModel struct {
	theme   themes.Theme
	records []model.CalculationRecord
	cursor  int
	offset  int
	width   int
	height  int
}

// NewHistoryListModel creates an empty history list.
func NewHistoryListModel(theme themes.Theme) HistoryListModel {
	return HistoryListModel{
		theme:  theme,
		width:  60,
		height: 20,
	}
}

// SetRecords replaces the displayed records. The cursor moves back to the
// newest entry.
func (m *HistoryListModel) SetRecords(records []model.CalculationRecord) {
	m.records = records
	m.cursor = 0
	m.offset = 0
}

// Records returns the displayed records.
func (m HistoryListModel) Records() []model.CalculationRecord {
	return m.records
}

// Cursor returns the index of the highlighted record.
func (m HistoryListModel) Cursor() int {
	return m.cursor
}

// Resize updates the component size.
func (m *HistoryListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// Update handles navigation keys.
func (m HistoryListModel) Update(msg tea.Msg) (HistoryListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.records) == 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		m.cursor = min(m.cursor+1, len(m.records)-1)
	case "k", "up":
		m.cursor = max(m.cursor-1, 0)
	case "pgdown", "ctrl+f":
		m.cursor = min(m.cursor+m.visibleCount(), len(m.records)-1)
	case "pgup", "ctrl+b":
		m.cursor = max(m.cursor-m.visibleCount(), 0)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.records) - 1
	}
	m.ensureVisible()

	return m, nil
}

// View renders the list.
func (m HistoryListModel) View() string {
	if len(m.records) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Width(m.width).
			Align(lipgloss.Center).
			Padding(1, 0).
			Render("No calculations yet")
		return empty
	}

	end := min(m.offset+m.visibleCount(), len(m.records))
	entries := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		entries = append(entries, m.renderRecord(m.records[i], i == m.cursor))
	}

	view := strings.Join(entries, "\n\n")
	if len(m.records) > m.visibleCount() {
		footer := lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render(fmt.Sprintf("%d–%d of %d", m.offset+1, end, len(m.records)))
		view = lipgloss.JoinVertical(lipgloss.Left, view, "", footer)
	}
	return view
}

// renderRecord renders one entry as three lines:
// date and total, optional note, then base and GST.
func (m HistoryListModel) renderRecord(r model.CalculationRecord, selected bool) string {
	date := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(format.Date(r.CreatedAt))
	total := m.theme.Bold.Render(format.Currency(r.Total))

	var note string
	if r.Note != "" {
		note = m.theme.Normal.Render(r.Note)
	} else {
		note = lipgloss.NewStyle().Foreground(m.theme.Muted).Render(r.Mode())
	}

	base := fmt.Sprintf("Base: %s", format.Currency(r.BaseAmount))
	gst := fmt.Sprintf("GST (%s): %s", format.Percent(r.Rate), format.Currency(r.GSTAmount))

	lines := []string{
		m.spread(date, total),
		note,
		m.spread(m.theme.Normal.Render(base), m.theme.Normal.Render(gst)),
	}

	marker := "  "
	if selected {
		marker = lipgloss.NewStyle().Foreground(m.theme.Primary).Render("▌ ")
	}
	for i := range lines {
		lines[i] = marker + lines[i]
	}
	return strings.Join(lines, "\n")
}

// spread puts left and right at opposite ends of the usable width.
func (m HistoryListModel) spread(left, right string) string {
	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m HistoryListModel) visibleCount() int {
	return max(m.height/linesPerRecord, 1)
}

func (m *HistoryListModel) ensureVisible() {
	visible := m.visibleCount()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}
