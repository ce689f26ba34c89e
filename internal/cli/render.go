package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gstcalc/internal/format"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// EmptyHistoryMessage is shown when there is nothing to list.
const EmptyHistoryMessage = "No calculations yet"

// RenderBreakdown renders a single calculation as a boxed summary.
func RenderBreakdown(r model.CalculationRecord) string {
	rows := [][2]string{
		{"GST Rate", format.Percent(r.Rate)},
		{"GST Type", r.Mode()},
		{"Base Amount", format.Currency(r.BaseAmount)},
		{fmt.Sprintf("GST (%s)", format.Percent(r.Rate)), format.Currency(r.GSTAmount)},
		{"Total Amount", format.Currency(r.Total)},
	}
	if r.Note != "" {
		rows = append(rows, [2]string{"Note", r.Note})
	}

	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(row[0]))
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		label := SubtleStyle.Render(fmt.Sprintf("%-*s", labelWidth, row[0]))
		value := row[1]
		if row[0] == "Total Amount" {
			value = BoldStyle.Foreground(SuccessColor).Render(value)
		}
		lines = append(lines, label+"  "+value)
	}

	return RenderBox("GST Breakdown", strings.Join(lines, "\n"))
}

// RenderHistory renders records as a table in the order given.
func RenderHistory(records []model.CalculationRecord) string {
	if len(records) == 0 {
		return SubtleStyle.Render(EmptyHistoryMessage)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			format.Date(r.CreatedAt),
			format.Percent(r.Rate),
			r.Mode(),
			format.Currency(r.BaseAmount),
			format.Currency(r.GSTAmount),
			format.Currency(r.Total),
			r.Note,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		Headers("Date", "Rate", "Type", "Base", "GST", "Total", "Note").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableCellStyle.Bold(true).Foreground(PrimaryColor).PaddingLeft(1)
			}
			style := TableCellStyle.PaddingLeft(1)
			if col >= 3 && col <= 5 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	return t.String()
}

// RenderRates lists the supported rates, marking def.
func RenderRates(def model.Rate) string {
	lines := make([]string, 0, len(model.Rates))
	for _, r := range model.Rates {
		line := fmt.Sprintf("  %s", format.Percent(r))
		if r == def {
			line = SuccessStyle.Render(fmt.Sprintf("%s %s (default)", SuccessIcon, format.Percent(r)))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
