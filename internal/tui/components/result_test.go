package components

import (
	"testing"

	"github.com/Veraticus/gstcalc/internal/engine"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/Veraticus/gstcalc/internal/tui/themes"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResultPanelModel_Empty(t *testing.T) {
	m := NewResultPanelModel(themes.Default)

	view := m.View()

	assert.Contains(t, view, "Calculation Result")
	assert.NotContains(t, view, "Total Amount")
}

func TestResultPanelModel_ShowsBreakdown(t *testing.T) {
	m := NewResultPanelModel(themes.Default)
	m.Resize(40)
	m.SetBreakdown(engine.Compute(decimal.NewFromInt(1180), model.Rate18, true), model.Rate18, true)

	view := m.View()

	assert.Contains(t, view, "Base Amount:")
	assert.Contains(t, view, "₹1,000.00")
	assert.Contains(t, view, "GST (18%):")
	assert.Contains(t, view, "₹180.00")
	assert.Contains(t, view, "Total Amount:")
	assert.Contains(t, view, "₹1,180.00")
}

func TestResultPanelModel_MinimumWidth(t *testing.T) {
	m := NewResultPanelModel(themes.Default)
	m.Resize(5)

	assert.Equal(t, 24, m.width)
}

func TestRenderChoices(t *testing.T) {
	view := RenderChoices(themes.Default, []string{"5%", "12%", "18%", "28%"}, 2, true)

	for _, opt := range []string{"5%", "12%", "18%", "28%"} {
		assert.Contains(t, view, opt)
	}
	assert.Contains(t, view, "> ")

	unfocused := RenderChoices(themes.Default, []string{"Exclusive", "Inclusive"}, 0, false)
	assert.NotContains(t, unfocused, ">")
}
