package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/Veraticus/gstcalc/internal/session"
	"github.com/Veraticus/gstcalc/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sequentialIDs struct {
	n int
}

func (g *sequentialIDs) NewID(_ time.Time) string {
	g.n++
	return fmt.Sprintf("id-%03d", g.n)
}

func createTestModel(t *testing.T) Model {
	t.Helper()

	start := time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)
	clock := func() time.Time {
		start = start.Add(time.Minute)
		return start
	}

	sess, err := session.New(session.WithClock(clock), session.WithIDGenerator(&sequentialIDs{}))
	require.NoError(t, err)

	cfg := Config{
		Theme:    themes.Default,
		Width:    100,
		Height:   40,
		ShowHelp: true,
	}
	m := newModel(context.Background(), sess, cfg)
	t.Cleanup(m.shutdown)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, k)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// drainEvents feeds every queued ledger event back into the model.
func drainEvents(t *testing.T, m Model) Model {
	t.Helper()
	for {
		select {
		case e := <-m.events:
			m, _ = update(t, m, ledgerChangedMsg{event: e})
		default:
			return m
		}
	}
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyCtrlR    = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyCtrlT    = tea.KeyMsg{Type: tea.KeyCtrlT}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_InitialState(t *testing.T) {
	m := createTestModel(t)

	assert.Equal(t, StateCalculator, m.state)
	assert.Equal(t, FieldAmount, m.focus)
	assert.Equal(t, model.Rate18, m.sess.Rate())
	assert.False(t, m.sess.Inclusive())

	view := m.View()
	assert.Contains(t, view, "GST Calculator")
	assert.Contains(t, view, "Amount (₹)")
	assert.Contains(t, view, "18%")
	assert.Contains(t, view, "Exclusive")
	assert.NotContains(t, view, "Total Amount:")
}

func TestModel_HelpBarOption(t *testing.T) {
	m := createTestModel(t)
	assert.Contains(t, m.View(), "next field")

	WithHelpBar(false)(&m.config)
	assert.NotContains(t, m.View(), "next field")
	assert.Contains(t, m.View(), "Amount (₹)")
}

func TestModel_LivePreview(t *testing.T) {
	m := createTestModel(t)

	m = typeText(t, m, "1000")

	assert.Equal(t, "1000", m.sess.Amount())
	view := m.View()
	assert.Contains(t, view, "Base Amount:")
	assert.Contains(t, view, "₹1,000.00")
	assert.Contains(t, view, "GST (18%):")
	assert.Contains(t, view, "₹180.00")
	assert.Contains(t, view, "₹1,180.00")
}

func TestModel_AmountRejectsLetters(t *testing.T) {
	m := createTestModel(t)

	m = typeText(t, m, "12a3")

	assert.Equal(t, "123", m.amountInput.Value())
	assert.Equal(t, "123", m.sess.Amount())
}

func TestModel_CalculateRecordsAndClearsNote(t *testing.T) {
	m := createTestModel(t)

	m = typeText(t, m, "1180")
	m = press(t, m, keyTab, keyTab, keyTab)
	require.Equal(t, FieldNote, m.focus)
	m = typeText(t, m, "Office chair")
	m = press(t, m, keyCtrlT)
	require.True(t, m.sess.Inclusive())

	m = press(t, m, keyEnter)
	m = drainEvents(t, m)

	records := m.history.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Office chair", records[0].Note)
	assert.True(t, records[0].BaseAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, records[0].GSTAmount.Equal(decimal.NewFromInt(180)))
	assert.True(t, records[0].Inclusive)

	assert.Empty(t, m.noteInput.Value())
	assert.Empty(t, m.sess.Note())
	assert.Equal(t, "1180", m.amountInput.Value())
	assert.Equal(t, model.Rate18, m.sess.Rate())
	assert.True(t, m.sess.Inclusive())
	assert.Contains(t, m.View(), "Recorded ₹1,180.00 total at 18% GST")
}

func TestModel_CalculateWithoutAmountDoesNothing(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{name: "empty", amount: ""},
		{name: "separators only", amount: ",,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := createTestModel(t)
			m = typeText(t, m, tt.amount)

			m = press(t, m, keyEnter)

			assert.Empty(t, m.events)
			assert.Empty(t, m.history.Records())
			assert.Empty(t, m.status)
			assert.NoError(t, m.lastError)
		})
	}
}

func TestModel_FocusCycle(t *testing.T) {
	m := createTestModel(t)

	m = press(t, m, keyTab)
	assert.Equal(t, FieldRate, m.focus)
	m = press(t, m, keyTab, keyTab, keyTab)
	assert.Equal(t, FieldAmount, m.focus)
	m = press(t, m, keyShiftTab)
	assert.Equal(t, FieldNote, m.focus)
	assert.True(t, m.noteInput.Focused())
	assert.False(t, m.amountInput.Focused())
}

func TestModel_RateSelection(t *testing.T) {
	m := createTestModel(t)
	m = press(t, m, keyTab)

	tests := []struct {
		key  tea.KeyMsg
		want model.Rate
	}{
		{key: keyRight, want: model.Rate28},
		{key: keyRight, want: model.Rate5},
		{key: keyLeft, want: model.Rate28},
		{key: runeKey('2'), want: model.Rate12},
		{key: runeKey('1'), want: model.Rate5},
		{key: runeKey('3'), want: model.Rate18},
	}

	for _, tt := range tests {
		m = press(t, m, tt.key)
		assert.Equal(t, tt.want, m.sess.Rate(), "after %s", tt.key.String())
	}
}

func TestModel_DigitsGoToAmountWhenTyping(t *testing.T) {
	m := createTestModel(t)

	m = typeText(t, m, "4")

	assert.Equal(t, model.Rate18, m.sess.Rate())
	assert.Equal(t, "4", m.sess.Amount())
}

func TestModel_RateChangeUpdatesPreview(t *testing.T) {
	m := createTestModel(t)
	m = typeText(t, m, "100")
	m = press(t, m, keyTab, runeKey('4'))

	view := m.View()
	assert.Contains(t, view, "GST (28%):")
	assert.Contains(t, view, "₹128.00")
}

func TestModel_ModeToggle(t *testing.T) {
	m := createTestModel(t)
	m = press(t, m, keyTab, keyTab)
	require.Equal(t, FieldMode, m.focus)

	m = press(t, m, keySpace)
	assert.True(t, m.sess.Inclusive())

	m = press(t, m, keyRight)
	assert.False(t, m.sess.Inclusive())

	m = press(t, m, keyCtrlT)
	assert.True(t, m.sess.Inclusive())
}

func TestModel_HistoryView(t *testing.T) {
	m := createTestModel(t)

	m = typeText(t, m, "100")
	m = press(t, m, keyEnter)
	m = typeText(t, m, "0")
	m = press(t, m, keyEnter)
	m = drainEvents(t, m)

	m = press(t, m, keyCtrlR)
	require.Equal(t, StateHistory, m.state)

	records := m.history.Records()
	require.Len(t, records, 2)
	assert.True(t, records[0].BaseAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, records[1].BaseAmount.Equal(decimal.NewFromInt(100)))

	view := m.View()
	assert.Contains(t, view, "Calculation History")
	assert.Contains(t, view, "(2)")
	assert.Contains(t, view, "₹1,180.00")
	assert.Contains(t, view, "₹118.00")

	m = press(t, m, runeKey('h'))
	assert.Equal(t, StateCalculator, m.state)
	assert.True(t, m.amountInput.Focused())
}

func TestModel_ClearHistory(t *testing.T) {
	m := createTestModel(t)
	m = typeText(t, m, "500")
	m = press(t, m, keyEnter, keyEnter)
	m = drainEvents(t, m)
	require.Len(t, m.history.Records(), 2)

	m = press(t, m, keyCtrlR, runeKey('x'))
	m = drainEvents(t, m)

	assert.Empty(t, m.history.Records())
	view := m.View()
	assert.Contains(t, view, "No calculations yet")
	assert.Contains(t, view, "History cleared")

	m = press(t, m, runeKey('x'))
	assert.Empty(t, m.events)
}

func TestModel_HelpOverlay(t *testing.T) {
	m := createTestModel(t)

	m = press(t, m, runeKey('?'))
	require.True(t, m.showHelp)

	view := m.View()
	assert.Contains(t, view, "How to use the GST Calculator")
	for i, step := range usageSteps {
		assert.Contains(t, view, fmt.Sprintf("%d. %s", i+1, step))
	}
	assert.Empty(t, m.sess.Amount())

	m, cmd := update(t, m, keyEsc)
	assert.False(t, m.showHelp)
	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
}

func TestModel_NoteAcceptsShortcutRunes(t *testing.T) {
	m := createTestModel(t)
	m = press(t, m, keyShiftTab)
	require.Equal(t, FieldNote, m.focus)

	m = typeText(t, m, "h?x1")

	assert.Equal(t, "h?x1", m.sess.Note())
	assert.Equal(t, StateCalculator, m.state)
	assert.False(t, m.showHelp)
	assert.Equal(t, model.Rate18, m.sess.Rate())
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyEsc, keyCtrlC} {
		t.Run(k.String(), func(t *testing.T) {
			m := createTestModel(t)

			m, cmd := update(t, m, k)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.quitting)
			assert.Empty(t, m.View())

			msg := listenForLedgerEvents(m.events, m.done)()
			assert.IsType(t, ledgerClosedMsg{}, msg)
		})
	}
}

func TestModel_ObservesExternalAppends(t *testing.T) {
	m := createTestModel(t)
	cmd := m.Init()
	require.NotNil(t, cmd)

	m.sess.SetAmount("2000")
	_, ok, err := m.sess.Calculate(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	msg := listenForLedgerEvents(m.events, m.done)()
	changed, isChanged := msg.(ledgerChangedMsg)
	require.True(t, isChanged)
	assert.Equal(t, 1, changed.event.Len)

	m, next := update(t, m, changed)
	assert.NotNil(t, next)
	require.Len(t, m.history.Records(), 1)
	assert.True(t, m.history.Records()[0].Total.Equal(decimal.NewFromInt(2360)))
}

func TestModel_NarrowLayout(t *testing.T) {
	m := createTestModel(t)
	m = typeText(t, m, "100")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 30})

	assert.Equal(t, 50, m.width)
	view := m.View()
	assert.Contains(t, view, "Amount (₹)")
	assert.Contains(t, view, "Total Amount:")
}
