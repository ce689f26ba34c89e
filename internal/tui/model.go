package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/gstcalc/internal/common"
	"github.com/Veraticus/gstcalc/internal/format"
	"github.com/Veraticus/gstcalc/internal/ledger"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/Veraticus/gstcalc/internal/session"
	"github.com/Veraticus/gstcalc/internal/tui/components"
	"github.com/Veraticus/gstcalc/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// storeTimeout bounds each ledger call made from the update loop.
	storeTimeout = 5 * time.Second

	// eventBuffer is the number of ledger events queued for the UI.
	eventBuffer = 16

	noteCharLimit = 100
)

// State represents the current state of the TUI.
type State int

const (
	StateCalculator State = iota
	StateHistory
)

// Field identifies a focusable element of the calculator form.
type Field int

const (
	FieldAmount Field = iota
	FieldRate
	FieldMode
	FieldNote
	fieldCount
)

// Model holds the main TUI state.
type Model struct {
	ctx         context.Context
	theme       themes.Theme
	lastError   error
	sess        *session.Session
	events      chan ledger.Event
	done        chan struct{}
	shutdown    func()
	help        help.Model
	config      Config
	keymap      KeyMap
	status      string
	amountInput textinput.Model
	noteInput   textinput.Model
	result      components.ResultPanelModel
	history     components.HistoryListModel
	height      int
	width       int
	state       State
	focus       Field
	showHelp    bool
	quitting    bool
}

// newModel creates a new model bound to sess. The model subscribes to the
// session's ledger; call shutdown to release the subscription.
func newModel(ctx context.Context, sess *session.Session, cfg Config) Model {
	amount := textinput.New()
	amount.Prompt = format.RupeeSymbol + " "
	amount.Placeholder = "Enter amount"
	amount.CharLimit = 20
	amount.SetValue(sess.Amount())

	note := textinput.New()
	note.Prompt = "  "
	note.Placeholder = "Add a note"
	note.CharLimit = noteCharLimit
	note.SetValue(sess.Note())

	events := make(chan ledger.Event, eventBuffer)
	done := make(chan struct{})
	unsubscribe := sess.Subscribe(func(e ledger.Event) {
		select {
		case events <- e:
		default:
			slog.Debug("dropped ledger event", "kind", e.Kind.String())
		}
	})

	m := Model{
		ctx:         ctx,
		theme:       cfg.Theme,
		sess:        sess,
		events:      events,
		done:        done,
		config:      cfg,
		keymap:      DefaultKeyMap(),
		help:        help.New(),
		amountInput: amount,
		noteInput:   note,
		result:      components.NewResultPanelModel(cfg.Theme),
		history:     components.NewHistoryListModel(cfg.Theme),
		state:       StateCalculator,
		width:       cfg.Width,
		height:      cfg.Height,
	}
	m.shutdown = sync.OnceFunc(func() {
		unsubscribe()
		close(done)
	})

	m.setFocus(FieldAmount)
	m.handleResize()
	m.refreshPreview()
	m.refreshHistory()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, listenForLedgerEvents(m.events, m.done))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case ledgerChangedMsg:
		m.refreshHistory()
		return m, listenForLedgerEvents(m.events, m.done)

	case ledgerClosedMsg:
		return m, nil
	}

	return m.updateInputs(msg)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// handleKey routes a key press to the global handlers, then the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if msg.String() == "esc" && m.showHelp {
			m.showHelp = false
			return m, nil
		}
		m.quitting = true
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToggleHelp) && !m.typingText():
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.state == StateHistory {
		return m.handleHistoryKeys(msg)
	}
	return m.handleCalculatorKeys(msg)
}

func (m Model) handleCalculatorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ToggleHistory),
		msg.String() == "h" && !m.typing():
		m.state = StateHistory
		m.blurAll()
		return m, nil

	case key.Matches(msg, m.keymap.Calculate):
		m.calculate()
		return m, nil

	case key.Matches(msg, m.keymap.NextField):
		return m, m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keymap.PrevField):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keymap.ToggleMode),
		m.focus == FieldMode && key.Matches(msg, m.keymap.SelectMode):
		m.sess.ToggleInclusive()
		m.refreshPreview()
		return m, nil
	}

	if m.focus == FieldRate || m.focus == FieldMode {
		switch {
		case m.focus == FieldRate && key.Matches(msg, m.keymap.RatePrev):
			m.sess.PrevRate()
		case m.focus == FieldRate && key.Matches(msg, m.keymap.RateNext):
			m.sess.NextRate()
		case m.focus == FieldMode && key.Matches(msg, m.keymap.RatePrev, m.keymap.RateNext):
			m.sess.ToggleInclusive()
		case key.Matches(msg, m.keymap.RatePick):
			idx := int(msg.Runes[0] - '1')
			if err := m.sess.SetRate(model.Rates[idx]); err != nil {
				m.lastError = err
			}
		default:
			return m, nil
		}
		m.refreshPreview()
		return m, nil
	}

	if m.focus == FieldAmount && !amountKeyAllowed(msg) {
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.BackToForm):
		m.state = StateCalculator
		return m, m.setFocus(m.focus)

	case key.Matches(msg, m.keymap.Clear):
		m.clearHistory()
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// updateInputs forwards msg to the focused text input and syncs its value
// into the session.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FieldAmount:
		m.amountInput, cmd = m.amountInput.Update(msg)
		if m.amountInput.Value() != m.sess.Amount() {
			m.sess.SetAmount(m.amountInput.Value())
			m.refreshPreview()
		}
	case FieldNote:
		m.noteInput, cmd = m.noteInput.Update(msg)
		m.sess.SetNote(m.noteInput.Value())
	}
	return m, cmd
}

// calculate records the form. Empty or invalid amounts do nothing.
func (m *Model) calculate() {
	ctx, cancel := context.WithTimeout(m.ctx, storeTimeout)
	defer cancel()

	record, ok, err := m.sess.Calculate(ctx)
	if err != nil {
		m.setError(err)
		return
	}
	if !ok {
		return
	}

	m.noteInput.SetValue(m.sess.Note())
	m.lastError = nil
	m.status = fmt.Sprintf("Recorded %s total at %s GST", format.Currency(record.Total), format.Percent(record.Rate))
}

func (m *Model) clearHistory() {
	if len(m.history.Records()) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(m.ctx, storeTimeout)
	defer cancel()

	if err := m.sess.ClearHistory(ctx); err != nil {
		m.setError(err)
		return
	}
	m.lastError = nil
	m.status = "History cleared"
}

func (m *Model) refreshHistory() {
	ctx, cancel := context.WithTimeout(m.ctx, storeTimeout)
	defer cancel()

	records, err := m.sess.History(ctx)
	if err != nil {
		m.setError(err)
		return
	}
	m.history.SetRecords(records)
}

func (m *Model) refreshPreview() {
	b, ok := m.sess.Preview()
	m.result.SetBreakdown(b, m.sess.Rate(), ok)
}

func (m *Model) setError(err error) {
	m.lastError = err
	m.status = ""
	common.LogError(err, "ledger operation failed", common.Fields{"view": int(m.state)})
}

// setFocus moves focus to f and focuses the matching text input.
func (m *Model) setFocus(f Field) tea.Cmd {
	m.focus = f
	m.blurAll()
	switch f {
	case FieldAmount:
		return m.amountInput.Focus()
	case FieldNote:
		return m.noteInput.Focus()
	}
	return nil
}

func (m *Model) blurAll() {
	m.amountInput.Blur()
	m.noteInput.Blur()
}

// typing reports whether a text input has focus.
func (m Model) typing() bool {
	return m.state == StateCalculator && (m.focus == FieldAmount || m.focus == FieldNote)
}

// typingText reports whether free text is being entered.
func (m Model) typingText() bool {
	return m.state == StateCalculator && m.focus == FieldNote
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	m.help.Width = m.width
	m.amountInput.Width = max(min(m.width/2-8, 30), 10)
	m.noteInput.Width = max(min(m.width/2-8, 40), 10)

	if m.width >= wideLayout {
		m.result.Resize(m.width/2 - 8)
	} else {
		m.result.Resize(m.width - 8)
	}
	m.history.Resize(m.width-4, m.height-chromeHeight)
}

// amountKeyAllowed filters typed runes for the amount field.
func amountKeyAllowed(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return true
	}
	for _, r := range msg.Runes {
		if !strings.ContainsRune("0123456789.,", r) {
			return false
		}
	}
	return true
}
