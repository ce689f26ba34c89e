package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Form navigation
	NextField key.Binding
	PrevField key.Binding
	RatePrev  key.Binding
	RateNext  key.Binding
	RatePick  key.Binding

	// Actions
	Calculate  key.Binding
	ToggleMode key.Binding
	SelectMode key.Binding
	Clear      key.Binding

	// History navigation
	Up   key.Binding
	Down key.Binding

	// Views
	ToggleHistory key.Binding
	BackToForm    key.Binding
	ToggleHelp    key.Binding

	// Application
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("Tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("Shift+Tab", "previous field"),
		),
		RatePrev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "lower rate"),
		),
		RateNext: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "higher rate"),
		),
		RatePick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "pick rate"),
		),

		Calculate: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("Enter", "calculate"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("Ctrl+T", "inclusive/exclusive"),
		),
		SelectMode: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "toggle type"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x", "x"),
			key.WithHelp("x", "clear history"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),

		ToggleHistory: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "history"),
		),
		BackToForm: key.NewBinding(
			key.WithKeys("h", "tab", "ctrl+r"),
			key.WithHelp("h/Tab", "calculator"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("Esc", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.calculatorHelp()
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.RatePrev, k.RateNext, k.RatePick},
		{k.Calculate, k.ToggleMode, k.SelectMode},
		{k.ToggleHistory, k.BackToForm, k.Up, k.Down, k.Clear},
		{k.ToggleHelp, k.Quit},
	}
}

func (k KeyMap) calculatorHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Calculate, k.ToggleMode, k.ToggleHistory, k.ToggleHelp, k.Quit}
}

func (k KeyMap) historyHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.BackToForm, k.ToggleHelp, k.Quit}
}
