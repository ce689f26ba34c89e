package tui

import (
	"github.com/Veraticus/gstcalc/internal/ledger"
	tea "github.com/charmbracelet/bubbletea"
)

// ledgerChangedMsg carries a ledger event into the update loop.
type ledgerChangedMsg struct {
	event ledger.Event
}

// ledgerClosedMsg is sent once the event subscription has been torn down.
type ledgerClosedMsg struct{}

// listenForLedgerEvents waits for the next ledger event. The model
// re-issues it after every ledgerChangedMsg.
func listenForLedgerEvents(events <-chan ledger.Event, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-events:
			return ledgerChangedMsg{event: e}
		case <-done:
			return ledgerClosedMsg{}
		}
	}
}
