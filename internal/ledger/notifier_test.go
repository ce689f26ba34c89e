package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_OrderAndUnsubscribe(t *testing.T) {
	var n Notifier
	var calls []string

	unsubA := n.Subscribe(func(Event) { calls = append(calls, "a") })
	n.Subscribe(func(Event) { calls = append(calls, "b") })

	n.Publish(Event{Kind: EventCleared})
	assert.Equal(t, []string{"a", "b"}, calls)

	unsubA()
	unsubA() // second call is a no-op
	n.Publish(Event{Kind: EventCleared})
	assert.Equal(t, []string{"a", "b", "b"}, calls)
}

func TestNotifier_PublishWithoutSubscribers(t *testing.T) {
	var n Notifier
	assert.NotPanics(t, func() {
		n.Publish(Event{Kind: EventAppended})
	})
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "appended", EventAppended.String())
	assert.Equal(t, "cleared", EventCleared.String())
	assert.Equal(t, "unknown", EventKind(9).String())
}
