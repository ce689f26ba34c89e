package ledger

import (
	"slices"
	"sync"

	"github.com/Veraticus/gstcalc/internal/model"
)

// EventKind identifies what changed in a ledger.
type EventKind int

const (
	EventAppended EventKind = iota
	EventCleared
)

func (k EventKind) String() string {
	switch k {
	case EventAppended:
		return "appended"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event describes one mutation of a ledger.
type Event struct {
	Record model.CalculationRecord // zero for EventCleared
	Kind   EventKind
	Len    int // records held after the mutation
}

// Notifier fans change events out to subscribers. The zero value is ready to use.
type Notifier struct {
	subscribers map[int]func(Event)
	mu          sync.Mutex
	nextID      int
}

// Subscribe registers fn and returns a function that removes it.
func (n *Notifier) Subscribe(fn func(Event)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subscribers == nil {
		n.subscribers = make(map[int]func(Event))
	}
	id := n.nextID
	n.nextID++
	n.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subscribers, id)
			n.mu.Unlock()
		})
	}
}

// Publish delivers ev to every subscriber in registration order.
// Subscribers are called without the lock held.
func (n *Notifier) Publish(ev Event) {
	n.mu.Lock()
	ids := make([]int, 0, len(n.subscribers))
	for id := range n.subscribers {
		ids = append(ids, id)
	}
	fns := make([]func(Event), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, n.subscribers[id])
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
