package session

import (
	"crypto/rand"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDGenerator assigns record identifiers at creation time.
type IDGenerator interface {
	NewID(t time.Time) string
}

// ULIDGenerator generates ULIDs that sort in creation order, including
// several IDs created within the same millisecond or with a clock that
// steps backwards.
type ULIDGenerator struct {
	entropy *ulid.MonotonicEntropy
	lastMs  uint64
	mu      sync.Mutex
}

// NewULIDGenerator creates a generator backed by crypto/rand.
func NewULIDGenerator() *ULIDGenerator {
	return newULIDGenerator(rand.Reader, 0)
}

func newULIDGenerator(entropy io.Reader, inc uint64) *ULIDGenerator {
	return &ULIDGenerator{entropy: ulid.Monotonic(entropy, inc)}
}

// NewID returns a ULID for t. The timestamp never moves behind the previous
// ID's; when the entropy of a millisecond is used up the next millisecond
// is borrowed.
func (g *ULIDGenerator) NewID(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := max(ulid.Timestamp(t), g.lastMs)
	for {
		id, err := ulid.New(ms, g.entropy)
		if err == nil {
			g.lastMs = ms
			return id.String()
		}
		ms++
		if !errors.Is(err, ulid.ErrMonotonicOverflow) {
			// No entropy available; a later millisecond alone keeps the order.
			g.lastMs = ms
			return ulid.MustNew(ms, nil).String()
		}
	}
}
