package records

import (
	"log/slog"
	"sync"
	"time"
)

// Event is a refresh lifecycle notification. subscribers use these to
// show stale-data indicators and to re-render when fresher data lands.
type Event interface {
	event()
}

// RefreshStarted fires when a silent refresh begins for an identity.
// CachedAt carries the capture time of the data served meanwhile, nil
// when there was no cached record.
type RefreshStarted struct {
	Identity string
	CachedAt *time.Time
}

// RefreshEnded fires when a refresh attempt finishes, whatever the
// outcome. exactly one of the outcome flags describes it: Updated when
// fresh data replaced the cache, Aborted when the attempt was cancelled
// or superseded, Err when the fetch failed. all false means the portal
// returned nothing usable and the cache was left alone.
type RefreshEnded struct {
	Identity string
	Updated  bool
	Aborted  bool
	Err      bool
	Duration time.Duration
}

// DataUpdated fires whenever the cached record for an identity changes,
// including when it is cleared.
type DataUpdated struct {
	Identity string
}

func (RefreshStarted) event() {}
func (RefreshEnded) event()   {}
func (DataUpdated) event()    {}

// Broker fans events out to subscribers. publishing never blocks: a
// subscriber that stops draining its channel loses events rather than
// stalling the refresh path.
type Broker struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func NewBroker() *Broker {
	return &Broker{subs: map[int]chan Event{}}
}

// Subscribe registers a listener. the returned cancel func must be
// called when done, it closes the channel.
func (b *Broker) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, 64)
	b.subs[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
}

func (b *Broker) publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		select {
		case sub <- e:
		default:
			slog.Warn("dropping event, subscriber channel full", "event", e)
		}
	}
}
