package history

import (
	"sync"

	"bankee/internal/services/ledger"
)

// Feed fans committed ledger events out to live subscribers. Each subscriber
// owns one buffered channel and must call its release function when the
// owning view goes away, otherwise the subscription leaks.
type Feed struct {
	mu     sync.RWMutex
	nextID int
	subs   map[uint]map[int]chan ledger.Event
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[uint]map[int]chan ledger.Event)}
}

// subscriberBuffer absorbs short bursts; a subscriber that falls further
// behind loses events rather than blocking the publisher.
const subscriberBuffer = 16

// Subscribe registers a listener for one account's committed changes.
// The returned release function closes the channel and removes the listener.
func (f *Feed) Subscribe(userID uint) (<-chan ledger.Event, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := f.nextID
	ch := make(chan ledger.Event, subscriberBuffer)
	if f.subs[userID] == nil {
		f.subs[userID] = make(map[int]chan ledger.Event)
	}
	f.subs[userID][id] = ch

	release := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if listeners, ok := f.subs[userID]; ok {
			if c, ok := listeners[id]; ok {
				delete(listeners, id)
				close(c)
			}
			if len(listeners) == 0 {
				delete(f.subs, userID)
			}
		}
	}
	return ch, release
}

// Publish delivers an event to the account's listeners without blocking.
func (f *Feed) Publish(event ledger.Event) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, ch := range f.subs[event.UserID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribers reports the number of live listeners for an account.
func (f *Feed) Subscribers(userID uint) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs[userID])
}
