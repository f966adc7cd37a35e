// Package notify provides in-process change notification for
// conversation mutations. Views subscribe for updates instead of
// re-reading the store on a timer.
package notify

import "sync"

// Event signals that the conversation for MatchID changed.
type Event struct {
	MatchID int `json:"matchId"`
}

// Broadcaster fans out events to all current subscribers. Slow
// subscribers drop events rather than block publishers.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber. The returned cancel func must
// be called to release the subscription.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber with buffer space.
func (b *Broadcaster) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
