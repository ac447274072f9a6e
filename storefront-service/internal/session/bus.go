package session

import (
	"sync"
	"time"
)

type EventKind string

const (
	AuthChanged EventKind = "auth"
	CartChanged EventKind = "cart"
)

type Event struct {
	Kind EventKind `json:"kind"`
	// CartCount is set on CartChanged events.
	CartCount int `json:"cartCount,omitempty"`
}

// Publisher is the notify half of the bus, the only part flows need.
type Publisher interface {
	Publish(sid string, ev Event)
}

// Bus fans events out to the subscribers of one browser session. Delivery
// is last write wins: a subscriber that has not drained its channel only
// ever holds the newest event.
type Bus struct {
	mu     sync.Mutex
	subs   map[string]map[*subscriber]struct{}
	counts map[string]cartCount
	now    func() time.Time
}

type cartCount struct {
	n  int
	at time.Time
}

type subscriber struct {
	ch chan Event
}

func NewBus() *Bus {
	return &Bus{
		subs:   make(map[string]map[*subscriber]struct{}),
		counts: make(map[string]cartCount),
		now:    time.Now,
	}
}

// Subscribe registers for the events of sid. The returned func unsubscribes
// and closes the channel; it is safe to call more than once.
func (b *Bus) Subscribe(sid string) (<-chan Event, func()) {
	sub := &subscriber{ch: make(chan Event, 1)}
	b.mu.Lock()
	if b.subs[sid] == nil {
		b.subs[sid] = make(map[*subscriber]struct{})
	}
	b.subs[sid][sub] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[sid], sub)
			if len(b.subs[sid]) == 0 {
				delete(b.subs, sid)
			}
			b.mu.Unlock()
			close(sub.ch)
		})
	}
}

func (b *Bus) Publish(sid string, ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch ev.Kind {
	case CartChanged:
		b.counts[sid] = cartCount{n: ev.CartCount, at: b.now()}
	case AuthChanged:
		delete(b.counts, sid)
	}
	for sub := range b.subs[sid] {
		// Replace a pending event instead of blocking the publisher.
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- ev
	}
}

// CartCount is the last count published for sid and whether one was seen.
func (b *Bus) CartCount(sid string) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.counts[sid]
	return c.n, ok
}

// Forget drops what the bus remembers about sid. Open subscriptions stay.
func (b *Bus) Forget(sid string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.counts, sid)
}

// Prune drops the counts of sessions nobody listens to that were last
// published before before, and reports how many went.
func (b *Bus) Prune(before time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for sid, c := range b.counts {
		if len(b.subs[sid]) == 0 && c.at.Before(before) {
			delete(b.counts, sid)
			n++
		}
	}
	return n
}
