package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_LastWriteWins(t *testing.T) {
	bus := NewBus()
	events, unsubscribe := bus.Subscribe("s1")
	defer unsubscribe()

	bus.Publish("s1", Event{Kind: CartChanged, CartCount: 1})
	bus.Publish("s1", Event{Kind: CartChanged, CartCount: 2})
	bus.Publish("s1", Event{Kind: CartChanged, CartCount: 5})

	assert.Equal(t, Event{Kind: CartChanged, CartCount: 5}, <-events)
	select {
	case ev := <-events:
		t.Fatalf("unexpected extra event %+v", ev)
	default:
	}
}

func TestBus_SessionsAreIsolated(t *testing.T) {
	bus := NewBus()
	a, unsubA := bus.Subscribe("a")
	defer unsubA()
	b, unsubB := bus.Subscribe("b")
	defer unsubB()

	bus.Publish("a", Event{Kind: AuthChanged})

	assert.Equal(t, AuthChanged, (<-a).Kind)
	assert.Len(t, b, 0)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	events, unsubscribe := bus.Subscribe("s1")
	unsubscribe()
	unsubscribe()

	_, open := <-events
	assert.False(t, open)
	assert.NotPanics(t, func() { bus.Publish("s1", Event{Kind: AuthChanged}) })
}

func TestBus_CartCount(t *testing.T) {
	bus := NewBus()

	_, ok := bus.CartCount("s1")
	assert.False(t, ok)

	bus.Publish("s1", Event{Kind: CartChanged, CartCount: 3})
	n, ok := bus.CartCount("s1")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	bus.Publish("s1", Event{Kind: CartChanged})
	n, ok = bus.CartCount("s1")
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	bus.Publish("s1", Event{Kind: AuthChanged})
	_, ok = bus.CartCount("s1")
	assert.False(t, ok)
}

func TestBus_Prune(t *testing.T) {
	bus := NewBus()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	bus.now = func() time.Time { return now }

	bus.Publish("idle", Event{Kind: CartChanged, CartCount: 1})
	bus.Publish("listening", Event{Kind: CartChanged, CartCount: 2})
	_, unsubscribe := bus.Subscribe("listening")
	defer unsubscribe()
	now = now.Add(time.Hour)
	bus.Publish("recent", Event{Kind: CartChanged, CartCount: 3})

	assert.Equal(t, 1, bus.Prune(now.Add(-time.Minute)))

	_, ok := bus.CartCount("idle")
	assert.False(t, ok)
	n, ok := bus.CartCount("listening")
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	_, ok = bus.CartCount("recent")
	assert.True(t, ok)

	bus.Forget("recent")
	_, ok = bus.CartCount("recent")
	assert.False(t, ok)
}
