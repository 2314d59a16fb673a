package notify

import "sync"

// Bus fans change events out to subscribers. Publishing never blocks
// the mutating request: a subscriber that has fallen behind its buffer
// misses events rather than stalling writes.
type Bus struct {
	mu          sync.Mutex
	subscribers map[int]chan ChangeEvent
	nextID      int
}

// NewBus creates a new change-event bus
func NewBus() *Bus {
	return &Bus{subscribers: make(map[int]chan ChangeEvent)}
}

// Subscribe registers a subscriber. The returned cancel function stops
// delivery and closes the channel.
func (b *Bus) Subscribe() (<-chan ChangeEvent, func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	ch := make(chan ChangeEvent, 32)
	b.subscribers[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if existing, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(existing)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an event to all current subscribers
func (b *Bus) Publish(ev ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}
