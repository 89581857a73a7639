package events

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]Listener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds a listener for a specific event type
func (b *Bus) Subscribe(eventType EventType, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)

	// Sort by priority
	sort.Slice(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})

	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		// Remove by swapping with last and truncating
		listeners[i] = listeners[len(listeners)-1]
		b.listeners[eventType] = listeners[:len(listeners)-1]

		// Re-sort after removal
		sort.Slice(b.listeners[eventType], func(i, j int) bool {
			return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
		})

		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
		return
	}
}

// Emit sends an event to all registered listeners in priority order
func (b *Bus) Emit(event *Event) error {
	b.mu.RLock()
	listeners := make([]Listener, len(b.listeners[event.Type]))
	copy(listeners, b.listeners[event.Type])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// ListenerCount returns the number of listeners for an event type
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.listeners[eventType])
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]Listener)
}
