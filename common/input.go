package common

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// InputEventKind identifies a queued host input event.
type InputEventKind int

const (
	EventPointerMove InputEventKind = iota
	EventPointerDown
	EventPointerUp
	EventScroll
	EventResize
	EventKeyDown
)

// MouseButton identifies a pointer button reported by the host window.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// InputEvent is one host event captured between ticks.
// Pointer positions are already converted to normalized device coordinates.
// Delta is the raw wheel offset, positive when scrolling up.
type InputEvent struct {
	Kind   InputEventKind
	NDC    mgl32.Vec2
	Button MouseButton
	Delta  float32
	Width  int
	Height int
	Key    uint32
}

// EventQueue buffers host input events until the engine drains them between ticks.
// The zero value is ready to use.
type EventQueue struct {
	mu     sync.Mutex
	events []InputEvent
}

// Push appends an event.
func (q *EventQueue) Push(ev InputEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

// Drain returns every queued event in arrival order and empties the queue.
//
// Returns:
//   - []InputEvent: the queued events, nil when empty
func (q *EventQueue) Drain() []InputEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
