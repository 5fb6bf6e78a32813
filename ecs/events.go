package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// PointerEventKind identifies page pointer transitions.
type PointerEventKind string

const (
	PointerEnter PointerEventKind = "pointer_enter"
	PointerLeave PointerEventKind = "pointer_leave"
)

// PointerEvent is emitted when the pointer crosses a tracked element's bounds.
type PointerEvent struct {
	Entity Entity
	Kind   PointerEventKind
}

// EventQueue is a simple FIFO queue flushed at the end of each frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns queued events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
