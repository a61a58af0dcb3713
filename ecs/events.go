package ecs

import "github.com/Qu3tzal/sakura-no-hana/common"

// EventType tags a gameplay event.
type EventType uint8

const (
	EventNone EventType = iota
	// EventPlayerHit: a ball reached the player. No payload.
	EventPlayerHit
	// EventBallBurst: a petal destroyed a ball. Carries a BallBurst payload.
	EventBallBurst
	// EventDeath: an entity's life ran out. Carries the entity handle.
	EventDeath
)

// BallBurst is the payload of EventBallBurst: which color band the destroyed
// ball belonged to and where its sprite's center was.
type BallBurst struct {
	Color  Color
	Center common.Vec2
}

// Event is a tagged variant: exactly one payload field matches each type, the
// others stay zero. Ownership of the payload moves to whoever polls it.
type Event struct {
	Type  EventType
	Burst *BallBurst // EventBallBurst only
	Who   Entity     // EventDeath only
}

// EventQueue is a strictly ordered FIFO, filled by the systems that run
// before the drain phase and emptied once per tick.
type EventQueue struct {
	items []Event
}

// Push appends an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Poll removes and returns the head of the queue. The second return is false
// when the queue is empty.
func (q *EventQueue) Poll() (Event, bool) {
	if q == nil || len(q.items) == 0 {
		return Event{}, false
	}
	head := q.items[0]
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return head, true
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
