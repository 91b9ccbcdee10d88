package platform

type Event interface{}

type QuitEvent struct{}
type Expose struct{}
type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type UnexpectedEvent struct{}

// EventQueue buffers events for backends that deliver input via callbacks.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

func (q *EventQueue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return e, true
}

func (q *EventQueue) Len() int {
	return len(q.events)
}
