package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// Signal is a fire-and-forget notification emitted by the simulation for
// hosts (audio, lifecycle).
type Signal string

const (
	SignalHit              Signal = "hit"
	SignalWalkStart        Signal = "walk-start"
	SignalWalkStop         Signal = "walk-stop"
	SignalExitPhase1       Signal = "exit-phase1"
	SignalExitPhase2       Signal = "exit-phase2"
	SignalLoopStop         Signal = "loop-stop"
	SignalRestartRequested Signal = "restart-requested"
)

// Emit queues a signal for the host.
func (w *World) Emit(sig Signal) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: string(sig), Data: w.tick})
}

// EventQueue is a simple FIFO queue.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
