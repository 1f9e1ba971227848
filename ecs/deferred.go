package ecs

import "container/heap"

// DeferredKind names a one-shot delayed transition.
type DeferredKind string

const (
	DeferredInvulnerabilityEnd DeferredKind = "invulnerability-end"
	DeferredExitPhase2         DeferredKind = "exit-phase2"
	DeferredRestart            DeferredKind = "restart"
)

// Deferred is a scheduled event keyed by kind and fire tick.
type Deferred struct {
	Kind   DeferredKind
	At     uint64
	Entity Entity

	seq uint64
}

// DeferredQueue holds one-shot events ordered by fire tick. At most one event
// per kind is pending, so re-evaluating a trigger every tick cannot arm it twice.
type DeferredQueue struct {
	items   deferredHeap
	pending map[DeferredKind]struct{}
	seq     uint64
	closed  bool
}

// Schedule arms kind to fire at tick at. It reports false when the kind is
// already pending or the queue has been closed.
func (q *DeferredQueue) Schedule(kind DeferredKind, at uint64, e Entity) bool {
	if q == nil || q.closed {
		return false
	}
	if q.pending == nil {
		q.pending = make(map[DeferredKind]struct{})
	}
	if _, ok := q.pending[kind]; ok {
		return false
	}
	q.seq++
	heap.Push(&q.items, Deferred{Kind: kind, At: at, Entity: e, seq: q.seq})
	q.pending[kind] = struct{}{}
	return true
}

// Pending reports whether kind is armed.
func (q *DeferredQueue) Pending(kind DeferredKind) bool {
	if q == nil {
		return false
	}
	_, ok := q.pending[kind]
	return ok
}

// Cancel disarms kind.
func (q *DeferredQueue) Cancel(kind DeferredKind) bool {
	if !q.Pending(kind) {
		return false
	}
	for i, d := range q.items {
		if d.Kind == kind {
			heap.Remove(&q.items, i)
			break
		}
	}
	delete(q.pending, kind)
	return true
}

// PopDue removes and returns every event with At <= now, earliest first.
func (q *DeferredQueue) PopDue(now uint64) []Deferred {
	if q == nil || q.closed {
		return nil
	}
	var out []Deferred
	for len(q.items) > 0 && q.items[0].At <= now {
		d := heap.Pop(&q.items).(Deferred)
		delete(q.pending, d.Kind)
		out = append(out, d)
	}
	return out
}

// Len reports the number of pending events.
func (q *DeferredQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Close drops every pending event and refuses further scheduling.
func (q *DeferredQueue) Close() {
	if q == nil {
		return
	}
	q.items = nil
	q.pending = nil
	q.closed = true
}

// Closed reports whether Close has been called.
func (q *DeferredQueue) Closed() bool {
	return q != nil && q.closed
}

type deferredHeap []Deferred

func (h deferredHeap) Len() int { return len(h) }
func (h deferredHeap) Less(i, j int) bool {
	if h[i].At != h[j].At {
		return h[i].At < h[j].At
	}
	return h[i].seq < h[j].seq
}
func (h deferredHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *deferredHeap) Push(x any)   { *h = append(*h, x.(Deferred)) }
func (h *deferredHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
