package ecs

import (
	"strconv"

	"github.com/milk9111/rocketrun/ecs/component"
)

// World owns entities, component stores, the signal queue, the deferred event
// queue and the tick counter. Systems are ordered by a Scheduler.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	names    map[component.ComponentID]string
	events   EventQueue
	deferred DeferredQueue
	tick     uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		names:  make(map[component.ComponentID]string),
	}
}

// Tick returns the number of completed ticks.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Advance marks the end of a tick.
func (w *World) Advance() {
	if w == nil {
		return
	}
	w.tick++
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Deferred returns the one-shot scheduled event queue.
func (w *World) Deferred() *DeferredQueue {
	if w == nil {
		return nil
	}
	return &w.deferred
}

// Close drops pending events and refuses any further scheduling. A closed
// world belongs to a session that has been replaced.
func (w *World) Close() {
	if w == nil {
		return
	}
	w.deferred.Close()
	w.events.flush()
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) componentName(id component.ComponentID) string {
	if name, ok := w.names[id]; ok && name != "" {
		return name
	}
	return "component#" + strconv.FormatUint(uint64(id), 10)
}
