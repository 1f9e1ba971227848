package system

import (
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
)

// DeferredSystem fires scheduled one-shot transitions whose tick has come.
type DeferredSystem struct {
	delays Delays
}

func NewDeferredSystem(delays Delays) *DeferredSystem {
	return &DeferredSystem{delays: delays}
}

func (s *DeferredSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Tick()
	for _, d := range w.Deferred().PopDue(now) {
		switch d.Kind {
		case ecs.DeferredInvulnerabilityEnd:
			ecs.Remove(w, d.Entity, component.InvulnerableComponent.Kind())
		case ecs.DeferredExitPhase2:
			if _, zone, ok := exitEntity(w); ok {
				zone.Phase = component.ExitLaunched
			}
			w.Emit(ecs.SignalExitPhase2)
			w.Deferred().Schedule(ecs.DeferredRestart, now+s.delays.ExitRestart, d.Entity)
		case ecs.DeferredRestart:
			if gs, ok := gameState(w); ok {
				gs.Phase = component.PhaseTerminal
				gs.EnteredAt = now
			}
			w.Emit(ecs.SignalRestartRequested)
		}
	}
}
