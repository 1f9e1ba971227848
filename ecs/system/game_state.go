package system

import (
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
)

// GameStateSystem moves the session into Dying once health is spent and
// settles the walk loop when play ends.
type GameStateSystem struct {
	deathRestartTicks uint64
}

func NewGameStateSystem(deathRestartTicks uint64) *GameStateSystem {
	return &GameStateSystem{deathRestartTicks: deathRestartTicks}
}

func (s *GameStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	gs, ok := gameState(w)
	if !ok {
		return
	}
	player, avatar, ok := avatarEntity(w)
	if !ok {
		return
	}

	now := w.Tick()
	if gs.Phase == component.PhasePlaying {
		if health, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok && !health.Alive() {
			gs.Phase = component.PhaseDying
			gs.GameOver = true
			gs.EnteredAt = now
			avatar.Walking = false
			// a dead avatar is no longer blinking
			if w.Deferred().Cancel(ecs.DeferredInvulnerabilityEnd) {
				ecs.Remove(w, player, component.InvulnerableComponent.Kind())
			}
			w.Emit(ecs.SignalLoopStop)
			w.Deferred().Schedule(ecs.DeferredRestart, now+s.deathRestartTicks, player)
			return
		}
	}

	if !gs.Active() && avatar.Walking {
		avatar.Walking = false
		w.Emit(ecs.SignalWalkStop)
	}
}
