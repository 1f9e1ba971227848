package system

import (
	"github.com/milk9111/rocketrun/common"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
)

// ExitSystem starts the launch sequence when the avatar stands on the exit
// with enter held. It ignores invulnerability and fires once per session.
type ExitSystem struct {
	launchTicks uint64
}

func NewExitSystem(launchTicks uint64) *ExitSystem {
	return &ExitSystem{launchTicks: launchTicks}
}

func (s *ExitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	gs, ok := gameState(w)
	if !ok || !gs.Active() {
		return
	}
	player, avatar, ok := avatarEntity(w)
	if !ok || avatar.EnteredExit {
		return
	}
	if health, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok && !health.Alive() {
		return
	}
	in, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok || !in.Enter {
		return
	}
	exit, zone, ok := exitEntity(w)
	if !ok {
		return
	}
	playerBox, ok := BoxOf(w, player)
	if !ok {
		return
	}
	exitBox, ok := BoxOf(w, exit)
	if !ok || !common.Intersects(playerBox, exitBox) {
		return
	}

	now := w.Tick()
	avatar.EnteredExit = true
	zone.Phase = component.ExitBoarding
	gs.Phase = component.PhaseEntering
	gs.Victory = true
	gs.EnteredAt = now
	w.Emit(ecs.SignalExitPhase1)
	w.Deferred().Schedule(ecs.DeferredExitPhase2, now+s.launchTicks, exit)
}
