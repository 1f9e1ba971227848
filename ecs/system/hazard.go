package system

import (
	"github.com/milk9111/rocketrun/common"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
)

// HazardSystem applies one point of damage on the first patroller overlap
// and arms the invulnerability window.
type HazardSystem struct {
	invulnerableTicks uint64
}

func NewHazardSystem(invulnerableTicks uint64) *HazardSystem {
	return &HazardSystem{invulnerableTicks: invulnerableTicks}
}

func (s *HazardSystem) Update(w *ecs.World) {
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
	if ecs.Has(w, player, component.InvulnerableComponent.Kind()) {
		return
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || !health.Alive() {
		return
	}
	playerBox, ok := BoxOf(w, player)
	if !ok {
		return
	}

	hit := false
	ecs.ForEach(w, component.PatrollerComponent.Kind(), func(e ecs.Entity, _ *component.Patroller) {
		if hit {
			return
		}
		if box, ok := BoxOf(w, e); ok && common.Intersects(playerBox, box) {
			hit = true
		}
	})
	if !hit {
		return
	}

	now := w.Tick()
	health.Current = max(0, health.Current-1)
	until := now + s.invulnerableTicks
	_ = ecs.Add(w, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Until: until})
	w.Emit(ecs.SignalHit)
	w.Deferred().Schedule(ecs.DeferredInvulnerabilityEnd, until, player)
}
