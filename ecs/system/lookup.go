package system

import (
	"github.com/milk9111/rocketrun/common"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
)

func gameState(w *ecs.World) (*component.GameState, bool) {
	e, ok := ecs.First(w, component.GameStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.GameStateComponent.Kind())
}

func avatarEntity(w *ecs.World) (ecs.Entity, *component.Avatar, bool) {
	e, ok := ecs.First(w, component.AvatarComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	a, ok := ecs.Get(w, e, component.AvatarComponent.Kind())
	return e, a, ok
}

func exitEntity(w *ecs.World) (ecs.Entity, *component.ExitZone, bool) {
	e, ok := ecs.First(w, component.ExitZoneComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	z, ok := ecs.Get(w, e, component.ExitZoneComponent.Kind())
	return e, z, ok
}

// BoxOf returns the world box of an entity carrying Transform and Size.
func BoxOf(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	s, ok := ecs.Get(w, e, component.SizeComponent.Kind())
	if !ok || s.W <= 0 || s.H <= 0 {
		return common.Rect{}, false
	}
	return common.RectAt(t.Position, common.Size{W: s.W, H: s.H}), true
}

// Delays are the deferred transition lengths in ticks.
type Delays struct {
	Invulnerable uint64
	Launch       uint64
	ExitRestart  uint64
	DeathRestart uint64
}
