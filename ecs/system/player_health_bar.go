package system

import (
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
)

type HealthBarSystem struct{}

func NewHealthBarSystem() *HealthBarSystem { return &HealthBarSystem{} }

func (s *HealthBarSystem) Update(w *ecs.World) {
	player, _, ok := avatarEntity(w)
	if !ok {
		return
	}

	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || health == nil {
		return
	}

	current := min(max(health.Current, 0), health.Initial)
	ecs.ForEach(w, component.HealthSlotComponent.Kind(), func(e ecs.Entity, slot *component.HealthSlot) {
		slot.Filled = slot.Slot < current
	})
}
