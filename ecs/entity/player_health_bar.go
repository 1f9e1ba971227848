package entity

import (
	"fmt"

	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
)

// NewHealthSlots creates one indicator slot per initial hit point of the
// avatar.
func NewHealthSlots(w *ecs.World) ([]ecs.Entity, error) {
	player, ok := ecs.First(w, component.AvatarComponent.Kind())
	if !ok {
		return nil, nil
	}

	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || health == nil || health.Initial <= 0 {
		return nil, nil
	}

	slots := make([]ecs.Entity, 0, health.Initial)
	for i := 0; i < health.Initial; i++ {
		e := ecs.CreateEntity(w)
		slot := &component.HealthSlot{Slot: i, Filled: i < health.Current}
		if err := ecs.Add(w, e, component.HealthSlotComponent.Kind(), slot); err != nil {
			return nil, fmt.Errorf("health bar: add slot %d: %w", i, err)
		}
		slots = append(slots, e)
	}
	return slots, nil
}
