package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketrun/common"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/prefabs"
)

// NewAvatar places the avatar at its start column, vertically centered.
func NewAvatar(w *ecs.World, t *prefabs.Tuning) (ecs.Entity, error) {
	size := t.Avatar.Size()
	vp := t.ViewportSize()

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.AvatarComponent.Kind(), &component.Avatar{Speed: t.Speed}); err != nil {
		return 0, fmt.Errorf("avatar: add avatar: %w", err)
	}
	pos := common.ClampInto(cp.Vector{X: t.Avatar.StartX, Y: (vp.H - size.H) / 2}, size, vp)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("avatar: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{W: size.W, H: size.H}); err != nil {
		return 0, fmt.Errorf("avatar: add size: %w", err)
	}
	health := &component.Health{Initial: t.Avatar.MaxHealth, Current: t.Avatar.MaxHealth}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), health); err != nil {
		return 0, fmt.Errorf("avatar: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("avatar: add input: %w", err)
	}
	return e, nil
}
