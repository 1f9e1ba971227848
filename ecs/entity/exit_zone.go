package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/prefabs"
)

// NewExitZone places the rocket against the right edge, vertically centered.
func NewExitZone(w *ecs.World, t *prefabs.Tuning) (ecs.Entity, error) {
	size := t.Exit.Size()
	vp := t.ViewportSize()

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ExitZoneComponent.Kind(), &component.ExitZone{}); err != nil {
		return 0, fmt.Errorf("exit zone: add exit: %w", err)
	}
	pos := cp.Vector{X: vp.W - size.W - t.Exit.Margin, Y: (vp.H - size.H) / 2}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("exit zone: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{W: size.W, H: size.H}); err != nil {
		return 0, fmt.Errorf("exit zone: add size: %w", err)
	}
	return e, nil
}
