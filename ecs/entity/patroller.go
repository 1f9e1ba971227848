package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/prefabs"
)

func NewPatroller(w *ecs.World, t *prefabs.Tuning, axis component.Axis, pos cp.Vector) (ecs.Entity, error) {
	size := t.Patroller.Size()

	e := ecs.CreateEntity(w)
	p := &component.Patroller{
		Axis:      axis,
		Direction: 1,
		Step:      t.PatrolStep(),
		Script:    t.Patroller.Script,
	}
	if err := ecs.Add(w, e, component.PatrollerComponent.Kind(), p); err != nil {
		return 0, fmt.Errorf("patroller: add patroller: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("patroller: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{W: size.W, H: size.H}); err != nil {
		return 0, fmt.Errorf("patroller: add size: %w", err)
	}
	return e, nil
}
