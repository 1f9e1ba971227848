package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/prefabs"
)

// Scene lists the entities of the fixed layout.
type Scene struct {
	State      ecs.Entity
	Avatar     ecs.Entity
	Patrollers []ecs.Entity
	Exit       ecs.Entity
	Slots      []ecs.Entity
}

// PatrollerLayout returns the start position and axis of each patroller:
// two vertical patrollers at the thirds of the width and one horizontal
// patroller centered near the bottom.
func PatrollerLayout(t *prefabs.Tuning) []PatrollerPlacement {
	vp := t.ViewportSize()
	size := t.Patroller.Size()
	return []PatrollerPlacement{
		{Axis: component.AxisVertical, Position: cp.Vector{X: vp.W / 3, Y: 200}},
		{Axis: component.AxisVertical, Position: cp.Vector{X: 2 * vp.W / 3, Y: vp.H - size.H}},
		{Axis: component.AxisHorizontal, Position: cp.Vector{X: (vp.W - size.W) / 2, Y: vp.H - size.H - 100}},
	}
}

type PatrollerPlacement struct {
	Axis     component.Axis
	Position cp.Vector
}

// BuildScene populates w with the fixed layout.
func BuildScene(w *ecs.World, t *prefabs.Tuning) (*Scene, error) {
	if w == nil || t == nil {
		return nil, fmt.Errorf("scene: nil world or tuning")
	}
	var (
		s   Scene
		err error
	)
	if s.State, err = NewGameState(w); err != nil {
		return nil, err
	}
	if s.Avatar, err = NewAvatar(w, t); err != nil {
		return nil, err
	}
	for i, place := range PatrollerLayout(t) {
		e, err := NewPatroller(w, t, place.Axis, place.Position)
		if err != nil {
			return nil, fmt.Errorf("scene: patroller %d: %w", i, err)
		}
		s.Patrollers = append(s.Patrollers, e)
	}
	if s.Exit, err = NewExitZone(w, t); err != nil {
		return nil, err
	}
	if s.Slots, err = NewHealthSlots(w); err != nil {
		return nil, err
	}
	return &s, nil
}
