package system

import (
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/input"
)

// InputSystem samples the key source once per tick and copies the snapshot
// onto every Input component.
type InputSystem struct {
	sampler input.Sampler
}

func NewInputSystem(sampler input.Sampler) *InputSystem {
	return &InputSystem{sampler: sampler}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var snap input.Snapshot
	if i.sampler != nil {
		snap = i.sampler.Sample()
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		in.Up = snap.Up
		in.Down = snap.Down
		in.Left = snap.Left
		in.Right = snap.Right
		in.Enter = snap.Enter
	})
}
