package system

import (
	"github.com/milk9111/rocketrun/common"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
)

// AvatarMotionSystem displaces the avatar by its speed along each held axis.
// Diagonal movement is not normalized. The box is clamped into the viewport
// every tick, held keys or not.
type AvatarMotionSystem struct {
	viewport common.Size
}

func NewAvatarMotionSystem(viewport common.Size) *AvatarMotionSystem {
	return &AvatarMotionSystem{viewport: viewport}
}

func (s *AvatarMotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	gs, ok := gameState(w)
	if !ok || !gs.Active() {
		return
	}
	e, avatar, ok := avatarEntity(w)
	if !ok || avatar.EnteredExit {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	size, ok := ecs.Get(w, e, component.SizeComponent.Kind())
	if !ok {
		return
	}
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())

	pos := t.Position
	if in.Moving() {
		if in.Up {
			pos.Y -= avatar.Speed
		}
		if in.Down {
			pos.Y += avatar.Speed
		}
		if in.Left {
			pos.X -= avatar.Speed
		}
		if in.Right {
			pos.X += avatar.Speed
		}
	}
	t.Position = common.ClampInto(pos, common.Size{W: size.W, H: size.H}, s.viewport)

	switch moving := in.Moving(); {
	case moving && !avatar.Walking:
		avatar.Walking = true
		w.Emit(ecs.SignalWalkStart)
	case !moving && avatar.Walking:
		avatar.Walking = false
		w.Emit(ecs.SignalWalkStop)
	}
}
