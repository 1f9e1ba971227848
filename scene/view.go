package scene

import (
	"github.com/milk9111/rocketrun/common"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/ecs/system"
)

// View is a read-only copy of everything a renderer needs for one frame.
type View struct {
	Tick     uint64
	Viewport common.Size
	Phase    component.Phase
	GameOver bool
	Victory  bool

	Avatar     AvatarView
	Patrollers []PatrollerView
	Exit       ExitView
	// Slots holds one entry per health indicator; true means filled.
	Slots []bool
}

type AvatarView struct {
	Box          common.Rect
	Health       int
	MaxHealth    int
	Invulnerable bool
	Dead         bool
	Visible      bool
	Walking      bool
}

type PatrollerView struct {
	Box  common.Rect
	Axis component.Axis
	// Facing is the current direction of travel, +1 or -1.
	Facing int
}

type ExitView struct {
	Box   common.Rect
	Phase component.ExitPhase
}

// View snapshots the session. It is safe to keep the result after further
// ticks.
func (s *Session) View() View {
	w := s.world
	v := View{
		Tick:     w.Tick(),
		Viewport: s.tuning.ViewportSize(),
	}

	if gs, ok := ecs.Get(w, s.scene.State, component.GameStateComponent.Kind()); ok {
		v.Phase = gs.Phase
		v.GameOver = gs.GameOver
		v.Victory = gs.Victory
	}

	av := &v.Avatar
	av.Box, _ = system.BoxOf(w, s.scene.Avatar)
	av.Visible = true
	if a, ok := ecs.Get(w, s.scene.Avatar, component.AvatarComponent.Kind()); ok {
		av.Visible = !a.EnteredExit
		av.Walking = a.Walking
	}
	if h, ok := ecs.Get(w, s.scene.Avatar, component.HealthComponent.Kind()); ok {
		av.Health = h.Current
		av.MaxHealth = h.Initial
		av.Dead = !h.Alive()
	}
	av.Invulnerable = ecs.Has(w, s.scene.Avatar, component.InvulnerableComponent.Kind())

	for _, e := range s.scene.Patrollers {
		p, ok := ecs.Get(w, e, component.PatrollerComponent.Kind())
		if !ok {
			continue
		}
		box, _ := system.BoxOf(w, e)
		v.Patrollers = append(v.Patrollers, PatrollerView{Box: box, Axis: p.Axis, Facing: p.Direction})
	}

	v.Exit.Box, _ = system.BoxOf(w, s.scene.Exit)
	if z, ok := ecs.Get(w, s.scene.Exit, component.ExitZoneComponent.Kind()); ok {
		v.Exit.Phase = z.Phase
	}

	for _, e := range s.scene.Slots {
		if slot, ok := ecs.Get(w, e, component.HealthSlotComponent.Kind()); ok {
			v.Slots = append(v.Slots, slot.Filled)
		}
	}
	return v
}
