package system

import (
	"log/slog"

	"github.com/milk9111/rocketrun/common"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
)

// PatrolSystem bounces every patroller along its axis, regardless of game
// state.
type PatrolSystem struct {
	viewport common.Size
	scripts  map[string]*PatrolScript
	failed   map[string]bool
	logger   *slog.Logger
}

func NewPatrolSystem(viewport common.Size, logger *slog.Logger) *PatrolSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &PatrolSystem{
		viewport: viewport,
		scripts:  map[string]*PatrolScript{},
		failed:   map[string]bool{},
		logger:   logger,
	}
}

// Use registers a compiled rule for patrollers whose Script matches name.
func (s *PatrolSystem) Use(name string, script *PatrolScript) {
	if name == "" || script == nil {
		return
	}
	s.scripts[name] = script
}

// PatrolStep advances one coordinate of a patroller. The position moves
// first; the direction flips only after the new position crosses a bound.
func PatrolStep(pos float64, dir int, step, limit float64) (float64, int) {
	pos += float64(dir) * step
	if pos > limit {
		dir = -1
	} else if pos < 0 {
		dir = 1
	}
	return pos, dir
}

func (s *PatrolSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.PatrollerComponent.Kind(), component.TransformComponent.Kind(), component.SizeComponent.Kind(), func(e ecs.Entity, p *component.Patroller, t *component.Transform, size *component.Size) {
		pos, limit := t.Position.Y, s.viewport.H-size.H
		if p.Axis == component.AxisHorizontal {
			pos, limit = t.Position.X, s.viewport.W-size.W
		}
		if p.Direction == 0 {
			p.Direction = 1
		}

		next, dir := s.step(p, pos, limit)
		p.Direction = dir
		if p.Axis == component.AxisHorizontal {
			t.Position.X = next
		} else {
			t.Position.Y = next
		}
	})
}

func (s *PatrolSystem) step(p *component.Patroller, pos, limit float64) (float64, int) {
	script := s.scripts[p.Script]
	if script == nil || s.failed[p.Script] {
		return PatrolStep(pos, p.Direction, p.Step, limit)
	}
	next, dir, err := script.Step(pos, p.Direction, p.Step, limit)
	if err != nil {
		s.failed[p.Script] = true
		s.logger.Warn("patrol script disabled", "script", p.Script, "err", err)
		return PatrolStep(pos, p.Direction, p.Step, limit)
	}
	return next, dir
}
