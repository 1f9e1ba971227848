package scene

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/ecs/entity"
	"github.com/milk9111/rocketrun/ecs/system"
	"github.com/milk9111/rocketrun/input"
	"github.com/milk9111/rocketrun/prefabs"
)

// Config carries the collaborators of a session.
type Config struct {
	Tuning  *prefabs.Tuning
	Sampler input.Sampler
	Sink    SignalSink
	Logger  *slog.Logger
}

// Session is one play-through: a world built with the fixed layout, the
// ordered systems and the outbound signal sink. A session is discarded on
// restart and never reused.
type Session struct {
	tuning *prefabs.Tuning
	world  *ecs.World
	sched  *ecs.Scheduler
	scene  *entity.Scene
	sink   SignalSink
	logger *slog.Logger

	phase   component.Phase
	restart bool
	closed  bool
}

func New(cfg Config) (*Session, error) {
	t := cfg.Tuning
	if t == nil {
		d := prefabs.DefaultTuning()
		t = &d
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	w := ecs.NewWorld()
	sc, err := entity.BuildScene(w, t)
	if err != nil {
		return nil, fmt.Errorf("scene: build: %w", err)
	}
	sched, err := system.Pipeline(t, cfg.Sampler, logger)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	return &Session{
		tuning: t,
		world:  w,
		sched:  sched,
		scene:  sc,
		sink:   cfg.Sink,
		logger: logger,
		phase:  component.PhasePlaying,
	}, nil
}

// Tick advances the simulation one fixed step and forwards the signals it
// produced. A closed session ignores ticks.
func (s *Session) Tick() {
	if s == nil || s.closed {
		return
	}
	tick := s.world.Tick()
	s.sched.Update(s.world)

	for _, evt := range s.world.Events().Drain() {
		sig := ecs.Signal(evt.Type)
		switch sig {
		case ecs.SignalHit:
			s.logger.Debug("avatar hit", "tick", tick, "health", s.View().Avatar.Health)
		case ecs.SignalRestartRequested:
			s.restart = true
		}
		if s.sink != nil {
			s.sink.Emit(sig)
		}
	}

	if gs, ok := ecs.Get(s.world, s.scene.State, component.GameStateComponent.Kind()); ok && gs.Phase != s.phase {
		s.logger.Debug("phase changed", "tick", tick, "from", s.phase, "to", gs.Phase)
		s.phase = gs.Phase
	}
}

// RestartRequested reports whether the session has finished and asked to be
// replaced.
func (s *Session) RestartRequested() bool {
	return s != nil && s.restart
}

// Close cancels every pending delayed transition. Nothing fires after Close.
func (s *Session) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.world.Close()
}

func (s *Session) Closed() bool {
	return s == nil || s.closed
}

func (s *Session) Tuning() *prefabs.Tuning {
	return s.tuning
}

func (s *Session) Phase() component.Phase {
	return s.phase
}
