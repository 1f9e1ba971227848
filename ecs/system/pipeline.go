package system

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/input"
	"github.com/milk9111/rocketrun/prefabs"
)

// DelaysFor converts the tuning delays into ticks.
func DelaysFor(t *prefabs.Tuning) Delays {
	return Delays{
		Invulnerable: t.InvulnerableTicks(),
		Launch:       t.LaunchTicks(),
		ExitRestart:  t.ExitRestartTicks(),
		DeathRestart: t.DeathRestartTicks(),
	}
}

// Pipeline assembles the per-tick systems in their fixed order. A configured
// patrol script is loaded and compiled up front so a broken script fails the
// session build instead of a tick.
func Pipeline(t *prefabs.Tuning, sampler input.Sampler, logger *slog.Logger) (*ecs.Scheduler, error) {
	if t == nil {
		return nil, fmt.Errorf("pipeline: nil tuning")
	}
	delays := DelaysFor(t)
	vp := t.ViewportSize()

	patrol := NewPatrolSystem(vp, logger)
	if name := t.Patroller.Script; name != "" {
		src, err := prefabs.LoadScript(name)
		if err != nil {
			return nil, fmt.Errorf("pipeline: load patrol script %s: %w", name, err)
		}
		script, err := CompilePatrolScript(name, src)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		patrol.Use(name, script)
	}

	return ecs.NewScheduler(
		NewDeferredSystem(delays),
		NewInputSystem(sampler),
		NewAvatarMotionSystem(vp),
		patrol,
		NewHazardSystem(delays.Invulnerable),
		NewExitSystem(delays.Launch),
		NewGameStateSystem(delays.DeathRestart),
		NewHealthBarSystem(),
	), nil
}
