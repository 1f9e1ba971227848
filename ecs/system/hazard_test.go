package system

import (
	"testing"

	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/input"
)

func newDamageScheduler(delays Delays, sampler input.Sampler) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewDeferredSystem(delays),
		NewInputSystem(sampler),
		NewHazardSystem(delays.Invulnerable),
		NewGameStateSystem(delays.DeathRestart),
		NewHealthBarSystem(),
	)
}

func TestHazardHitOncePerWindow(t *testing.T) {
	w, scene, tun := newTestScene(t)
	delays := DelaysFor(tun)
	sched := newDamageScheduler(delays, &fakeSampler{})
	moveTo(t, w, scene.Avatar, scene.Patrollers[0])

	sigs := runTicks(w, sched, 10)
	if n := countSignal(sigs, ecs.SignalHit); n != 1 {
		t.Fatalf("hits in first 10 ticks = %d, want 1", n)
	}
	health := mustGet(t, w, scene.Avatar, component.HealthComponent.Kind())
	if health.Current != 2 {
		t.Fatalf("health = %d, want 2", health.Current)
	}
	inv := mustGet(t, w, scene.Avatar, component.InvulnerableComponent.Kind())
	if inv.Until != delays.Invulnerable {
		t.Fatalf("invulnerable until %d, want %d", inv.Until, delays.Invulnerable)
	}

	// The window closes at tick 120; the next hit lands on that tick.
	sigs = runTicks(w, sched, int(delays.Invulnerable)-10)
	if n := countSignal(sigs, ecs.SignalHit); n != 0 {
		t.Fatalf("hit during invulnerability window")
	}
	sigs = runTicks(w, sched, 1)
	if n := countSignal(sigs, ecs.SignalHit); n != 1 {
		t.Fatalf("expected a hit once the window closed, got %v", sigs)
	}
	if health.Current != 1 {
		t.Fatalf("health = %d, want 1", health.Current)
	}
}

func TestHazardHitsSpacedAndMonotone(t *testing.T) {
	w, scene, tun := newTestScene(t)
	delays := DelaysFor(tun)
	sched := newDamageScheduler(delays, &fakeSampler{})
	moveTo(t, w, scene.Avatar, scene.Patrollers[0])
	health := mustGet(t, w, scene.Avatar, component.HealthComponent.Kind())

	var hitTicks []uint64
	last := health.Current
	for i := 0; i < 1000; i++ {
		tick := w.Tick()
		sched.Update(w)
		if countSignal(drainSignals(w), ecs.SignalHit) > 0 {
			hitTicks = append(hitTicks, tick)
		}
		if health.Current > last || health.Current < 0 {
			t.Fatalf("tick %d: health went from %d to %d", tick, last, health.Current)
		}
		last = health.Current
	}
	if len(hitTicks) != 3 {
		t.Fatalf("hits = %v, want 3", hitTicks)
	}
	for i := 1; i < len(hitTicks); i++ {
		if hitTicks[i]-hitTicks[i-1] < delays.Invulnerable {
			t.Fatalf("hits %d and %d only %d ticks apart", hitTicks[i-1], hitTicks[i], hitTicks[i]-hitTicks[i-1])
		}
	}
}

func TestHazardIgnored(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *ecs.World, avatar, state ecs.Entity)
	}{
		{"invulnerable", func(w *ecs.World, avatar, _ ecs.Entity) {
			_ = ecs.Add(w, avatar, component.InvulnerableComponent.Kind(), &component.Invulnerable{Until: 1 << 20})
		}},
		{"entered_exit", func(w *ecs.World, avatar, _ ecs.Entity) {
			a, _ := ecs.Get(w, avatar, component.AvatarComponent.Kind())
			a.EnteredExit = true
		}},
		{"not_playing", func(w *ecs.World, _, state ecs.Entity) {
			gs, _ := ecs.Get(w, state, component.GameStateComponent.Kind())
			gs.Phase = component.PhaseEntering
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, scene, tun := newTestScene(t)
			sched := newDamageScheduler(DelaysFor(tun), &fakeSampler{})
			moveTo(t, w, scene.Avatar, scene.Patrollers[1])
			tc.setup(w, scene.Avatar, scene.State)

			if n := countSignal(runTicks(w, sched, 30), ecs.SignalHit); n != 0 {
				t.Fatalf("got %d hits, want none", n)
			}
			if h := mustGet(t, w, scene.Avatar, component.HealthComponent.Kind()); h.Current != h.Initial {
				t.Fatalf("health changed to %d", h.Current)
			}
		})
	}
}

func TestHealthSlotsFollowHealth(t *testing.T) {
	w, scene, tun := newTestScene(t)
	sched := newDamageScheduler(DelaysFor(tun), &fakeSampler{})
	mustGet(t, w, scene.Avatar, component.HealthComponent.Kind()).Current = 1
	runTicks(w, sched, 1)

	if len(scene.Slots) != 3 {
		t.Fatalf("slots = %d, want 3", len(scene.Slots))
	}
	for _, e := range scene.Slots {
		slot := mustGet(t, w, e, component.HealthSlotComponent.Kind())
		if want := slot.Slot < 1; slot.Filled != want {
			t.Fatalf("slot %d filled = %v, want %v", slot.Slot, slot.Filled, want)
		}
	}
}
