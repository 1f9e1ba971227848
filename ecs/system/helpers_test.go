package system

import (
	"testing"

	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/ecs/entity"
	"github.com/milk9111/rocketrun/input"
	"github.com/milk9111/rocketrun/prefabs"
)

type fakeSampler struct {
	snap input.Snapshot
}

func (f *fakeSampler) Sample() input.Snapshot { return f.snap }

func newTestScene(t *testing.T) (*ecs.World, *entity.Scene, *prefabs.Tuning) {
	t.Helper()
	tun := prefabs.DefaultTuning()
	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, &tun)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	return w, scene, &tun
}

func drainSignals(w *ecs.World) []ecs.Signal {
	var out []ecs.Signal
	for _, evt := range w.Events().Drain() {
		out = append(out, ecs.Signal(evt.Type))
	}
	return out
}

func countSignal(sigs []ecs.Signal, want ecs.Signal) int {
	n := 0
	for _, s := range sigs {
		if s == want {
			n++
		}
	}
	return n
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %v missing %s", e, kind.Name())
	}
	return v
}

func moveTo(t *testing.T, w *ecs.World, e, target ecs.Entity) {
	t.Helper()
	dst := mustGet(t, w, target, component.TransformComponent.Kind())
	mustGet(t, w, e, component.TransformComponent.Kind()).Position = dst.Position
}

func runTicks(w *ecs.World, s *ecs.Scheduler, n int) []ecs.Signal {
	var out []ecs.Signal
	for i := 0; i < n; i++ {
		s.Update(w)
		out = append(out, drainSignals(w)...)
	}
	return out
}
