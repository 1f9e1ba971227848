package system

import (
	"slices"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocketrun/common"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/input"
)

func TestAvatarMotion(t *testing.T) {
	tests := []struct {
		name  string
		keys  input.Snapshot
		ticks int
		start cp.Vector
		want  cp.Vector
	}{
		{"idle", input.Snapshot{}, 3, cp.Vector{X: 100, Y: 100}, cp.Vector{X: 100, Y: 100}},
		{"right", input.Snapshot{Right: true}, 1, cp.Vector{X: 100, Y: 100}, cp.Vector{X: 110, Y: 100}},
		{"diagonal_not_normalized", input.Snapshot{Up: true, Left: true}, 2, cp.Vector{X: 100, Y: 100}, cp.Vector{X: 80, Y: 80}},
		{"opposite_keys_cancel", input.Snapshot{Up: true, Down: true}, 4, cp.Vector{X: 100, Y: 100}, cp.Vector{X: 100, Y: 100}},
		{"clamped_left", input.Snapshot{Left: true}, 5, cp.Vector{X: 30, Y: 100}, cp.Vector{X: 0, Y: 100}},
		{"clamped_top", input.Snapshot{Up: true}, 5, cp.Vector{X: 100, Y: 12}, cp.Vector{X: 100, Y: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, scene, tun := newTestScene(t)
			sampler := &fakeSampler{snap: tc.keys}
			sched := ecs.NewScheduler(NewInputSystem(sampler), NewAvatarMotionSystem(tun.ViewportSize()))

			tr := mustGet(t, w, scene.Avatar, component.TransformComponent.Kind())
			tr.Position = tc.start
			runTicks(w, sched, tc.ticks)
			if tr.Position != tc.want {
				t.Fatalf("position = %v, want %v", tr.Position, tc.want)
			}
		})
	}
}

func TestAvatarStaysInViewport(t *testing.T) {
	w, scene, tun := newTestScene(t)
	sampler := &fakeSampler{}
	sched := ecs.NewScheduler(NewInputSystem(sampler), NewAvatarMotionSystem(tun.ViewportSize()))
	vp := tun.ViewportSize()

	patterns := []input.Snapshot{
		{Right: true, Down: true},
		{Right: true},
		{Up: true, Left: true},
		{Down: true},
		{Left: true, Up: true},
	}
	for i := 0; i < 1000; i++ {
		sampler.snap = patterns[(i/90)%len(patterns)]
		sched.Update(w)
		box, ok := BoxOf(w, scene.Avatar)
		if !ok {
			t.Fatal("avatar has no box")
		}
		if !box.Within(vp) {
			t.Fatalf("tick %d: avatar box %+v leaves viewport %+v", i, box, vp)
		}
	}
	size := tun.Avatar.Size()
	want := cp.Vector{X: vp.W - size.W, Y: vp.H - size.H}
	if got := mustGet(t, w, scene.Avatar, component.TransformComponent.Kind()).Position; got != want {
		t.Fatalf("expected avatar pinned to the bottom-right corner %v, got %v", want, got)
	}
}

func TestAvatarWalkSignals(t *testing.T) {
	w, _, tun := newTestScene(t)
	sampler := &fakeSampler{}
	sched := ecs.NewScheduler(NewInputSystem(sampler), NewAvatarMotionSystem(tun.ViewportSize()))

	frames := []input.Snapshot{
		{Right: true},
		{Right: true},
		{Right: true, Up: true},
		{},
		{},
		{Left: true},
	}
	var got []ecs.Signal
	for _, f := range frames {
		sampler.snap = f
		got = append(got, runTicks(w, sched, 1)...)
	}
	want := []ecs.Signal{ecs.SignalWalkStart, ecs.SignalWalkStop, ecs.SignalWalkStart}
	if !slices.Equal(got, want) {
		t.Fatalf("signals = %v, want %v", got, want)
	}
}

func TestAvatarFrozenOutsidePlaying(t *testing.T) {
	for _, phase := range []component.Phase{component.PhaseEntering, component.PhaseDying, component.PhaseTerminal} {
		t.Run(phase.String(), func(t *testing.T) {
			w, scene, tun := newTestScene(t)
			mustGet(t, w, scene.State, component.GameStateComponent.Kind()).Phase = phase
			sched := ecs.NewScheduler(NewInputSystem(&fakeSampler{snap: input.Snapshot{Right: true}}), NewAvatarMotionSystem(tun.ViewportSize()))

			before := mustGet(t, w, scene.Avatar, component.TransformComponent.Kind()).Position
			if sigs := runTicks(w, sched, 10); len(sigs) != 0 {
				t.Fatalf("unexpected signals %v", sigs)
			}
			if after := mustGet(t, w, scene.Avatar, component.TransformComponent.Kind()).Position; after != before {
				t.Fatalf("avatar moved from %v to %v", before, after)
			}
		})
	}
}

func TestIdleAvatarPulledIntoViewport(t *testing.T) {
	w, scene, tun := newTestScene(t)
	vp := tun.ViewportSize()
	sched := ecs.NewScheduler(NewInputSystem(&fakeSampler{}), NewAvatarMotionSystem(vp))
	mustGet(t, w, scene.Avatar, component.TransformComponent.Kind()).Position.X = 5000

	if sigs := runTicks(w, sched, 1); len(sigs) != 0 {
		t.Fatalf("idle clamp emitted %v", sigs)
	}
	box, _ := BoxOf(w, scene.Avatar)
	if !box.Within(vp) {
		t.Fatalf("idle avatar box %+v outside %+v", box, vp)
	}
	if box.X != vp.W-box.W {
		t.Fatalf("x = %v, want %v", box.X, vp.W-box.W)
	}
}

func TestAvatarStartLayout(t *testing.T) {
	w, scene, tun := newTestScene(t)
	box, ok := BoxOf(w, scene.Avatar)
	if !ok {
		t.Fatal("avatar has no box")
	}
	size := tun.Avatar.Size()
	want := common.Rect{X: 30, Y: (720 - size.H) / 2, W: size.W, H: size.H}
	if box != want {
		t.Fatalf("avatar box = %+v, want %+v", box, want)
	}
}
