package system

import (
	"math"
	"testing"

	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/prefabs"
)

func TestPatrolStep(t *testing.T) {
	tests := []struct {
		name    string
		pos     float64
		dir     int
		wantPos float64
		wantDir int
	}{
		{"moves_forward", 10, 1, 13, 1},
		{"moves_backward", 10, -1, 7, -1},
		{"lands_on_limit_keeps_direction", 97, 1, 100, 1},
		{"crosses_limit_flips", 99, 1, 102, -1},
		{"lands_on_zero_keeps_direction", 3, -1, 0, -1},
		{"crosses_zero_flips", 2, -1, -1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, dir := PatrolStep(tc.pos, tc.dir, 3, 100)
			if pos != tc.wantPos || dir != tc.wantDir {
				t.Fatalf("PatrolStep(%v, %d) = (%v, %d), want (%v, %d)", tc.pos, tc.dir, pos, dir, tc.wantPos, tc.wantDir)
			}
		})
	}
}

func TestPatrolSystemBounces(t *testing.T) {
	w, scene, tun := newTestScene(t)
	vp := tun.ViewportSize()
	size := tun.Patroller.Size()
	step := tun.PatrolStep()
	sched := ecs.NewScheduler(NewPatrolSystem(vp, nil))

	type sample struct{ x, y float64 }
	prev := make(map[ecs.Entity]sample)
	for _, e := range scene.Patrollers {
		p := mustGet(t, w, e, component.TransformComponent.Kind()).Position
		prev[e] = sample{p.X, p.Y}
	}

	flips := make(map[ecs.Entity]int)
	for tick := 0; tick < 2000; tick++ {
		sched.Update(w)
		for _, e := range scene.Patrollers {
			p := mustGet(t, w, e, component.PatrollerComponent.Kind())
			pos := mustGet(t, w, e, component.TransformComponent.Kind()).Position
			last := prev[e]

			moving, fixed, lastMoving, lastFixed, limit := pos.Y, pos.X, last.y, last.x, vp.H-size.H
			if p.Axis == component.AxisHorizontal {
				moving, fixed, lastMoving, lastFixed, limit = pos.X, pos.Y, last.x, last.y, vp.W-size.W
			}
			if fixed != lastFixed {
				t.Fatalf("tick %d: patroller %v drifted off its axis", tick, e)
			}
			if d := math.Abs(moving - lastMoving); d > step+1e-9 {
				t.Fatalf("tick %d: patroller %v moved %v > %v", tick, e, d, step)
			}
			if moving < -step-1e-9 || moving > limit+step+1e-9 {
				t.Fatalf("tick %d: patroller %v at %v outside [%v, %v]", tick, e, moving, -step, limit+step)
			}
			if moving > limit && p.Direction != -1 || moving < 0 && p.Direction != 1 {
				t.Fatalf("tick %d: patroller %v past bound without flipping", tick, e)
			}
			if (moving-lastMoving > 0) != (p.Direction > 0) {
				flips[e]++
			}
			prev[e] = sample{pos.X, pos.Y}
		}
	}
	for _, e := range scene.Patrollers {
		if flips[e] == 0 {
			t.Fatalf("patroller %v never turned around", e)
		}
	}
}

func TestPatrolScriptMatchesNativeRule(t *testing.T) {
	src, err := prefabs.LoadScript("patrol")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	script, err := CompilePatrolScript("patrol", src)
	if err != nil {
		t.Fatalf("CompilePatrolScript: %v", err)
	}

	step, limit := 10.0/3.0, 620.0
	nativePos, nativeDir := 200.0, 1
	scriptPos, scriptDir := 200.0, 1
	for i := 0; i < 1000; i++ {
		nativePos, nativeDir = PatrolStep(nativePos, nativeDir, step, limit)
		scriptPos, scriptDir, err = script.Step(scriptPos, scriptDir, step, limit)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if nativePos != scriptPos || nativeDir != scriptDir {
			t.Fatalf("step %d: native (%v, %d) != script (%v, %d)", i, nativePos, nativeDir, scriptPos, scriptDir)
		}
	}
}

func TestCompilePatrolScriptError(t *testing.T) {
	if _, err := CompilePatrolScript("broken", []byte("pos = pos +")); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestPipelineScriptedPatrol(t *testing.T) {
	tun := prefabs.DefaultTuning()
	tun.Patroller.Script = "patrol"
	if _, err := Pipeline(&tun, &fakeSampler{}, nil); err != nil {
		t.Fatalf("Pipeline with script: %v", err)
	}

	tun.Patroller.Script = "does_not_exist"
	if _, err := Pipeline(&tun, &fakeSampler{}, nil); err == nil {
		t.Fatal("expected error for missing script")
	}
}
