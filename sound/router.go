package sound

import (
	"github.com/milk9111/rocketrun/assets"
	"github.com/milk9111/rocketrun/ecs"
)

// Player is an audio backend able to fire one-shot cues and toggle looping
// ones.
type Player interface {
	Play(c assets.Cue)
	StartLoop(c assets.Cue)
	StopLoop(c assets.Cue)
}

// Router turns simulation signals into cue playback. It satisfies
// scene.SignalSink.
type Router struct {
	player Player
	muted  bool
}

func NewRouter(p Player, muted bool) *Router {
	return &Router{player: p, muted: muted}
}

func (r *Router) SetMuted(muted bool) {
	if muted && !r.muted && r.player != nil {
		r.player.StopLoop(assets.CueWalk)
	}
	r.muted = muted
}

func (r *Router) Muted() bool {
	return r.muted
}

func (r *Router) Emit(sig ecs.Signal) {
	if r == nil || r.player == nil {
		return
	}
	switch sig {
	case ecs.SignalWalkStop, ecs.SignalLoopStop:
		r.player.StopLoop(assets.CueWalk)
		return
	}
	if r.muted {
		return
	}
	switch sig {
	case ecs.SignalHit:
		r.player.Play(assets.CueOuch)
	case ecs.SignalWalkStart:
		r.player.StartLoop(assets.CueWalk)
	case ecs.SignalExitPhase1:
		r.player.Play(assets.CueBlastoff)
	case ecs.SignalExitPhase2:
		r.player.Play(assets.CueLaunch)
	}
}
