package main

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/rocketrun/assets"
)

// ebitenAudio plays synthesized cues through ebiten's audio context.
type ebitenAudio struct {
	ctx     *audio.Context
	players map[assets.Cue]*audio.Player
}

func newEbitenAudio() (*ebitenAudio, error) {
	a := &ebitenAudio{
		ctx:     audio.NewContext(assets.SampleRate),
		players: make(map[assets.Cue]*audio.Player),
	}
	for _, c := range assets.Cues() {
		tone, _ := assets.ToneFor(c)
		pcm := assets.PCM(c, assets.SampleRate)
		if !tone.Loop {
			a.players[c] = a.ctx.NewPlayerFromBytes(pcm)
			continue
		}
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := a.ctx.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("audio: loop %s: %w", c, err)
		}
		a.players[c] = p
	}
	return a, nil
}

func (a *ebitenAudio) Play(c assets.Cue) {
	p := a.players[c]
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

func (a *ebitenAudio) StartLoop(c assets.Cue) {
	p := a.players[c]
	if p == nil || p.IsPlaying() {
		return
	}
	p.Play()
}

func (a *ebitenAudio) StopLoop(c assets.Cue) {
	p := a.players[c]
	if p == nil || !p.IsPlaying() {
		return
	}
	p.Pause()
	_ = p.Rewind()
}
