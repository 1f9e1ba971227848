package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/rocketrun/assets"
)

// beepAudio plays synthesized cues through the beep speaker. One-shot cues
// are mixed in fresh each time; looping cues are wrapped in a Ctrl so they
// can be detached from the mixer.
type beepAudio struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	samples map[assets.Cue][][2]float64
	loops   map[assets.Cue]*beep.Ctrl
}

func newBeepAudio() (*beepAudio, error) {
	sr := beep.SampleRate(assets.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}

	a := &beepAudio{
		mixer:   &beep.Mixer{},
		samples: make(map[assets.Cue][][2]float64),
		loops:   make(map[assets.Cue]*beep.Ctrl),
	}
	for _, c := range assets.Cues() {
		tone, _ := assets.ToneFor(c)
		mono := tone.Samples(assets.SampleRate)
		stereo := make([][2]float64, len(mono))
		for i, s := range mono {
			stereo[i] = [2]float64{s, s}
		}
		a.samples[c] = stereo
	}
	speaker.Play(a.mixer)
	return a, nil
}

func (a *beepAudio) Play(c assets.Cue) {
	data := a.samples[c]
	if len(data) == 0 {
		return
	}
	speaker.Lock()
	a.mixer.Add(&clip{data: data})
	speaker.Unlock()
}

func (a *beepAudio) StartLoop(c assets.Cue) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.loops[c]; ok {
		return
	}
	data := a.samples[c]
	if len(data) == 0 {
		return
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, &clip{data: data})}
	a.loops[c] = ctrl
	speaker.Lock()
	a.mixer.Add(ctrl)
	speaker.Unlock()
}

func (a *beepAudio) StopLoop(c assets.Cue) {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctrl, ok := a.loops[c]
	if !ok {
		return
	}
	delete(a.loops, c)
	speaker.Lock()
	// a nil streamer drains the Ctrl out of the mixer
	ctrl.Streamer = nil
	speaker.Unlock()
}

// clip streams a prerendered buffer.
type clip struct {
	data [][2]float64
	pos  int
}

func (c *clip) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	n := copy(samples, c.data[c.pos:])
	c.pos += n
	return n, true
}

func (c *clip) Err() error    { return nil }
func (c *clip) Len() int      { return len(c.data) }
func (c *clip) Position() int { return c.pos }

func (c *clip) Seek(p int) error {
	if p < 0 || p > len(c.data) {
		return fmt.Errorf("clip: seek %d out of range [0, %d]", p, len(c.data))
	}
	c.pos = p
	return nil
}
