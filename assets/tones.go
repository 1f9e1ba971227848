package assets

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// SampleRate is the rate every cue is synthesized at.
const SampleRate = 44100

// Cue names a synthesized sound.
type Cue string

const (
	CueOuch     Cue = "ouch"
	CueBlastoff Cue = "blastoff"
	CueLaunch   Cue = "launch"
	CueWalk     Cue = "walk"
)

// Waveform selects the oscillator of a segment.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveNoise
	WaveSilence
)

// Segment is a frequency sweep from From to To hertz over Seconds with a
// linear volume ramp from Gain to EndGain.
type Segment struct {
	Wave    Waveform
	From    float64
	To      float64
	Seconds float64
	Gain    float64
	EndGain float64
}

// Tone is a sequence of segments played back to back.
type Tone struct {
	Segments []Segment
	Loop     bool
}

var tones = map[Cue]Tone{
	CueOuch: {Segments: []Segment{
		{Wave: WaveSquare, From: 520, To: 180, Seconds: 0.25, Gain: 0.35, EndGain: 0.05},
	}},
	CueBlastoff: {Segments: []Segment{
		{Wave: WaveSine, From: 330, To: 330, Seconds: 0.15, Gain: 0.4, EndGain: 0.4},
		{Wave: WaveSine, From: 440, To: 440, Seconds: 0.15, Gain: 0.4, EndGain: 0.4},
		{Wave: WaveSine, From: 660, To: 880, Seconds: 0.4, Gain: 0.4, EndGain: 0},
	}},
	CueLaunch: {Segments: []Segment{
		{Wave: WaveNoise, Seconds: 0.3, Gain: 0.05, EndGain: 0.4},
		{Wave: WaveNoise, Seconds: 2.2, Gain: 0.4, EndGain: 0},
	}},
	CueWalk: {Loop: true, Segments: []Segment{
		{Wave: WaveNoise, Seconds: 0.04, Gain: 0.25, EndGain: 0},
		{Wave: WaveSilence, Seconds: 0.26},
		{Wave: WaveSine, From: 110, To: 90, Seconds: 0.04, Gain: 0.3, EndGain: 0},
		{Wave: WaveSilence, Seconds: 0.26},
	}},
}

// Cues lists every synthesized cue.
func Cues() []Cue {
	return []Cue{CueOuch, CueBlastoff, CueLaunch, CueWalk}
}

// ToneFor returns the definition of c.
func ToneFor(c Cue) (Tone, bool) {
	t, ok := tones[c]
	return t, ok
}

// Seconds is the length of one pass through the tone.
func (t Tone) Seconds() float64 {
	total := 0.0
	for _, s := range t.Segments {
		total += s.Seconds
	}
	return total
}

// Samples renders the tone as mono samples in [-1, 1] at rate.
func (t Tone) Samples(rate int) []float64 {
	rng := rand.New(rand.NewPCG(1, 2))
	out := make([]float64, 0, int(t.Seconds()*float64(rate))+1)
	phase := 0.0
	for _, seg := range t.Segments {
		n := int(seg.Seconds * float64(rate))
		for i := 0; i < n; i++ {
			p := float64(i) / float64(max(n, 1))
			freq := seg.From + (seg.To-seg.From)*p
			gain := seg.Gain + (seg.EndGain-seg.Gain)*p
			phase += freq / float64(rate)
			phase -= math.Floor(phase)

			var v float64
			switch seg.Wave {
			case WaveSine:
				v = math.Sin(2 * math.Pi * phase)
			case WaveSquare:
				v = 1
				if phase >= 0.5 {
					v = -1
				}
			case WaveNoise:
				v = rng.Float64()*2 - 1
			}
			out = append(out, v*gain)
		}
	}
	return out
}

// PCM renders c as 16-bit little-endian stereo, the layout expected by
// ebiten's audio players.
func PCM(c Cue, rate int) []byte {
	t, ok := tones[c]
	if !ok {
		return nil
	}
	samples := t.Samples(rate)
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := uint16(int16(math.Round(clamp(s) * math.MaxInt16)))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
