package assets

import (
	"math"
	"testing"
)

func TestCuesRender(t *testing.T) {
	for _, c := range Cues() {
		t.Run(string(c), func(t *testing.T) {
			tone, ok := ToneFor(c)
			if !ok {
				t.Fatalf("no tone for %s", c)
			}
			samples := tone.Samples(SampleRate)
			want := 0
			for _, s := range tone.Segments {
				want += int(s.Seconds * SampleRate)
			}
			if len(samples) != want {
				t.Fatalf("samples = %d, want %d", len(samples), want)
			}
			peak := 0.0
			for _, s := range samples {
				peak = math.Max(peak, math.Abs(s))
			}
			if peak == 0 || peak > 1 {
				t.Fatalf("peak amplitude %v out of range", peak)
			}

			pcm := PCM(c, SampleRate)
			if len(pcm) != len(samples)*4 {
				t.Fatalf("pcm bytes = %d, want %d", len(pcm), len(samples)*4)
			}
		})
	}
}

func TestOnlyWalkLoops(t *testing.T) {
	for _, c := range Cues() {
		tone, _ := ToneFor(c)
		if tone.Loop != (c == CueWalk) {
			t.Fatalf("%s loop = %v", c, tone.Loop)
		}
	}
}

func TestPCMUnknownCue(t *testing.T) {
	if PCM(Cue("nope"), SampleRate) != nil {
		t.Fatal("expected nil for unknown cue")
	}
}

func TestSamplesDeterministic(t *testing.T) {
	tone, _ := ToneFor(CueLaunch)
	a := tone.Samples(8000)
	b := tone.Samples(8000)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between renders", i)
		}
	}
}
