package scene

import (
	"sync"

	"github.com/milk9111/rocketrun/ecs"
)

// SignalSink receives simulation signals once per logical event, in the
// order they were emitted during the tick.
type SignalSink interface {
	Emit(sig ecs.Signal)
}

// SinkFunc adapts a function to SignalSink.
type SinkFunc func(sig ecs.Signal)

func (f SinkFunc) Emit(sig ecs.Signal) {
	if f != nil {
		f(sig)
	}
}

// MultiSink fans a signal out to every non-nil sink.
type MultiSink []SignalSink

func (m MultiSink) Emit(sig ecs.Signal) {
	for _, s := range m {
		if s != nil {
			s.Emit(sig)
		}
	}
}

// Recorder keeps the most recent signals for debug overlays and dumps.
type Recorder struct {
	mu    sync.Mutex
	limit int
	recs  []ecs.Signal
}

func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

func (r *Recorder) Emit(sig ecs.Signal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, sig)
	if r.limit > 0 && len(r.recs) > r.limit {
		r.recs = r.recs[len(r.recs)-r.limit:]
	}
}

// Signals returns a copy of the recorded signals, oldest first.
func (r *Recorder) Signals() []ecs.Signal {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ecs.Signal, len(r.recs))
	copy(out, r.recs)
	return out
}

func (r *Recorder) Count(sig ecs.Signal) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.recs {
		if s == sig {
			n++
		}
	}
	return n
}
