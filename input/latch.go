package input

import "time"

const (
	// DefaultFirstHold covers the usual terminal delay before auto-repeat.
	DefaultFirstHold = 550 * time.Millisecond
	// DefaultRepeatHold covers the gap between auto-repeat events.
	DefaultRepeatHold = 120 * time.Millisecond
)

// Latch emulates key-up for sources that only report presses, such as
// terminals. A pressed key stays held until no repeat arrives within the hold
// window. Latch is not safe for concurrent use; drive it from one goroutine.
type Latch struct {
	keys       *KeySet
	firstHold  time.Duration
	repeatHold time.Duration
	deadlines  map[Key]time.Time
}

func NewLatch(keys *KeySet, firstHold, repeatHold time.Duration) *Latch {
	if firstHold <= 0 {
		firstHold = DefaultFirstHold
	}
	if repeatHold <= 0 {
		repeatHold = DefaultRepeatHold
	}
	return &Latch{
		keys:       keys,
		firstHold:  firstHold,
		repeatHold: repeatHold,
		deadlines:  make(map[Key]time.Time),
	}
}

// Press records a press or auto-repeat of key at now.
func (l *Latch) Press(key Key, now time.Time) {
	hold := l.firstHold
	if _, held := l.deadlines[key]; held {
		hold = l.repeatHold
	}
	l.deadlines[key] = now.Add(hold)
	l.keys.Press(key)
}

// Expire releases every key whose hold window has passed.
func (l *Latch) Expire(now time.Time) {
	for key, deadline := range l.deadlines {
		if now.After(deadline) {
			delete(l.deadlines, key)
			l.keys.Release(key)
		}
	}
}

// ReleaseAll drops every latched key.
func (l *Latch) ReleaseAll() {
	clear(l.deadlines)
	l.keys.Reset()
}
