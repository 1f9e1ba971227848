package input

import "sync"

// Snapshot is the held-key state taken once per tick.
type Snapshot struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Enter bool
}

// Sampler is the per-tick query side of an input source.
type Sampler interface {
	Sample() Snapshot
}

// KeySet tracks currently held keys from press/release notifications. Hosts
// may deliver notifications from their own goroutine; the simulation only
// reads through Sample, once per tick.
type KeySet struct {
	mu   sync.Mutex
	held map[Key]bool
}

func NewKeySet() *KeySet {
	return &KeySet{held: make(map[Key]bool)}
}

// Press marks key as held.
func (k *KeySet) Press(key Key) {
	k.set(key, true)
}

// Release marks key as not held.
func (k *KeySet) Release(key Key) {
	k.set(key, false)
}

func (k *KeySet) set(key Key, held bool) {
	if k == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.held == nil {
		k.held = make(map[Key]bool)
	}
	k.held[key] = held
}

// IsHeld reports whether key is currently held.
func (k *KeySet) IsHeld(key Key) bool {
	if k == nil {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[key]
}

// Reset releases every key.
func (k *KeySet) Reset() {
	if k == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.held)
}

// Sample returns a consistent view of the recognized keys.
func (k *KeySet) Sample() Snapshot {
	if k == nil {
		return Snapshot{}
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return Snapshot{
		Up:    k.held[KeyUp],
		Down:  k.held[KeyDown],
		Left:  k.held[KeyLeft],
		Right: k.held[KeyRight],
		Enter: k.held[KeyEnter],
	}
}
