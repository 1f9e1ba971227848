package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	DefaultTickRate = 60
)

// TicksFor converts a millisecond delay into whole ticks at rate ticks per
// second, rounding up so a delay never fires early.
func TicksFor(ms, rate int) uint64 {
	if ms <= 0 || rate <= 0 {
		return 0
	}
	return uint64(math.Ceil(float64(ms) * float64(rate) / 1000))
}
