package input

// Key identifies a host key. Hosts translate their native key codes into
// these identifiers; anything else is tracked but ignored by the simulation.
type Key string

const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyEnter Key = "enter"
)
