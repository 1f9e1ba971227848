package component

// ExitPhase is the progress of the launch sequence seen by renderers.
type ExitPhase int

const (
	ExitIdle ExitPhase = iota
	ExitBoarding
	ExitLaunched
)

func (p ExitPhase) String() string {
	switch p {
	case ExitBoarding:
		return "boarding"
	case ExitLaunched:
		return "launched"
	default:
		return "idle"
	}
}

// ExitZone is the area the avatar activates to win.
type ExitZone struct {
	Phase ExitPhase
}

var ExitZoneComponent = NewComponent[ExitZone]("exit_zone")
