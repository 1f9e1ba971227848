package component

// Health tracks the avatar's remaining hit points. Current only ever goes down
// within a session.
type Health struct {
	Initial int
	Current int
}

func (h *Health) Alive() bool {
	return h != nil && h.Current > 0
}

var HealthComponent = NewComponent[Health]("health")
