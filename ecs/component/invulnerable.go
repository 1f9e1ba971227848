package component

// Invulnerable marks an entity as temporarily immune to damage. It is removed
// when the scheduled invulnerability-end event fires at Until.
type Invulnerable struct {
	Until uint64
}

var InvulnerableComponent = NewComponent[Invulnerable]("invulnerable")
