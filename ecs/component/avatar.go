package component

// Avatar is the player-controlled entity.
type Avatar struct {
	// Speed is the per-axis displacement per tick while a direction is held.
	Speed float64
	// Walking is true while the walk loop is active.
	Walking bool
	// EnteredExit is terminal once true.
	EnteredExit bool
}

var AvatarComponent = NewComponent[Avatar]("avatar")
