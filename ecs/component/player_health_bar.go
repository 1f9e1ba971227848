package component

// HealthSlot is one of the fixed indicator slots. Slot is zero-based.
type HealthSlot struct {
	Slot   int
	Filled bool
}

var HealthSlotComponent = NewComponent[HealthSlot]("health_slot")
