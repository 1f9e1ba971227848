package component

// Input stores the keys sampled for the current tick.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Enter bool
}

// Moving reports whether any direction is held.
func (i *Input) Moving() bool {
	return i != nil && (i.Up || i.Down || i.Left || i.Right)
}

var InputComponent = NewComponent[Input]("input")
