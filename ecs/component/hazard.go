package component

// Axis is the line a patroller travels along.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Patroller is a hazard bouncing between the viewport edges on one axis.
type Patroller struct {
	Axis Axis
	// Direction is +1 or -1.
	Direction int
	// Step is the displacement per tick.
	Step float64
	// Script names an optional tengo patrol rule under prefabs/scripts.
	Script string
}

var PatrollerComponent = NewComponent[Patroller]("patroller")
