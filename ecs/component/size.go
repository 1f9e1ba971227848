package component

// Size is the fixed extent of an entity's box. It never changes after the
// entity is built.
type Size struct {
	W float64
	H float64
}

var SizeComponent = NewComponent[Size]("size")
