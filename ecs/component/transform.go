package component

import "github.com/jakecoffman/cp"

// Transform holds the top-left position of an entity in scene units.
type Transform struct {
	Position cp.Vector
}

var TransformComponent = NewComponent[Transform]("transform")
