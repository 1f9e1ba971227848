package entity

import (
	"fmt"

	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
)

func NewGameState(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameStateComponent.Kind(), &component.GameState{Phase: component.PhasePlaying}); err != nil {
		return 0, fmt.Errorf("game state: add state: %w", err)
	}
	return e, nil
}
