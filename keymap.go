package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rocketrun/input"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyW:          input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyS:          input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyA:          input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyD:          input.KeyRight,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeySpace:      input.KeyEnter,
}

func translateKey(k ebiten.Key) (input.Key, bool) {
	key, ok := keyMap[k]
	return key, ok
}
