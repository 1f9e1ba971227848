package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/rocketrun/common"
	"github.com/milk9111/rocketrun/ecs"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/scene"
	"golang.org/x/image/font/basicfont"
)

var (
	colorSand      = color.RGBA{R: 0xe8, G: 0xd2, B: 0xa0, A: 0xff}
	colorAvatar    = color.RGBA{R: 0x2e, G: 0x6f, B: 0xd8, A: 0xff}
	colorDead      = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff}
	colorScorpion  = color.RGBA{R: 0x8b, G: 0x4a, B: 0x1c, A: 0xff}
	colorStinger   = color.RGBA{R: 0x4a, G: 0x22, B: 0x08, A: 0xff}
	colorRocket    = color.RGBA{R: 0xd0, G: 0xd4, B: 0xdc, A: 0xff}
	colorRocketTip = color.RGBA{R: 0xc8, G: 0x28, B: 0x28, A: 0xff}
	colorFlame     = color.RGBA{R: 0xff, G: 0x9a, B: 0x1a, A: 0xff}
	colorHeart     = color.RGBA{R: 0xd8, G: 0x20, B: 0x3a, A: 0xff}
	colorBanner    = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

const (
	slotSize    = 28.0
	slotSpacing = 6.0
	slotPadding = 12.0
	launchRise  = 6.0
)

// renderer draws a scene.View with flat shapes.
type renderer struct {
	face       ebtext.Face
	launchedAt uint64
	launched   bool
}

func newRenderer() *renderer {
	return &renderer{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (r *renderer) draw(screen *ebiten.Image, v scene.View) {
	screen.Fill(colorSand)

	r.drawExit(screen, v)
	for _, p := range v.Patrollers {
		drawPatroller(screen, p)
	}
	drawAvatar(screen, v)
	drawSlots(screen, v.Slots)

	switch {
	case v.GameOver:
		r.drawBanner(screen, v.Viewport, "GAME OVER")
	case v.Exit.Phase == component.ExitLaunched:
		r.drawBanner(screen, v.Viewport, "LIFTOFF!")
	}
}

func (r *renderer) drawExit(screen *ebiten.Image, v scene.View) {
	b := v.Exit.Box
	if v.Exit.Phase != component.ExitLaunched {
		r.launched = false
	} else if !r.launched {
		r.launched = true
		r.launchedAt = v.Tick
	}

	y := b.Y
	if r.launched {
		y -= float64(v.Tick-r.launchedAt) * launchRise
		vector.FillRect(screen, float32(b.X+b.W*0.25), float32(y+b.H), float32(b.W*0.5), float32(b.H*0.3), colorFlame, false)
	}
	vector.FillRect(screen, float32(b.X), float32(y+b.H*0.2), float32(b.W), float32(b.H*0.8), colorRocket, false)
	vector.FillRect(screen, float32(b.X+b.W*0.2), float32(y), float32(b.W*0.6), float32(b.H*0.2), colorRocketTip, false)
	if v.Exit.Phase == component.ExitBoarding {
		vector.StrokeRect(screen, float32(b.X), float32(y), float32(b.W), float32(b.H), 3, colorAvatar, false)
	}
}

func drawPatroller(screen *ebiten.Image, p scene.PatrollerView) {
	b := p.Box
	vector.FillRect(screen, float32(b.X), float32(b.Y+b.H*0.3), float32(b.W), float32(b.H*0.7), colorScorpion, false)

	// stinger trails behind the direction of travel
	tail := b.X
	if p.Axis == component.AxisHorizontal && p.Facing < 0 {
		tail = b.X + b.W*0.8
	}
	vector.FillRect(screen, float32(tail), float32(b.Y), float32(b.W*0.2), float32(b.H*0.4), colorStinger, false)
}

func drawAvatar(screen *ebiten.Image, v scene.View) {
	a := v.Avatar
	if !a.Visible {
		return
	}
	if a.Invulnerable && !a.Dead && (v.Tick/6)%2 == 1 {
		return
	}
	b := a.Box
	if a.Dead {
		vector.FillRect(screen, float32(b.X), float32(b.Y+b.H-b.W), float32(b.H), float32(b.W), colorDead, false)
		return
	}
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colorAvatar, false)
}

func drawSlots(screen *ebiten.Image, slots []bool) {
	for i, filled := range slots {
		x := float32(slotPadding + float64(i)*(slotSize+slotSpacing))
		y := float32(slotPadding)
		if filled {
			vector.FillRect(screen, x, y, slotSize, slotSize, colorHeart, false)
			continue
		}
		vector.StrokeRect(screen, x, y, slotSize, slotSize, 2, colorHeart, false)
	}
}

func (r *renderer) drawBanner(screen *ebiten.Image, vp common.Size, msg string) {
	const scale = 4
	w, h := ebtext.Measure(msg, r.face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((vp.W-w*scale)/2, (vp.H-h*scale)/2)
	op.ColorScale.ScaleWithColor(colorBanner)
	ebtext.Draw(screen, msg, r.face, op)
}

func (r *renderer) drawDebug(screen *ebiten.Image, v scene.View, recent []ecs.Signal) {
	names := make([]string, len(recent))
	for i, s := range recent {
		names[i] = string(s)
	}
	msg := fmt.Sprintf("TPS: %.1f  tick: %d  phase: %s\nhealth: %d/%d  invulnerable: %t\nsignals: %s",
		ebiten.ActualTPS(), v.Tick, v.Phase, v.Avatar.Health, v.Avatar.MaxHealth, v.Avatar.Invulnerable, strings.Join(names, " "))
	ebitenutil.DebugPrintAt(screen, msg, int(slotPadding), int(slotPadding+slotSize+8))

	b := v.Avatar.Box
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, color.RGBA{R: 0, G: 255, B: 0, A: 200}, false)
	for _, p := range v.Patrollers {
		vector.StrokeRect(screen, float32(p.Box.X), float32(p.Box.Y), float32(p.Box.W), float32(p.Box.H), 1, color.RGBA{R: 255, G: 0, B: 0, A: 200}, false)
	}
}
