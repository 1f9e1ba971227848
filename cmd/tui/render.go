package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/rocketrun/common"
	"github.com/milk9111/rocketrun/ecs/component"
	"github.com/milk9111/rocketrun/scene"
)

var (
	styleSand     = tcell.StyleDefault.Background(tcell.NewRGBColor(0xe8, 0xd2, 0xa0))
	styleAvatar   = tcell.StyleDefault.Background(tcell.NewRGBColor(0x2e, 0x6f, 0xd8))
	styleDead     = tcell.StyleDefault.Background(tcell.NewRGBColor(0x70, 0x70, 0x70))
	styleScorpion = tcell.StyleDefault.Background(tcell.NewRGBColor(0x8b, 0x4a, 0x1c))
	styleRocket   = tcell.StyleDefault.Background(tcell.NewRGBColor(0xd0, 0xd4, 0xdc))
	styleBoarding = tcell.StyleDefault.Background(tcell.NewRGBColor(0xff, 0x9a, 0x1a))
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleHeart    = styleStatus.Foreground(tcell.ColorRed)
)

// cellGrid maps scene units onto terminal cells, keeping one row for the
// status line.
type cellGrid struct {
	cols, rows int
	cw, ch     float64
}

func newCellGrid(vp common.Size, cols, rows int) cellGrid {
	rows = max(rows-1, 1)
	cols = max(cols, 1)
	return cellGrid{cols: cols, rows: rows, cw: vp.W / float64(cols), ch: vp.H / float64(rows)}
}

// span returns the cell range [c0, c1) x [r0, r1) covered by b. Every
// non-empty box covers at least one cell.
func (g cellGrid) span(b common.Rect) (c0, r0, c1, r1 int) {
	c0 = int(math.Floor(b.X / g.cw))
	r0 = int(math.Floor(b.Y / g.ch))
	c1 = max(int(math.Ceil((b.X+b.W)/g.cw)), c0+1)
	r1 = max(int(math.Ceil((b.Y+b.H)/g.ch)), r0+1)
	return max(c0, 0), max(r0, 0), min(c1, g.cols), min(r1, g.rows)
}

func fillBox(s tcell.Screen, g cellGrid, b common.Rect, style tcell.Style, r rune) {
	c0, r0, c1, r1 := g.span(b)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			s.SetContent(x, y, r, nil, style)
		}
	}
}

func drawView(s tcell.Screen, v scene.View, paused bool) {
	cols, rows := s.Size()
	g := newCellGrid(v.Viewport, cols, rows)

	s.Clear()
	fillBox(s, g, common.Rect{W: v.Viewport.W, H: v.Viewport.H}, styleSand, ' ')

	rocket := styleRocket
	if v.Exit.Phase == component.ExitBoarding {
		rocket = styleBoarding
	}
	if v.Exit.Phase != component.ExitLaunched || v.Tick%2 == 0 {
		fillBox(s, g, v.Exit.Box, rocket, '^')
	}

	for _, p := range v.Patrollers {
		glyph := '<'
		switch {
		case p.Axis == component.AxisVertical && p.Facing > 0:
			glyph = 'v'
		case p.Axis == component.AxisVertical:
			glyph = '^'
		case p.Facing > 0:
			glyph = '>'
		}
		fillBox(s, g, p.Box, styleScorpion, glyph)
	}

	if a := v.Avatar; a.Visible && !(a.Invulnerable && !a.Dead && (v.Tick/6)%2 == 1) {
		style, glyph := styleAvatar, '@'
		if a.Dead {
			style, glyph = styleDead, 'x'
		}
		fillBox(s, g, a.Box, style, glyph)
	}

	drawStatus(s, v, g.rows, cols, paused)
	s.Show()
}

func drawStatus(s tcell.Screen, v scene.View, row, cols int, paused bool) {
	x := 0
	for _, filled := range v.Slots {
		r := '♡'
		if filled {
			r = '♥'
		}
		s.SetContent(x, row, r, nil, styleHeart)
		x++
	}

	msg := " arrows/wasd move, space boards the rocket, esc pauses, q quits"
	switch {
	case paused:
		msg = " PAUSED (esc to resume)"
	case v.GameOver:
		msg = " GAME OVER"
	case v.Exit.Phase == component.ExitLaunched:
		msg = " LIFTOFF!"
	case v.Victory:
		msg = " boarding..."
	}
	msg += fmt.Sprintf("  [%s]", v.Phase)
	if pad := cols - x - len(msg); pad > 0 {
		msg += strings.Repeat(" ", pad)
	}
	for _, r := range msg {
		if x >= cols {
			break
		}
		s.SetContent(x, row, r, nil, styleStatus)
		x++
	}
}
