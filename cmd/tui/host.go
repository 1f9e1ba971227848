package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/rocketrun/input"
	"github.com/milk9111/rocketrun/prefabs"
	"github.com/milk9111/rocketrun/scene"
	"github.com/milk9111/rocketrun/sound"
)

// host drives a Director from a terminal. Ticks and key handling share one
// goroutine so the simulation is only touched from there.
type host struct {
	screen   tcell.Screen
	director *scene.Director
	keys     *input.KeySet
	latch    *input.Latch
	router   *sound.Router
	logger   *slog.Logger
	interval time.Duration
	paused   bool
}

func newHost(t *prefabs.Tuning, mute bool, logger *slog.Logger) (*host, error) {
	h := &host{
		keys:     input.NewKeySet(),
		logger:   logger,
		interval: time.Second / time.Duration(t.TickRate),
	}
	h.latch = input.NewLatch(h.keys, input.DefaultFirstHold, input.DefaultRepeatHold)

	var sink scene.SignalSink
	if !mute {
		player, err := newBeepAudio()
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			h.router = sound.NewRouter(player, false)
			sink = h.router
		}
	}

	d, err := scene.NewDirector(scene.Config{Tuning: t, Sampler: h.keys, Sink: sink, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	h.director = d
	return h, nil
}

func (h *host) run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tui: init screen: %w", err)
	}
	h.screen = screen
	defer screen.Fini()
	defer h.director.Close()
	screen.HideCursor()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	next := time.Now().Add(h.interval)
	timer := time.NewTimer(h.interval)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := h.handle(ev); quit {
				return nil
			}
		case <-timer.C:
			now := time.Now()
			h.latch.Expire(now)
			if !h.paused {
				if err := h.director.Tick(); err != nil {
					return err
				}
			}
			drawView(screen, h.director.Session().View(), h.paused)

			// Schedule against the ideal deadline; resync if far behind.
			next = next.Add(h.interval)
			if now.Sub(next) > 2*h.interval {
				next = now.Add(h.interval)
			}
			timer.Reset(time.Until(next))
		}
	}
}

func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		now := ev.When()
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return true
		case tcell.KeyEscape:
			h.paused = !h.paused
			h.latch.ReleaseAll()
		case tcell.KeyUp:
			h.latch.Press(input.KeyUp, now)
		case tcell.KeyDown:
			h.latch.Press(input.KeyDown, now)
		case tcell.KeyLeft:
			h.latch.Press(input.KeyLeft, now)
		case tcell.KeyRight:
			h.latch.Press(input.KeyRight, now)
		case tcell.KeyEnter:
			h.latch.Press(input.KeyEnter, now)
		case tcell.KeyRune:
			return h.handleRune(ev.Rune(), now)
		}
	}
	return false
}

func (h *host) handleRune(r rune, now time.Time) bool {
	switch r {
	case 'q':
		return true
	case ' ':
		h.latch.Press(input.KeyEnter, now)
	case 'w':
		h.latch.Press(input.KeyUp, now)
	case 's':
		h.latch.Press(input.KeyDown, now)
	case 'a':
		h.latch.Press(input.KeyLeft, now)
	case 'd':
		h.latch.Press(input.KeyRight, now)
	case 'm':
		if h.router != nil {
			h.router.SetMuted(!h.router.Muted())
		}
	}
	return false
}
