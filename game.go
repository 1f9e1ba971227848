package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rocketrun/input"
	"github.com/milk9111/rocketrun/prefabs"
	"github.com/milk9111/rocketrun/scene"
	"github.com/milk9111/rocketrun/sound"
	"golang.design/x/clipboard"
)

type Options struct {
	Tuning     *prefabs.Tuning
	TuningPath string
	Debug      bool
	Mute       bool
	Watch      bool
	Logger     *slog.Logger
}

type Game struct {
	opts     Options
	logger   *slog.Logger
	director *scene.Director
	keys     *input.KeySet
	router   *sound.Router
	recorder *scene.Recorder
	watcher  *prefabs.Watcher
	renderer *renderer

	pauseUI *ebitenui.UI
	hudUI   *ebitenui.UI

	paused    bool
	quit      bool
	clipboard bool
	keyBuf    []ebiten.Key
}

func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Game{
		opts:     opts,
		logger:   logger,
		keys:     input.NewKeySet(),
		recorder: scene.NewRecorder(8),
	}

	player, err := newEbitenAudio()
	if err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	if player != nil {
		g.router = sound.NewRouter(player, opts.Mute)
	}

	sinks := scene.MultiSink{g.recorder}
	if g.router != nil {
		sinks = append(sinks, g.router)
	}
	g.director, err = scene.NewDirector(scene.Config{
		Tuning:  opts.Tuning,
		Sampler: g.keys,
		Sink:    sinks,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	if opts.Watch {
		dir := "prefabs"
		if opts.TuningPath != "" {
			dir = filepath.Dir(opts.TuningPath)
		}
		if g.watcher, err = prefabs.NewWatcher(dir); err != nil {
			logger.Warn("tuning watcher disabled", "dir", dir, "err", err)
		}
	}

	g.renderer = newRenderer()
	g.pauseUI = NewPauseUI(g)
	g.hudUI = NewInstructionsUI()
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.pollKeys()
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.copyDump()
	}

	g.hudUI.Update()
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	return g.director.Tick()
}

// pollKeys forwards this frame's press and release edges to the key set.
func (g *Game) pollKeys() {
	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		if key, ok := translateKey(k); ok {
			g.keys.Press(key)
		}
	}
	g.keyBuf = inpututil.AppendJustReleasedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		if key, ok := translateKey(k); ok {
			g.keys.Release(key)
		}
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Debug("prefab changed", "file", name)
			if err := g.reload(); err != nil {
				g.logger.Warn("tuning reload failed", "err", err)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("tuning watcher", "err", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) reload() error {
	t, err := loadTuning(g.opts.TuningPath)
	if err != nil {
		return err
	}
	return g.director.Reload(t)
}

func (g *Game) restart() {
	if err := g.director.Reload(g.director.Session().Tuning()); err != nil {
		g.logger.Warn("restart failed", "err", err)
	}
	g.keys.Reset()
	g.paused = false
}

func (g *Game) toggleMute() {
	if g.router == nil {
		return
	}
	g.router.SetMuted(!g.router.Muted())
}

func (g *Game) copyDump() {
	if !g.clipboard {
		if err := clipboard.Init(); err != nil {
			g.logger.Warn("clipboard unavailable", "err", err)
			return
		}
		g.clipboard = true
	}
	clipboard.Write(clipboard.FmtText, []byte(g.director.Session().Dump()))
	g.logger.Info("state dump copied to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	view := g.director.Session().View()
	g.renderer.draw(screen, view)
	g.hudUI.Draw(screen)
	if g.opts.Debug {
		g.renderer.drawDebug(screen, view, g.recorder.Signals())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	vp := g.director.Session().Tuning().ViewportSize()
	return vp.W, vp.H
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.director.Close()
}

func loadTuning(path string) (*prefabs.Tuning, error) {
	if path != "" {
		return prefabs.LoadTuningFile(path)
	}
	return prefabs.LoadTuning(prefabs.TuningFile)
}
