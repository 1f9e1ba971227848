package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rocketrun/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	mute := flag.Bool("mute", false, "start with audio muted")
	watch := flag.Bool("watch", false, "reload tuning when prefab files change")
	tuningPath := flag.String("tuning", "", "tuning file (defaults to prefabs/tuning.yaml)")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	logger := common.NewLogger("desktop", *debug, nil)

	tuning, err := loadTuning(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(tuning.Viewport.Width), int(tuning.Viewport.Height))
	ebiten.SetWindowTitle("rocketrun")
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetTPS(tuning.TickRate)

	game, err := NewGame(Options{
		Tuning:     tuning,
		TuningPath: *tuningPath,
		Debug:      *debug,
		Mute:       *mute,
		Watch:      *watch,
		Logger:     logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
