package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/milk9111/rocketrun/common"
	"github.com/milk9111/rocketrun/prefabs"
)

func main() {
	tick := flag.Int("tick", 0, "override the tuning tick rate (ticks per second)")
	mute := flag.Bool("mute", false, "disable audio")
	debug := flag.Bool("debug", false, "enable debug logging")
	logPath := flag.String("log", "", "write logs to this file")
	tuningPath := flag.String("tuning", "", "tuning file (defaults to prefabs/tuning.yaml)")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logger := common.NewLogger("tui", *debug, out)

	var (
		tuning *prefabs.Tuning
		err    error
	)
	if *tuningPath != "" {
		tuning, err = prefabs.LoadTuningFile(*tuningPath)
	} else {
		tuning, err = prefabs.LoadTuning(prefabs.TuningFile)
	}
	if err != nil {
		log.Fatal(err)
	}
	if *tick > 0 {
		tuning.TickRate = *tick
	}

	h, err := newHost(tuning, *mute, logger)
	if err != nil {
		log.Fatal(err)
	}
	if err := h.run(); err != nil {
		log.Fatal(err)
	}
}
