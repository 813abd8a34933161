// Command mazeterm explores a maze top-down in the terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"mazerunner/internal/config"
	"mazerunner/internal/maze"
	"mazerunner/internal/session"
	"mazerunner/internal/termview"
)

func main() {
	difficulty := flag.String("difficulty", "", "start directly on easy, normal or hard")
	seed := flag.Uint64("seed", 0, "maze seed (default: MAZE_SEED or the clock)")
	logPath := flag.String("log", "", "write the log to this file")
	flag.Parse()

	// The screen owns the terminal, so logging goes to a file or nowhere.
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("[maze] [ERROR] open log: %v", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "[maze] ", log.LstdFlags)

	cfg, err := config.Load(logger)
	if err != nil {
		log.Fatalf("[maze] [ERROR] config: %v", err)
	}
	if *difficulty != "" {
		d, err := maze.ParseDifficulty(*difficulty)
		if err != nil {
			log.Fatalf("[maze] [ERROR] %v", err)
		}
		cfg.Difficulty, cfg.DifficultySet = d, true
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed, cfg.SeedSet = *seed, true
		}
	})

	sess := session.New(session.Options{
		CellSize: cfg.CellSize,
		Radius:   cfg.PlayerRadius,
		Speed:    cfg.MoveSpeed,
	})
	explorer := termview.New(sess, cfg.Difficulty, cfg.Seed, logger)
	if cfg.DifficultySet {
		if err := explorer.Start(cfg.Difficulty); err != nil {
			log.Fatalf("[maze] [ERROR] %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[maze] [ERROR] screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[maze] [ERROR] screen init: %v", err)
	}
	screen.HideCursor()

	err = termview.Run(screen, explorer)
	screen.Fini()
	if err != nil {
		log.Fatalf("[maze] [ERROR] %v", err)
	}
}
