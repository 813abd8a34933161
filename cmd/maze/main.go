// Command maze is the first-person 3D maze game.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mazerunner/internal/config"
	"mazerunner/internal/game"
	"mazerunner/internal/maze"
)

func main() {
	logger := log.New(os.Stderr, "[maze] ", log.LstdFlags)

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("[ERROR] config: %v", err)
	}

	difficulty := flag.String("difficulty", "", "start directly on easy, normal or hard (skips the menu)")
	seed := flag.Uint64("seed", 0, "maze seed (default: MAZE_SEED or the clock)")
	printOnly := flag.Bool("print", false, "print the maze as text and exit")
	drunk := flag.Bool("drunk", cfg.Drunk, "start with the drunk filter on")
	fullscreen := flag.Bool("fullscreen", cfg.Fullscreen, "use the primary monitor")
	flag.Parse()

	if *difficulty != "" {
		d, err := maze.ParseDifficulty(*difficulty)
		if err != nil {
			logger.Fatalf("[ERROR] %v", err)
		}
		cfg.Difficulty, cfg.DifficultySet = d, true
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed, cfg.SeedSet = *seed, true
		}
	})
	cfg.Drunk = *drunk
	cfg.Fullscreen = *fullscreen

	if *printOnly {
		g, err := maze.GenerateDifficulty(cfg.Difficulty, cfg.Seed)
		if err != nil {
			logger.Fatalf("[ERROR] %v", err)
		}
		fmt.Printf("%s %dx%d seed %d\n%s\n", cfg.Difficulty, g.Width, g.Height, g.Seed, g)
		return
	}

	if err := game.Run(cfg, logger); err != nil {
		logger.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}
