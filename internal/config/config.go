// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"mazerunner/internal/maze"
)

// Config holds the settings shared by the maze binaries.
type Config struct {
	Seed          uint64          // Maze seed; time-derived unless MAZE_SEED is set
	SeedSet       bool            // True when MAZE_SEED was given
	Difficulty    maze.Difficulty // Preset to start with
	DifficultySet bool            // True when MAZE_DIFFICULTY was given (skips the menu)

	CellSize     float64 // World units per grid cell
	PlayerRadius float64 // Collision circle radius
	MoveSpeed    float64 // World units per second
	MouseSense   float64 // Degrees per pixel of mouse motion
	LookSpeed    float64 // Degrees per frame for arrow-key look

	Fullscreen   bool
	WindowWidth  int
	WindowHeight int

	AudioEnabled bool
	SFXVolume    float64 // 0..1
	MusicVolume  float64 // 0..1

	Drunk    bool   // Start with the drunk filter on
	HTTPAddr string // Listen address for the maze service
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Difficulty:   maze.Normal,
		CellSize:     1.0,
		PlayerRadius: 0.2,
		MoveSpeed:    2.5,
		MouseSense:   0.1,
		LookSpeed:    3.0,
		WindowWidth:  1280,
		WindowHeight: 720,
		AudioEnabled: true,
		SFXVolume:    0.6,
		MusicVolume:  0.15,
		HTTPAddr:     ":8080",
	}
}

// Load reads .env (if present) and then the MAZE_* environment variables
// on top of Default. Malformed values are reported, not ignored.
func Load(logger *log.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil && logger != nil {
		logger.Printf("[INFO] .env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv applies the MAZE_* environment variables on top of Default.
func FromEnv() (Config, error) {
	cfg := Default()
	var errs []error

	if v, ok := os.LookupEnv("MAZE_SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("MAZE_SEED: %w", err))
		} else {
			cfg.Seed = seed
			cfg.SeedSet = true
		}
	}
	if !cfg.SeedSet {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if v, ok := os.LookupEnv("MAZE_DIFFICULTY"); ok && v != "" {
		d, err := maze.ParseDifficulty(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("MAZE_DIFFICULTY: %w", err))
		} else {
			cfg.Difficulty = d
			cfg.DifficultySet = true
		}
	}

	floatEnv(&errs, "MAZE_CELL_SIZE", &cfg.CellSize)
	floatEnv(&errs, "MAZE_PLAYER_RADIUS", &cfg.PlayerRadius)
	floatEnv(&errs, "MAZE_MOVE_SPEED", &cfg.MoveSpeed)
	floatEnv(&errs, "MAZE_MOUSE_SENSE", &cfg.MouseSense)
	floatEnv(&errs, "MAZE_LOOK_SPEED", &cfg.LookSpeed)
	boolEnv(&errs, "MAZE_FULLSCREEN", &cfg.Fullscreen)
	intEnv(&errs, "MAZE_WINDOW_WIDTH", &cfg.WindowWidth)
	intEnv(&errs, "MAZE_WINDOW_HEIGHT", &cfg.WindowHeight)
	boolEnv(&errs, "MAZE_AUDIO", &cfg.AudioEnabled)
	volumeEnv(&errs, "MAZE_SFX_VOLUME", &cfg.SFXVolume)
	volumeEnv(&errs, "MAZE_MUSIC_VOLUME", &cfg.MusicVolume)
	boolEnv(&errs, "MAZE_DRUNK", &cfg.Drunk)
	if v, ok := os.LookupEnv("MAZE_HTTP_ADDR"); ok && v != "" {
		cfg.HTTPAddr = v
	}

	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks cross-field constraints. The collision query only looks at
// the 3x3 cells around the player, so the radius must stay under half a cell.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("cell size must be positive, got %v", c.CellSize)
	case c.PlayerRadius <= 0 || c.PlayerRadius >= c.CellSize/2:
		return fmt.Errorf("player radius %v must be in (0, %v)", c.PlayerRadius, c.CellSize/2)
	case c.MoveSpeed <= 0:
		return fmt.Errorf("move speed must be positive, got %v", c.MoveSpeed)
	case c.MouseSense <= 0 || c.LookSpeed <= 0:
		return errors.New("look sensitivities must be positive")
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window size %dx%d is invalid", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

func floatEnv(errs *[]error, key string, dst *float64) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = f
}

func intEnv(errs *[]error, key string, dst *int) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func boolEnv(errs *[]error, key string, dst *bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = b
}

// volumeEnv reads a 0-100 percentage into a clamped 0..1 fraction.
func volumeEnv(errs *[]error, key string, dst *float64) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	f := float64(n) / 100.0
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	*dst = f
}
