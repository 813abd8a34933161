package maze

import (
	"fmt"
	"strings"
)

// Difficulty is the player-facing maze size choice.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// Preset holds the grid dimensions a difficulty maps to.
type Preset struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Difficulties lists every preset in menu order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

// Preset returns the grid dimensions for d.
func (d Difficulty) Preset() (Preset, error) {
	switch d {
	case Easy:
		return Preset{Width: 15, Height: 15}, nil
	case Normal:
		return Preset{Width: 21, Height: 21}, nil
	case Hard:
		return Preset{Width: 51, Height: 51}, nil
	}
	return Preset{}, fmt.Errorf("unknown difficulty %d", int(d))
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty accepts a preset name or its menu number (1-3).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "normal", "2":
		return Normal, nil
	case "hard", "3":
		return Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}
